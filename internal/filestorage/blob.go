package filestorage

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	"github.com/MKhiriev/vote-monitor/internal/logger"
)

// blobClient is the subset of *azblob.Client used by the blob service.
type blobClient interface {
	URL() string
	CreateContainer(ctx context.Context, containerName string, o *azblob.CreateContainerOptions) (azblob.CreateContainerResponse, error)
	UploadStream(ctx context.Context, containerName, blobName string, body io.Reader, o *azblob.UploadStreamOptions) (azblob.UploadStreamResponse, error)
}

type blobService struct {
	client    blobClient
	container string
	ids       IDGenerator
	logger    *logger.Logger
}

// NewBlobServiceFromConnectionString returns a [Service] storing files in
// the given Azure Storage container.
func NewBlobServiceFromConnectionString(connectionString, containerName string, ids IDGenerator, log *logger.Logger) (Service, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating blob client: %w", err)
	}
	return newBlobService(client, containerName, ids, log), nil
}

func newBlobService(client blobClient, containerName string, ids IDGenerator, log *logger.Logger) *blobService {
	return &blobService{
		client:    client,
		container: containerName,
		ids:       ids,
		logger:    log,
	}
}

// Initialize creates the container with public read access to blobs.
// An existing container is left as is.
func (s *blobService) Initialize(ctx context.Context) error {
	_, err := s.client.CreateContainer(ctx, s.container, &azblob.CreateContainerOptions{
		Access: to.Ptr(container.PublicAccessTypeBlob),
	})
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return fmt.Errorf("error creating container %q: %w", s.container, err)
	}

	s.logger.Info().Str("container", s.container).Msg("blob storage initialized")
	return nil
}

// Upload streams r into a new block blob and returns the blob URL.
// An empty r yields [ErrEmptyFile] and no blob is created.
func (s *blobService) Upload(ctx context.Context, r io.Reader, fileName, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	body := bufio.NewReader(r)
	if _, err := body.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrEmptyFile
		}
		log.Err(err).Str("func", "*blobService.Upload").Msg("error reading upload")
		return "", fmt.Errorf("error reading upload: %w", err)
	}

	name := objectName(s.ids.Generate(), fileName)
	opts := &azblob.UploadStreamOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: to.Ptr(contentType)}
	}

	if _, err := s.client.UploadStream(ctx, s.container, name, body, opts); err != nil {
		log.Err(err).Str("func", "*blobService.Upload").Str("blob", name).Msg("error uploading blob")
		return "", fmt.Errorf("error uploading blob: %w", err)
	}

	return runtime.JoinPaths(s.client.URL(), s.container, name), nil
}
