package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/MKhiriev/vote-monitor/internal/logger"
)

type localService struct {
	dir    string
	ids    IDGenerator
	logger *logger.Logger
}

// NewLocalService returns a [Service] writing files into dir.
func NewLocalService(dir string, ids IDGenerator, log *logger.Logger) Service {
	return &localService{
		dir:    dir,
		ids:    ids,
		logger: log,
	}
}

func (s *localService) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("error creating upload directory %q: %w", s.dir, err)
	}
	s.logger.Info().Str("dir", s.dir).Msg("local file storage initialized")
	return nil
}

// Upload writes r to dir and returns "/<base of dir>/<name>".
func (s *localService) Upload(ctx context.Context, r io.Reader, fileName, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	name := objectName(s.ids.Generate(), fileName)
	target := filepath.Join(s.dir, name)

	f, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*localService.Upload").Msg("error creating file")
		return "", fmt.Errorf("error creating file: %w", err)
	}

	written, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil && written == 0 {
		err = ErrEmptyFile
	}
	if err != nil {
		os.Remove(target)
		log.Err(err).Str("func", "*localService.Upload").Msg("error writing file")
		return "", fmt.Errorf("error writing file: %w", err)
	}

	log.Debug().Str("file", name).Int64("bytes", written).Msg("file stored locally")
	return path.Join("/", filepath.Base(s.dir), name), nil
}
