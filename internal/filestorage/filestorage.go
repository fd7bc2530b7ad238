// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package filestorage stores files uploaded by observers either on the
// local disk or in Azure Blob Storage.
package filestorage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/vote-monitor/internal/config"
	"github.com/MKhiriev/vote-monitor/internal/logger"
)

// ErrEmptyFile is returned when an upload carries no data.
var ErrEmptyFile = errors.New("empty file")

// Service persists uploaded files.
type Service interface {
	// Initialize prepares the backend (directory or container). It is called
	// once at start-up.
	Initialize(ctx context.Context) error

	// Upload stores r under a generated name keeping the extension of
	// fileName, and returns the address the file can be fetched from.
	Upload(ctx context.Context, r io.Reader, fileName, contentType string) (string, error)
}

// IDGenerator produces unique file names.
type IDGenerator interface {
	Generate() string
}

// New returns the backend selected by cfg.Type: "LocalFileService" stores
// on disk, any other value selects blob storage.
func New(cfg config.Files, ids IDGenerator, log *logger.Logger) (Service, error) {
	if cfg.Type == config.FilesLocal {
		return NewLocalService(cfg.LocalDir, ids, log), nil
	}
	return NewBlobServiceFromConnectionString(cfg.BlobConnectionString, cfg.BlobContainer, ids, log)
}

// objectName builds the stored name from a generated id and the extension of fileName.
func objectName(id, fileName string) string {
	return id + strings.ToLower(filepath.Ext(fileName))
}
