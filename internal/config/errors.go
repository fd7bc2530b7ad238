package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidJWTConfigs indicates missing token sign key or a non-positive lifetime.
	ErrInvalidJWTConfigs = errors.New("invalid jwt configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or an unsupported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCacheConfigs indicates an unknown cache implementation or a
	// Redis cache without URL.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidFilesConfigs indicates an incomplete file storage backend.
	ErrInvalidFilesConfigs = errors.New("invalid files configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
