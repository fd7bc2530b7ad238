// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.JWT.SignKey == "" || cfg.JWT.ValidFor <= 0 {
		return ErrInvalidJWTConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	switch cfg.Cache.Implementation {
	case CacheNoCache, CacheMemoryDistributedCache:
	case CacheRedis:
		if cfg.Cache.Redis.URL == "" {
			return fmt.Errorf("%w: redis url is required", ErrInvalidCacheConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown implementation %q", ErrInvalidCacheConfigs, cfg.Cache.Implementation)
	}

	if cfg.Files.Type == FilesLocal {
		if cfg.Files.LocalDir == "" {
			return ErrInvalidFilesConfigs
		}
	} else if cfg.Files.BlobConnectionString == "" || cfg.Files.BlobContainer == "" {
		return ErrInvalidFilesConfigs
	}

	return nil
}
