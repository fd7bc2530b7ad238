package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "missing http address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.JWT.SignKey = "" }, wantErr: ErrInvalidJWTConfigs},
		{name: "zero lifetime", mutate: func(cfg *StructuredConfig) { cfg.JWT.ValidFor = 0 }, wantErr: ErrInvalidJWTConfigs},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown cache", mutate: func(cfg *StructuredConfig) { cfg.Cache.Implementation = "Memcached" }, wantErr: ErrInvalidCacheConfigs},
		{name: "redis without url", mutate: func(cfg *StructuredConfig) { cfg.Cache.Implementation = CacheRedis }, wantErr: ErrInvalidCacheConfigs},
		{name: "redis with url", mutate: func(cfg *StructuredConfig) {
			cfg.Cache.Implementation = CacheRedis
			cfg.Cache.Redis.URL = "redis://localhost:6379"
		}},
		{name: "local without dir", mutate: func(cfg *StructuredConfig) { cfg.Files.LocalDir = "" }, wantErr: ErrInvalidFilesConfigs},
		{name: "blob without connection string", mutate: func(cfg *StructuredConfig) { cfg.Files.Type = FilesBlob }, wantErr: ErrInvalidFilesConfigs},
		{name: "any non-local type selects blob", mutate: func(cfg *StructuredConfig) {
			cfg.Files.Type = "Whatever"
			cfg.Files.BlobConnectionString = "UseDevelopmentStorage=true"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
