package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := writeTempJSON(t, `{
		"app": { "environment": "Development", "version": "9.9.9" },
		"jwt": { "sign_key": "jwt_secret", "issuer": "iss", "audience": "aud", "valid_for": "1h" },
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"static_dir": "wwwroot"
		},
		"storage": { "db": { "driver": "sqlite3", "dsn": "file:votemonitor.db" } },
		"cache": {
			"implementation": "MemoryDistributedCache",
			"default_ttl": "2m",
			"eviction_interval": "10s",
			"redis": { "url": "redis://localhost:6379" }
		},
		"hash": { "service_type": "Hash", "salt": "pepper" },
		"files": { "type": "LocalFileService", "local_dir": "/var/uploads" },
		"firebase": { "server_key": "firebase.json" },
		"mobile_security": { "lock_device": true, "invalid_credentials_error_message": "bad" }
	}`)

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, EnvironmentDevelopment, cfg.App.Environment)
	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, "jwt_secret", cfg.JWT.SignKey)
	assert.Equal(t, "iss", cfg.JWT.Issuer)
	assert.Equal(t, "aud", cfg.JWT.Audience)
	assert.Equal(t, time.Hour, cfg.JWT.ValidFor)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "wwwroot", cfg.Server.StaticDir)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:votemonitor.db", cfg.Storage.DB.DSN)
	assert.Equal(t, CacheMemoryDistributedCache, cfg.Cache.Implementation)
	assert.Equal(t, 2*time.Minute, cfg.Cache.DefaultTTL)
	assert.Equal(t, 10*time.Second, cfg.Cache.EvictionInterval)
	assert.Equal(t, "redis://localhost:6379", cfg.Cache.Redis.URL)
	assert.Equal(t, HashSHA256, cfg.Hash.ServiceType)
	assert.Equal(t, "pepper", cfg.Hash.Salt)
	assert.Equal(t, FilesLocal, cfg.Files.Type)
	assert.Equal(t, "/var/uploads", cfg.Files.LocalDir)
	assert.Equal(t, "firebase.json", cfg.Firebase.ServerKey)
	assert.True(t, cfg.MobileSecurity.LockDevice)
	assert.Equal(t, "bad", cfg.MobileSecurity.InvalidCredentialsErrorMessage)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := writeTempJSON(t, `{"jwt": `)

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := writeTempJSON(t, `{"jwt": {"valid_for": "a while"}}`)

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string", input: `"1m30s"`, expected: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, expected: 1000},
		{name: "bool", input: `true`, wantErr: true},
		{name: "bad string", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, `"2h0m0s"`, string(b))
}
