package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx, sqlite3)
//	-c/-config json file path with configs
//	-env application environment (Development, Production)
//	-jwt-sign-key token signing key
//	-jwt-valid-for token lifetime (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cache cache implementation (NoCache, RedisCache, MemoryDistributedCache)
//	-redis-url redis connection url
//	-hash hashing service (ClearText, Hash)
//	-files file storage (LocalFileService, BlobService)
//	-files-dir local upload directory
//	-static-dir static files directory
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vote-monitor", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var environment string
	var tokenSignKey string
	var tokenValidFor time.Duration
	var requestTimeout time.Duration
	var cacheImplementation, redisURL string
	var hashServiceType string
	var filesType, filesDir string
	var staticDir string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&environment, "env", "", "Application environment")
	fs.StringVar(&tokenSignKey, "jwt-sign-key", "", "Token signing key")
	fs.DurationVar(&tokenValidFor, "jwt-valid-for", 0, "Token lifetime (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cacheImplementation, "cache", "", "Cache implementation")
	fs.StringVar(&redisURL, "redis-url", "", "Redis connection URL")
	fs.StringVar(&hashServiceType, "hash", "", "Hashing service type")
	fs.StringVar(&filesType, "files", "", "File storage type")
	fs.StringVar(&filesDir, "files-dir", "", "Local upload directory")
	fs.StringVar(&staticDir, "static-dir", "", "Static files directory")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		JWT: JWT{
			SignKey:  tokenSignKey,
			ValidFor: tokenValidFor,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			StaticDir:      staticDir,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Cache: Cache{
			Implementation: cacheImplementation,
			Redis:          Redis{URL: redisURL},
		},
		Hash: Hash{
			ServiceType: hashServiceType,
		},
		Files: Files{
			Type:     filesType,
			LocalDir: filesDir,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
