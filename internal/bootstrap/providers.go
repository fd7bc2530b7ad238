package bootstrap

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"github.com/MKhiriev/vote-monitor/internal/cache"
	"github.com/MKhiriev/vote-monitor/internal/config"
	"github.com/MKhiriev/vote-monitor/internal/filestorage"
	"github.com/MKhiriev/vote-monitor/internal/firebase"
	"github.com/MKhiriev/vote-monitor/internal/hashing"
	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/metrics"
	"github.com/MKhiriev/vote-monitor/internal/probe"
	"github.com/MKhiriev/vote-monitor/internal/store"
	"github.com/MKhiriev/vote-monitor/internal/utils"
)

func newDatabase(lc fx.Lifecycle, cfg *config.StructuredConfig, log *logger.Logger) (*store.DB, error) {
	db, err := store.NewConnection(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	lc.Append(fx.StopHook(func() error {
		log.Info().Msg("closing database connection")
		return db.Close()
	}))
	return db, nil
}

// cacheStores carries the selected cache store. Memory is set only for the
// in-memory implementation, which needs an eviction worker.
type cacheStores struct {
	fx.Out

	Store  cache.Store
	Memory *cache.MemoryStore
}

func newCacheStore(lc fx.Lifecycle, cfg *config.StructuredConfig, clock clockwork.Clock, log *logger.Logger) (cacheStores, error) {
	switch cfg.Cache.Implementation {
	case config.CacheRedis:
		client, err := cache.NewRedisClient(cfg.Cache.Redis.URL)
		if err != nil {
			return cacheStores{}, fmt.Errorf("error creating redis client: %w", err)
		}
		lc.Append(fx.StopHook(client.Close))

		log.Info().Msg("using redis cache")
		return cacheStores{Store: cache.NewRedisStore(client)}, nil
	case config.CacheMemoryDistributedCache:
		memory := cache.NewMemoryStore(clock)

		log.Info().Msg("using in-memory cache")
		return cacheStores{Store: memory, Memory: memory}, nil
	case config.CacheNoCache:
		log.Info().Msg("cache disabled")
		return cacheStores{Store: cache.NewNoCacheStore()}, nil
	default:
		return cacheStores{}, fmt.Errorf("%w: %q", config.ErrInvalidCacheConfigs, cfg.Cache.Implementation)
	}
}

func newCacheService(store cache.Store, cfg *config.StructuredConfig, m *metrics.Metrics, log *logger.Logger) cache.Service {
	return cache.NewService(store, cfg.Cache.DefaultTTL, m, log)
}

func newHashService(cfg *config.StructuredConfig) hashing.Service {
	return hashing.New(cfg.Hash)
}

func newFileService(cfg *config.StructuredConfig, log *logger.Logger) (filestorage.Service, error) {
	return filestorage.New(cfg.Files, utils.NewUUIDGenerator(), log)
}

func newReadinessChecks(db *store.DB, cacheService cache.Service) []probe.Check {
	return []probe.Check{
		{Name: "database", Ping: db.PingContext},
		{Name: "cache", Ping: cacheService.Ping},
	}
}

func migrateDatabase(db *store.DB, log *logger.Logger) error {
	if err := db.Migrate(); err != nil {
		return err
	}
	log.Info().Str("driver", db.Driver()).Msg("database migrated")
	return nil
}

func configureFirebase(cfg *config.StructuredConfig, log *logger.Logger) error {
	return firebase.ConfigurePrivateKey(cfg.Firebase, log)
}

func initializeFileStorage(lc fx.Lifecycle, files filestorage.Service) {
	lc.Append(fx.StartHook(files.Initialize))
}
