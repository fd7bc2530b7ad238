package bootstrap

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"github.com/MKhiriev/vote-monitor/internal/cache"
	"github.com/MKhiriev/vote-monitor/internal/config"
	"github.com/MKhiriev/vote-monitor/internal/handler"
	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/metrics"
	"github.com/MKhiriev/vote-monitor/internal/server"
	"github.com/MKhiriev/vote-monitor/internal/workers"
)

// healthRefreshInterval is how often the gRPC health status is re-evaluated.
const healthRefreshInterval = 15 * time.Second

func newServer(handlers *handler.Handlers, cfg *config.StructuredConfig, log *logger.Logger) (server.Server, error) {
	return server.NewServer(handlers, cfg.Server, log)
}

// workerDeps groups the optional inputs of the background workers.
type workerDeps struct {
	fx.In

	Config   *config.StructuredConfig
	Clock    clockwork.Clock
	Memory   *cache.MemoryStore `optional:"true"`
	Handlers *handler.Handlers
	Metrics  *metrics.Metrics
	Logger   *logger.Logger
}

func newWorkers(deps workerDeps) *workers.Workers {
	all := workers.NewWorkers()

	if deps.Memory != nil {
		all.Add(cache.NewEvictionWorker(deps.Memory, deps.Config.Cache.EvictionInterval, deps.Clock, deps.Metrics, deps.Logger))
	}
	if deps.Handlers.GRPC != nil && deps.Config.Server.GRPCAddress != "" {
		all.Add(workers.NewPeriodicWorker("grpc-health", healthRefreshInterval, deps.Clock, deps.Handlers.GRPC.RefreshStatus, deps.Logger))
	}

	return all
}

func registerServer(lc fx.Lifecycle, srv server.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := srv.Start(ctx); err != nil {
				log.Err(err).Msg("error starting server")
				return err
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func registerWorkers(lc fx.Lifecycle, all *workers.Workers) {
	lc.Append(fx.Hook{
		// the start context expires once start-up completes
		OnStart: func(context.Context) error {
			all.Start(context.Background())
			return nil
		},
		OnStop: all.Stop,
	})
}
