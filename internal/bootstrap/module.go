// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/MKhiriev/vote-monitor/internal/config"
	"github.com/MKhiriev/vote-monitor/internal/handler"
	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/metrics"
	"github.com/MKhiriev/vote-monitor/internal/service"
	"github.com/MKhiriev/vote-monitor/internal/store"
	"github.com/MKhiriev/vote-monitor/models"
)

// Module provides every application component except the transport servers.
var Module = fx.Module("vote-monitor",
	fx.Provide(
		clockwork.NewRealClock,
		newDatabase,
		store.NewStorages,
		newCacheStore,
		newCacheService,
		newHashService,
		newFileService,
		metrics.New,
		newReadinessChecks,
		service.NewServices,
		handler.NewHandlers,
	),
	fx.Invoke(
		migrateDatabase,
		configureFirebase,
		initializeFileStorage,
	),
)

// ServerModule starts the transport servers and background workers with
// the application and stops them on shutdown.
var ServerModule = fx.Module("server",
	fx.Provide(
		newServer,
		newWorkers,
	),
	fx.Invoke(
		registerServer,
		registerWorkers,
	),
)

// Options supplies the loaded configuration, the build metadata and the
// application logger, and routes fx events to that logger.
func Options(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) fx.Option {
	return fx.Options(
		fx.Supply(cfg, buildInfo, log),
		fx.WithLogger(func(log *logger.Logger) fxevent.Logger {
			return newEventLogger(log)
		}),
	)
}
