package service

import (
	"github.com/MKhiriev/vote-monitor/internal/cache"
	"github.com/MKhiriev/vote-monitor/internal/config"
	"github.com/MKhiriev/vote-monitor/internal/hashing"
	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/metrics"
	"github.com/MKhiriev/vote-monitor/internal/store"
	"github.com/MKhiriev/vote-monitor/internal/utils"
	"github.com/MKhiriev/vote-monitor/models"
)

type Services struct {
	AuthService    AuthService
	NgoService     NgoService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	cacheService cache.Service,
	hashService hashing.Service,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	m *metrics.Metrics,
	logger *logger.Logger,
) *Services {
	ngoService := NewNgoService(storages.NgoRepository, cacheService, logger)

	return &Services{
		AuthService:    NewAuthService(storages, ngoService, hashService, *cfg, utils.NewUUIDGenerator(), m, logger),
		NgoService:     ngoService,
		AppInfoService: NewAppInfoService(buildInfo, cfg.App, logger),
	}
}
