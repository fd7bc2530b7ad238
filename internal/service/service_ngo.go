package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/vote-monitor/internal/cache"
	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/store"
	"github.com/MKhiriev/vote-monitor/models"
)

const ngoCacheKeyPrefix = "ngo:"

type ngoService struct {
	ngoRepository store.NgoRepository
	cache         cache.Service

	logger *logger.Logger
}

func NewNgoService(ngoRepository store.NgoRepository, cacheService cache.Service, logger *logger.Logger) NgoService {
	return &ngoService{
		ngoRepository: ngoRepository,
		cache:         cacheService,
		logger:        logger,
	}
}

// GetNgo returns the NGO with the given id. Lookups are cached under
// "ngo:<id>" for the default cache TTL; a missing NGO is not cached and
// surfaces as store.ErrNgoNotFound.
func (s *ngoService) GetNgo(ctx context.Context, id int64) (models.Ngo, error) {
	if id <= 0 {
		return models.Ngo{}, ErrInvalidDataProvided
	}

	var ngo models.Ngo
	err := s.cache.GetOrSave(ctx, ngoCacheKey(id), &ngo, 0, func(ctx context.Context) (any, error) {
		return s.ngoRepository.FindNgoByID(ctx, id)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("ngo_id", id).Msg("ngo lookup failed")
		return models.Ngo{}, fmt.Errorf("ngo lookup failed: %w", err)
	}

	return ngo, nil
}

func ngoCacheKey(id int64) string {
	return ngoCacheKeyPrefix + strconv.FormatInt(id, 10)
}
