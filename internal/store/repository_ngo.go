package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/models"
)

type ngoRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewNgoRepository(db *DB, logger *logger.Logger) NgoRepository {
	logger.Debug().Msg("creating ngo repository")
	return &ngoRepository{
		db:     db,
		logger: logger,
	}
}

// FindNgoByID returns the NGO with the given id or [ErrNgoNotFound].
func (r *ngoRepository) FindNgoByID(ctx context.Context, id int64) (models.Ngo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindNgoByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*ngoRepository.FindNgoByID").Msg("error building query")
		return models.Ngo{}, err
	}

	var ngo models.Ngo
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&ngo.ID, &ngo.Name, &ngo.ShortName, &ngo.Organizer, &ngo.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ngo{}, ErrNgoNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*ngoRepository.FindNgoByID").Msg("error querying ngo")
		return models.Ngo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ngo, nil
}

func (r *ngoRepository) CreateNgo(ctx context.Context, ngo models.Ngo) (models.Ngo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNgoQuery(r.db.builder, ngo)
	if err != nil {
		log.Err(err).Str("func", "*ngoRepository.CreateNgo").Msg("error building query")
		return models.Ngo{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&ngo.ID); err != nil {
		log.Err(err).Str("func", "*ngoRepository.CreateNgo").Msg("error inserting ngo")
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Ngo{}, ErrAlreadyExists
		}
		return models.Ngo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return ngo, nil
}
