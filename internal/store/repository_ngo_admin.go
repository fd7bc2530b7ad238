package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/models"
)

type ngoAdminRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewNgoAdminRepository(db *DB, logger *logger.Logger) NgoAdminRepository {
	logger.Debug().Msg("creating ngo admin repository")
	return &ngoAdminRepository{
		db:     db,
		logger: logger,
	}
}

// FindNgoAdminByCredentials returns the admin whose account and password
// hash match, or [ErrNgoAdminNotFound].
func (r *ngoAdminRepository) FindNgoAdminByCredentials(ctx context.Context, account, passwordHash string) (models.NgoAdmin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindNgoAdminByCredentialsQuery(r.db.builder, account, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*ngoAdminRepository.FindNgoAdminByCredentials").Msg("error building query")
		return models.NgoAdmin{}, err
	}

	var admin models.NgoAdmin
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&admin.ID, &admin.NgoID, &admin.Account, &admin.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NgoAdmin{}, ErrNgoAdminNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*ngoAdminRepository.FindNgoAdminByCredentials").Msg("error querying ngo admin")
		return models.NgoAdmin{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return admin, nil
}

func (r *ngoAdminRepository) CreateNgoAdmin(ctx context.Context, admin models.NgoAdmin) (models.NgoAdmin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNgoAdminQuery(r.db.builder, admin)
	if err != nil {
		log.Err(err).Str("func", "*ngoAdminRepository.CreateNgoAdmin").Msg("error building query")
		return models.NgoAdmin{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&admin.ID); err != nil {
		log.Err(err).Str("func", "*ngoAdminRepository.CreateNgoAdmin").Msg("error inserting ngo admin")
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.NgoAdmin{}, ErrAlreadyExists
		}
		return models.NgoAdmin{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return admin, nil
}
