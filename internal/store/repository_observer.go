package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/models"
)

// observerRepository is the SQL-backed implementation of [ObserverRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type observerRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewObserverRepository constructs an [ObserverRepository] backed by the
// provided database connection and logger.
func NewObserverRepository(db *DB, logger *logger.Logger) ObserverRepository {
	logger.Debug().Msg("creating observer repository")
	return &observerRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// FindObserverByCredentials returns the observer whose phone and PIN hash
// both match.
//
// Error handling:
//   - no matching row → [ErrObserverNotFound].
//   - query build failure → [ErrBuildingSQLQuery].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *observerRepository) FindObserverByCredentials(ctx context.Context, phone, pinHash string) (models.Observer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindObserverByCredentialsQuery(r.db.builder, phone, pinHash)
	if err != nil {
		log.Err(err).Str("func", "*observerRepository.FindObserverByCredentials").Msg("error building query")
		return models.Observer{}, err
	}

	var (
		observer     models.Observer
		deviceID     sql.NullString
		registeredAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&observer.ID, &observer.Phone, &observer.Pin, &observer.Name,
		&observer.NgoID, &observer.IsActive, &deviceID, &registeredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Observer{}, ErrObserverNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*observerRepository.FindObserverByCredentials").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("error querying observer")
		return models.Observer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	observer.MobileDeviceID = deviceID.String
	if registeredAt.Valid {
		observer.DeviceRegisterDate = &registeredAt.Time
	}

	return observer, nil
}

// RegisterDevice binds deviceID to the observer identified by observerID
// unless a device is bound already. Registering the bound device again is a
// no-op.
//
// Error handling:
//   - unknown observer → [ErrObserverNotFound].
//   - another device bound → [ErrDeviceAlreadyRegistered].
func (r *observerRepository) RegisterDevice(ctx context.Context, observerID int64, deviceID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRegisterDeviceQuery(r.db.builder, observerID, deviceID, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*observerRepository.RegisterDevice").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*observerRepository.RegisterDevice").Msg("error updating observer device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return r.checkBoundDevice(ctx, observerID, deviceID)
	}

	return nil
}

// checkBoundDevice compares deviceID with the device already bound to the observer.
func (r *observerRepository) checkBoundDevice(ctx context.Context, observerID int64, deviceID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildFindObserverDeviceQuery(r.db.builder, observerID)
	if err != nil {
		log.Err(err).Str("func", "*observerRepository.checkBoundDevice").Msg("error building query")
		return err
	}

	var bound sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&bound)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrObserverNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*observerRepository.checkBoundDevice").Msg("error querying observer device")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if bound.String != deviceID {
		log.Info().Int64("observer_id", observerID).Msg("observer is bound to another device")
		return ErrDeviceAlreadyRegistered
	}
	return nil
}

// CreateObserver inserts observer and returns it with the assigned id.
// A duplicate phone yields [ErrAlreadyExists].
func (r *observerRepository) CreateObserver(ctx context.Context, observer models.Observer) (models.Observer, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateObserverQuery(r.db.builder, observer)
	if err != nil {
		log.Err(err).Str("func", "*observerRepository.CreateObserver").Msg("error building query")
		return models.Observer{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&observer.ID); err != nil {
		log.Err(err).Str("func", "*observerRepository.CreateObserver").Msg("error inserting observer")
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Observer{}, ErrAlreadyExists
		}
		return models.Observer{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return observer, nil
}
