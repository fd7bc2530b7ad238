// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vote-monitor/internal/config"
	"github.com/MKhiriev/vote-monitor/internal/hashing"
	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/metrics"
	"github.com/MKhiriev/vote-monitor/internal/store"
	"github.com/MKhiriev/vote-monitor/internal/utils"
	"github.com/MKhiriev/vote-monitor/models"
)

// Login kinds and outcomes used as labels of the login attempts counter.
const (
	loginKindObserver = "observer"
	loginKindNgoAdmin = "ngo_admin"

	loginOutcomeSuccess  = "success"
	loginOutcomeRejected = "rejected"
	loginOutcomeError    = "error"
)

// TokenIDGenerator produces the "jti" claim of issued tokens.
type TokenIDGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It verifies observer and NGO admin credentials against the repositories
// and issues HS256 JWT tokens.
type authService struct {
	// observerRepository looks up observers and stores their device binding.
	observerRepository store.ObserverRepository

	// ngoAdminRepository looks up NGO admin accounts.
	ngoAdminRepository store.NgoAdminRepository

	// ngoService resolves the NGO of an authenticated observer.
	ngoService NgoService

	// hashService hashes PINs and passwords before comparison. It must be
	// the same service that produced the stored hashes.
	hashService hashing.Service

	// jwtParams holds the signing key, issuer, audience and lifetime of tokens.
	jwtParams utils.JWTParams

	// lockDevice rejects observer logins from a device other than the
	// registered one.
	lockDevice bool

	tokenIDs TokenIDGenerator
	now      func() time.Time
	metrics  *metrics.Metrics

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	storages *store.Storages,
	ngoService NgoService,
	hashService hashing.Service,
	cfg config.StructuredConfig,
	tokenIDs TokenIDGenerator,
	m *metrics.Metrics,
	logger *logger.Logger,
) AuthService {
	return &authService{
		observerRepository: storages.ObserverRepository,
		ngoAdminRepository: storages.NgoAdminRepository,
		ngoService:         ngoService,
		hashService:        hashService,
		jwtParams: utils.JWTParams{
			Issuer:   cfg.JWT.Issuer,
			Audience: cfg.JWT.Audience,
			SignKey:  cfg.JWT.SignKey,
			ValidFor: cfg.JWT.ValidFor,
		},
		lockDevice: cfg.MobileSecurity.LockDevice,
		tokenIDs:   tokenIDs,
		now:        time.Now,
		metrics:    m,
		logger:     logger,
	}
}

// LoginObserver authenticates an observer by phone and PIN.
//
// The steps are:
//  1. hash the PIN and look the observer up by phone and PIN hash;
//  2. require the observer and its NGO to be active;
//  3. bind the device: the first login registers request.UniqueID, later
//     logins from another device fail when device locking is enabled;
//  4. issue a token with the phone as subject.
//
// Returns:
//   - ErrInvalidDataProvided if User or Password is empty.
//   - ErrInvalidCredentials if no observer matches or its NGO does not exist.
//   - ErrObserverInactive, ErrNgoInactive, ErrDeviceMismatch for rejected logins.
//   - A wrapped error for storage or token failures.
func (a *authService) LoginObserver(ctx context.Context, request models.AuthorizeRequest) (models.Token, error) {
	token, err := a.loginObserver(ctx, request)
	a.observeLogin(loginKindObserver, err)
	return token, err
}

func (a *authService) loginObserver(ctx context.Context, request models.AuthorizeRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if request.User == "" || request.Password == "" {
		log.Error().Str("user", request.User).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	observer, err := a.observerRepository.FindObserverByCredentials(ctx, request.User, a.hashService.GetHash(request.Password))
	if errors.Is(err, store.ErrObserverNotFound) {
		log.Info().Str("user", request.User).Msg("observer credentials rejected")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("user", request.User).Msg("observer search by credentials failed")
		return models.Token{}, fmt.Errorf("observer search by credentials failed: %w", err)
	}

	if !observer.IsActive {
		log.Info().Int64("observer_id", observer.ID).Msg("inactive observer tried to log in")
		return models.Token{}, ErrObserverInactive
	}

	ngo, err := a.ngoService.GetNgo(ctx, observer.NgoID)
	if errors.Is(err, store.ErrNgoNotFound) {
		log.Warn().Int64("observer_id", observer.ID).Int64("ngo_id", observer.NgoID).Msg("observer references a missing ngo")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Token{}, err
	}
	if !ngo.IsActive {
		log.Info().Int64("observer_id", observer.ID).Int64("ngo_id", ngo.ID).Msg("observer of an inactive ngo tried to log in")
		return models.Token{}, ErrNgoInactive
	}

	if err = a.bindDevice(ctx, observer, request.UniqueID); err != nil {
		return models.Token{}, err
	}

	return a.CreateToken(ctx, models.Identity{
		Subject:    request.User,
		ObserverID: observer.ID,
		NgoID:      observer.NgoID,
		Organizer:  ngo.Organizer,
	})
}

// bindDevice registers deviceID for an observer without a device, or checks
// it against the registered one when device locking is enabled.
func (a *authService) bindDevice(ctx context.Context, observer models.Observer, deviceID string) error {
	log := logger.FromContext(ctx)

	if observer.HasDevice() {
		if a.lockDevice && observer.MobileDeviceID != deviceID {
			log.Info().Int64("observer_id", observer.ID).Msg("login from an unregistered device")
			return ErrDeviceMismatch
		}
		return nil
	}

	if deviceID == "" {
		return nil
	}

	err := a.observerRepository.RegisterDevice(ctx, observer.ID, deviceID)
	if errors.Is(err, store.ErrDeviceAlreadyRegistered) {
		// a concurrent login bound another device first
		if a.lockDevice {
			log.Info().Int64("observer_id", observer.ID).Msg("login from an unregistered device")
			return ErrDeviceMismatch
		}
		return nil
	}
	if err != nil {
		log.Err(err).Int64("observer_id", observer.ID).Msg("device registration failed")
		return fmt.Errorf("device registration failed: %w", err)
	}

	return nil
}

// LoginNgoAdmin authenticates an NGO admin by account and password.
//
// Returns ErrInvalidDataProvided for empty fields, ErrInvalidCredentials when
// no account matches and a wrapped error on storage or token failures.
func (a *authService) LoginNgoAdmin(ctx context.Context, request models.AdminAuthorizeRequest) (models.Token, error) {
	token, err := a.loginNgoAdmin(ctx, request)
	a.observeLogin(loginKindNgoAdmin, err)
	return token, err
}

func (a *authService) loginNgoAdmin(ctx context.Context, request models.AdminAuthorizeRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if request.User == "" || request.Password == "" {
		log.Error().Str("user", request.User).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	admin, err := a.ngoAdminRepository.FindNgoAdminByCredentials(ctx, request.User, a.hashService.GetHash(request.Password))
	if errors.Is(err, store.ErrNgoAdminNotFound) {
		log.Info().Str("user", request.User).Msg("ngo admin credentials rejected")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("user", request.User).Msg("ngo admin search by credentials failed")
		return models.Token{}, fmt.Errorf("ngo admin search by credentials failed: %w", err)
	}

	ngo, err := a.ngoService.GetNgo(ctx, admin.NgoID)
	if errors.Is(err, store.ErrNgoNotFound) {
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Token{}, err
	}
	if !ngo.IsActive {
		return models.Token{}, ErrNgoInactive
	}

	return a.CreateToken(ctx, models.Identity{
		Subject:    admin.Account,
		NgoAdminID: admin.ID,
		NgoID:      admin.NgoID,
		Organizer:  ngo.Organizer,
	})
}

// CreateToken issues a signed JWT for identity with a fresh "jti".
//
// Returns the token model on success or a wrapped ErrTokenCreationFailed.
func (a *authService) CreateToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.jwtParams, identity, a.tokenIDs.Generate(), a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("subject", identity.Subject).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer or audience, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (*models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.jwtParams)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return nil, ErrTokenIsExpiredOrInvalid
	}

	return claims, nil
}

func (a *authService) observeLogin(kind string, err error) {
	if a.metrics == nil {
		return
	}

	outcome := loginOutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidDataProvided),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrObserverInactive),
		errors.Is(err, ErrNgoInactive),
		errors.Is(err, ErrDeviceMismatch):
		outcome = loginOutcomeRejected
	default:
		outcome = loginOutcomeError
	}

	a.metrics.LoginAttemptsTotal.WithLabelValues(kind, outcome).Inc()
}
