package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/vote-monitor/models"
)

// ObserverRepository persists observers and their device binding.
type ObserverRepository interface {
	// FindObserverByCredentials returns the observer with the given phone and
	// hashed PIN, or [ErrObserverNotFound].
	FindObserverByCredentials(ctx context.Context, phone, pinHash string) (models.Observer, error)
	// RegisterDevice binds deviceID to an observer without a device and
	// stamps the registration date. A different bound device yields
	// [ErrDeviceAlreadyRegistered].
	RegisterDevice(ctx context.Context, observerID int64, deviceID string) error
	CreateObserver(ctx context.Context, observer models.Observer) (models.Observer, error)
}

// NgoRepository persists NGOs.
type NgoRepository interface {
	FindNgoByID(ctx context.Context, id int64) (models.Ngo, error)
	CreateNgo(ctx context.Context, ngo models.Ngo) (models.Ngo, error)
}

// NgoAdminRepository looks up NGO administrator accounts.
type NgoAdminRepository interface {
	FindNgoAdminByCredentials(ctx context.Context, account, passwordHash string) (models.NgoAdmin, error)
	CreateNgoAdmin(ctx context.Context, admin models.NgoAdmin) (models.NgoAdmin, error)
}

// ErrorClassificator maps driver errors to retry decisions and domain errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
