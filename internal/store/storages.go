package store

import "github.com/MKhiriev/vote-monitor/internal/logger"

// Storages groups the repositories backed by a single database connection.
type Storages struct {
	ObserverRepository ObserverRepository
	NgoRepository      NgoRepository
	NgoAdminRepository NgoAdminRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		ObserverRepository: NewObserverRepository(db, log),
		NgoRepository:      NewNgoRepository(db, log),
		NgoAdminRepository: NewNgoAdminRepository(db, log),
	}
}
