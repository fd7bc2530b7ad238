package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/vote-monitor/internal/filestorage"
	"github.com/MKhiriev/vote-monitor/internal/service"
	"github.com/MKhiriev/vote-monitor/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrObserverInactive:        http.StatusBadRequest,
	service.ErrNgoInactive:             http.StatusBadRequest,
	service.ErrDeviceMismatch:          http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	filestorage.ErrEmptyFile: http.StatusBadRequest,

	store.ErrObserverNotFound: http.StatusNotFound,
	store.ErrNgoNotFound:      http.StatusNotFound,
	store.ErrNgoAdminNotFound: http.StatusNotFound,
	store.ErrAlreadyExists:    http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
