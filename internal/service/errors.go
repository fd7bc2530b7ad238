package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrObserverInactive    = errors.New("observer is not active")
	ErrNgoInactive         = errors.New("ngo is not active")
	ErrDeviceMismatch      = errors.New("observer is bound to another device")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
