package models

import "time"

// Observer is a field user (poll watcher) registered by an NGO.
// Observers authenticate with their phone number and a PIN.
type Observer struct {
	// ID is the internal identifier of the observer.
	ID int64 `json:"id"`

	// Phone is the observer's phone number. It doubles as the login.
	Phone string `json:"phone"`

	// Pin holds the hashed PIN. It is never serialized.
	Pin string `json:"-"`

	// Name is the display name of the observer.
	Name string `json:"name"`

	// NgoID references the NGO that registered the observer.
	NgoID int64 `json:"idNgo"`

	// IsActive reports whether the observer may log in.
	IsActive bool `json:"isActive"`

	// MobileDeviceID is the unique id of the device the observer first
	// authenticated from. Empty until the first successful login.
	MobileDeviceID string `json:"-"`

	// DeviceRegisterDate is set together with MobileDeviceID.
	DeviceRegisterDate *time.Time `json:"deviceRegisterDate,omitempty"`
}

// HasDevice reports whether a mobile device is already bound to the observer.
func (o Observer) HasDevice() bool {
	return o.MobileDeviceID != ""
}
