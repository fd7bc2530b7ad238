// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthorizeRequest is the body of the observer login endpoint.
type AuthorizeRequest struct {
	// User is the observer's phone number.
	User string `json:"user" validate:"required"`

	// Password is the observer's PIN in clear text.
	Password string `json:"password" validate:"required"`

	// UniqueID identifies the mobile device the request comes from.
	UniqueID string `json:"uniqueId"`
}

// AdminAuthorizeRequest is the body of the NGO admin login endpoint.
type AdminAuthorizeRequest struct {
	User     string `json:"user" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by both login endpoints.
type TokenResponse struct {
	AccessToken string `json:"access_token"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int `json:"expires_in"`
}

// Identity is the authenticated principal a token is issued for.
type Identity struct {
	// Subject becomes the "sub" claim: the observer's phone or the admin's account.
	Subject    string
	ObserverID int64
	NgoAdminID int64
	NgoID      int64
	Organizer  bool
}
