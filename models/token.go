package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by access tokens.
//
// Beside the registered claims (sub, jti, iat, exp, iss, aud) it holds the
// ids the authorization policy and the handlers rely on. IdNgo is mandatory
// for every authorized route.
type Claims struct {
	jwt.RegisteredClaims

	NgoID      int64 `json:"IdNgo,omitempty"`
	ObserverID int64 `json:"IdObserver,omitempty"`
	NgoAdminID int64 `json:"NgoAdminId,omitempty"`
	Organizer  bool  `json:"Organizer,omitempty"`
}

// Token is an issued access token.
type Token struct {
	Claims

	// SignedString is the compact JWS representation (header.payload.signature).
	SignedString string `json:"-"`

	// ValidFor is the lifetime the token was issued with.
	ValidFor time.Duration `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// ExpiresIn returns the token lifetime in whole seconds.
func (t Token) ExpiresIn() int {
	return int(t.ValidFor / time.Second)
}
