package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vote-monitor/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTParams groups the issuing parameters of access tokens.
type JWTParams struct {
	Issuer   string
	Audience string
	SignKey  string
	ValidFor time.Duration
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for identity.
//
// The token includes the following standard claims:
//   - Subject   (sub): identity.Subject
//   - ID        (jti): tokenID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus params.ValidFor
//   - Issuer    (iss) and Audience (aud) from params
//
// The identity ids are carried as the IdNgo, IdObserver, NgoAdminId and
// Organizer claims.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(params, identity, "0192...", time.Now())
func GenerateJWTToken(params JWTParams, identity models.Identity, tokenID string, now time.Time) (models.Token, error) {
	if params.Issuer == "" || params.ValidFor <= 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}
	if identity.Subject == "" {
		return models.Token{}, errors.New("empty subject")
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   identity.Subject,
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(now.Add(params.ValidFor)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		NgoID:      identity.NgoID,
		ObserverID: identity.ObserverID,
		NgoAdminID: identity.NgoAdminID,
		Organizer:  identity.Organizer,
	}
	if params.Audience != "" {
		claims.Audience = jwt.ClaimStrings{params.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString, ValidFor: params.ValidFor}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using params.SignKey (HS256 only)
//   - Issuer (iss) and, when configured, audience (aud) checks
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
func ValidateAndParseJWTToken(tokenString string, params JWTParams) (*models.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithIssuer(params.Issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if params.Audience != "" {
		opts = append(opts, jwt.WithAudience(params.Audience))
	}

	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("empty subject error")
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
