// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/vote-monitor/models"
)

// AuthService authenticates observers and NGO admins and issues access tokens.
type AuthService interface {
	// LoginObserver checks the phone and PIN of an observer, binds the
	// requesting device and returns a signed token.
	LoginObserver(ctx context.Context, request models.AuthorizeRequest) (models.Token, error)
	// LoginNgoAdmin checks the account and password of an NGO admin and
	// returns a signed token.
	LoginNgoAdmin(ctx context.Context, request models.AdminAuthorizeRequest) (models.Token, error)

	CreateToken(ctx context.Context, identity models.Identity) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (*models.Claims, error)
}

// NgoService reads NGOs through the application cache.
type NgoService interface {
	GetNgo(ctx context.Context, id int64) (models.Ngo, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
