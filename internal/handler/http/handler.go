// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/vote-monitor/internal/config"
	"github.com/MKhiriev/vote-monitor/internal/filestorage"
	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/metrics"
	"github.com/MKhiriev/vote-monitor/internal/probe"
	"github.com/MKhiriev/vote-monitor/internal/service"
)

type Handler struct {
	services  *service.Services
	files     filestorage.Service
	readiness []probe.Check
	metrics   *metrics.Metrics
	validate  *validator.Validate

	development               bool
	staticDir                 string
	requestTimeout            time.Duration
	invalidCredentialsMessage string

	startTime time.Time
	logger    *logger.Logger
}

func NewHandler(
	services *service.Services,
	files filestorage.Service,
	readiness []probe.Check,
	m *metrics.Metrics,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")

	message := cfg.MobileSecurity.InvalidCredentialsErrorMessage
	if message == "" {
		message = config.DefaultInvalidCredentialsMessage
	}

	return &Handler{
		services:                  services,
		files:                     files,
		readiness:                 readiness,
		metrics:                   m,
		validate:                  newValidator(),
		development:               cfg.App.IsDevelopment(),
		staticDir:                 cfg.Server.StaticDir,
		requestTimeout:            cfg.Server.RequestTimeout,
		invalidCredentialsMessage: message,
		startTime:                 time.Now(),
		logger:                    logger,
	}
}
