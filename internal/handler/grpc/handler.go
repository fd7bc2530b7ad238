// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/internal/probe"
)

// ServiceName is the health service name reported next to the overall ("") status.
const ServiceName = "votemonitor.API"

// Handler is the root gRPC transport handler. It serves the standard gRPC
// health protocol, with the serving status derived from the readiness checks.
type Handler struct {
	health *health.Server
	checks []probe.Check

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The status is NOT_SERVING until the
// first RefreshStatus call.
func NewHandler(checks []probe.Check, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		checks: checks,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register installs the health service on server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// RefreshStatus runs the readiness checks and publishes the result.
func (h *Handler) RefreshStatus(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := probe.Run(ctx, h.checks); err != nil {
		h.logger.Warn().Err(err).Msg("gRPC health is not serving")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
