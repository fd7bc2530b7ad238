// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"

	"github.com/MKhiriev/vote-monitor/internal/config"
	"github.com/MKhiriev/vote-monitor/internal/handler"
	"github.com/MKhiriev/vote-monitor/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer creates a transport server for every handler in handlers.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if handlers.GRPC != nil && cfg.GRPCAddress != "" {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) Start(ctx context.Context) error {
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		if err := s.httpServer.Start(ctx); err != nil {
			return err
		}
	}

	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		if err := s.gRPCServer.Start(ctx); err != nil {
			// do not leave the HTTP server running on a half-started server
			return errors.Join(err, s.shutdownHTTP(ctx))
		}
	}

	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.shutdownHTTP(ctx)

	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown(ctx)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) HTTPAddr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr()
}

func (s *server) GRPCAddr() string {
	if s.gRPCServer == nil {
		return ""
	}
	return s.gRPCServer.Addr()
}

func (s *server) shutdownHTTP(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
