package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/vote-monitor/internal/config"
	myGRPC "github.com/MKhiriev/vote-monitor/internal/handler/grpc"
	"github.com/MKhiriev/vote-monitor/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) Start(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}
	g.gRPCNetListener = listener

	// publish the real status before accepting probes
	g.handler.RefreshStatus(ctx)

	go func() {
		if err := g.server.Serve(listener); err != nil {
			g.logger.Error().Err(err).Msg("gRPC server Serve")
		}
	}()

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server started")
	return nil
}

// Shutdown stops the server gracefully, forcing it to stop when ctx ends first.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}

func (g *grpcServer) Addr() string {
	if g.gRPCNetListener == nil {
		return ""
	}
	return g.gRPCNetListener.Addr().String()
}
