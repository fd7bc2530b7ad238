package server

import "context"

// Server defines the lifecycle of the transport servers managed by this
// package. Start binds the listeners and serves in the background; Shutdown
// stops accepting connections and waits for in-flight requests until ctx ends.
type Server interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error

	// HTTPAddr and GRPCAddr return the bound listener addresses, or "" when
	// the transport is disabled or not started.
	HTTPAddr() string
	GRPCAddr() string
}
