package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT arrives, then
	// shuts down gracefully.
	RunServer()

	// Run serves until ctx is cancelled or a transport fails, then shuts
	// down within the configured shutdown timeout.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and drains in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
