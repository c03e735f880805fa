// Package server wires and runs the service's transport servers.
//
// It owns the HTTP and optional gRPC server lifecycles: listening, signal
// handling, and graceful shutdown bounded by the configured timeout.
package server
