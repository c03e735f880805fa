// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"slices"
	"time"
)

// StructuredConfig is the top-level configuration container of the
// ssl-monitor service. It is populated by merging values from command-line
// flags, environment variables, and an optional JSON file, then completed
// with defaults and validated.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the service metadata shown in documentation output.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// CORS holds the cross-origin policy applied to every HTTP request.
	CORS CORS `envPrefix:"CORS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Metrics holds the Prometheus exposition settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the descriptive metadata of the service.
type App struct {
	// Title is the displayed service name.
	// Env: APP_TITLE
	Title string `env:"TITLE"`

	// Description is a human-readable summary of the service.
	// Env: APP_DESCRIPTION
	Description string `env:"DESCRIPTION"`

	// Version is the semantic version string of the service API
	// (e.g. "1.0.0"). Exposed via /version and /openapi.json.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the optional gRPC health server.
	// Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// HTTP request before its context is cancelled.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ReadHeaderTimeout bounds how long the HTTP server waits for request
	// headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds how long in-flight requests may drain after a
	// stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// CORS is the cross-origin policy. List fields accept "*" as a wildcard
// and are read from comma-separated env values.
type CORS struct {
	// AllowOrigins lists the permitted request origins.
	// Env: CORS_ALLOW_ORIGINS
	AllowOrigins []string `env:"ALLOW_ORIGINS"`

	// AllowCredentials enables Access-Control-Allow-Credentials.
	// Env: CORS_ALLOW_CREDENTIALS
	AllowCredentials bool `env:"ALLOW_CREDENTIALS"`

	// AllowMethods lists the methods permitted on preflight.
	// Env: CORS_ALLOW_METHODS
	AllowMethods []string `env:"ALLOW_METHODS"`

	// AllowHeaders lists the request headers permitted on preflight.
	// Env: CORS_ALLOW_HEADERS
	AllowHeaders []string `env:"ALLOW_HEADERS"`

	// ExposeHeaders lists response headers readable by browser scripts.
	// Env: CORS_EXPOSE_HEADERS
	ExposeHeaders []string `env:"EXPOSE_HEADERS"`

	// MaxAge is how long, in seconds, a preflight result may be cached.
	// Zero omits the header.
	// Env: CORS_MAX_AGE
	MaxAge int `env:"MAX_AGE"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Metrics holds the Prometheus exposition settings.
type Metrics struct {
	// Path is the HTTP path serving the metrics.
	// Env: METRICS_PATH
	Path string `env:"PATH"`
}

// AllowsAnyOrigin reports whether the origin list contains the wildcard.
func (c CORS) AllowsAnyOrigin() bool {
	return slices.Contains(c.AllowOrigins, wildcard)
}

// WildcardWithCredentials reports the contradictory combination of a
// wildcard origin and credentialed requests. Browsers refuse
// "Access-Control-Allow-Origin: *" on credentialed responses, so the
// middleware reflects the request origin instead.
func (c CORS) WildcardWithCredentials() bool {
	return c.AllowCredentials && c.AllowsAnyOrigin()
}

// GetStructuredConfig loads, merges, and validates the service
// configuration from all available sources in the following priority order
// (the first source holding a non-zero value wins; timeouts, credentials and
// max age also honor an explicit zero):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withJSON().
		build()
}
