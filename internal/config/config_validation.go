// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strconv"

	"github.com/rs/zerolog"
)

// reservedPaths are served by the HTTP handler and cannot host metrics.
var reservedPaths = []string{"/", "/health", "/version", "/openapi.json"}

// validate checks that the final merged [StructuredConfig] satisfies all
// service invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := validateAddress(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: http address: %w", ErrInvalidServerConfigs, err)
	}

	if cfg.Server.GRPCAddress != "" {
		if err := validateAddress(cfg.Server.GRPCAddress); err != nil {
			return fmt.Errorf("%w: grpc address: %w", ErrInvalidServerConfigs, err)
		}
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ReadHeaderTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	for _, origin := range cfg.CORS.AllowOrigins {
		if err := validateOrigin(origin); err != nil {
			return fmt.Errorf("%w: origin %q: %w", ErrInvalidCORSConfigs, origin, err)
		}
	}

	if cfg.CORS.MaxAge < 0 {
		return fmt.Errorf("%w: max age must not be negative", ErrInvalidCORSConfigs)
	}

	if err := validateLogLevel(cfg.Log.Level); err != nil {
		return err
	}

	if len(cfg.Metrics.Path) == 0 || cfg.Metrics.Path[0] != '/' {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidMetricsConfigs, cfg.Metrics.Path)
	}
	if slices.Contains(reservedPaths, cfg.Metrics.Path) {
		return fmt.Errorf("%w: path %q is already routed", ErrInvalidMetricsConfigs, cfg.Metrics.Path)
	}

	return nil
}

func validateLogLevel(level string) error {
	if _, err := zerolog.ParseLevel(level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}

func validateAddress(address string) error {
	_, port, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}

	p, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("port %q is not a number", port)
	}
	if p < 0 || p > 65535 {
		return fmt.Errorf("port %d out of range", p)
	}

	return nil
}

// validateOrigin accepts "*" or an absolute scheme://host[:port] origin.
func validateOrigin(origin string) error {
	if origin == wildcard {
		return nil
	}

	u, err := url.Parse(origin)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("origin must be in a form scheme://host[:port]")
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not carry a path, query or fragment")
	}

	return nil
}
