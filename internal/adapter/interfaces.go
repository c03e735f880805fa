// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the service's HTTP API.
//
// The primary abstraction is [ServiceAdapter], used by the healthcheck
// probe to query a running instance. Failures map to the sentinel errors in
// errors.go so callers can match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/ssl-monitor/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_adapter_mock.go -package=mock

// ServiceAdapter queries a running ssl-monitor instance.
type ServiceAdapter interface {
	// CheckHealth calls the liveness probe. It returns [ErrUnhealthy]
	// (wrapped) when the instance answers but does not report "ok", and
	// [ErrUnexpectedStatus] (wrapped) for a non-200 response.
	CheckHealth(ctx context.Context) (models.HealthResponse, error)

	// Version fetches the API version and the build metadata.
	Version(ctx context.Context) (models.VersionResponse, error)
}
