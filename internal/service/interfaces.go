//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/ssl-monitor/models"
)

// AppInfoService exposes the descriptive metadata of the running service.
type AppInfoService interface {
	// GetServiceInfo returns the title, description and version.
	GetServiceInfo(ctx context.Context) models.ServiceInfo
	// GetAppVersion returns the configured API version.
	GetAppVersion(ctx context.Context) string
	// GetVersionInfo returns the API version with the build metadata.
	GetVersionInfo(ctx context.Context) models.VersionResponse
	// GetGreeting returns the root endpoint message.
	GetGreeting(ctx context.Context) models.MessageResponse
}

// HealthService answers liveness probes. A reply says the process is
// scheduling work, nothing about downstream dependencies.
type HealthService interface {
	Liveness(ctx context.Context) models.HealthResponse
}
