// Package grpc implements the gRPC transport of the service: the standard
// grpc.health.v1.Health service, driven by the liveness service.
package grpc

import (
	"context"

	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/internal/service"
	"github.com/MKhiriev/ssl-monitor/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name under which the service reports its health, next
// to the empty name that stands for the whole server.
const ServiceName = "ssl-monitor"

// Handler is the root gRPC transport handler.
//
// It owns the health server and maps the liveness service onto its serving
// status. A handler instance is created once at startup and shared by the
// gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Every service reports NOT_SERVING until [Handler.Register] runs.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register installs the health service on s and publishes the current
// liveness.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
	h.Refresh(context.Background())
}

// Refresh asks the liveness service for the current state and publishes it
// for both the server and [ServiceName].
func (h *Handler) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.services.HealthService.Liveness(ctx).Status == models.HealthStatusOK {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)

	h.logger.Debug().Str("status", status.String()).Msg("gRPC health status published")
}

// Shutdown switches every service to NOT_SERVING and ignores later status
// updates, so clients drain before the server stops.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health switched to NOT_SERVING")
	h.health.Shutdown()
}
