// Package handler assembles the transport handlers enabled by the server
// configuration.
package handler

import (
	"github.com/MKhiriev/ssl-monitor/internal/config"
	"github.com/MKhiriev/ssl-monitor/internal/handler/grpc"
	"github.com/MKhiriev/ssl-monitor/internal/handler/http"
	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/internal/metrics"
	"github.com/MKhiriev/ssl-monitor/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, m, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
