package http

import (
	"github.com/MKhiriev/ssl-monitor/internal/config"
	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/internal/metrics"
	"github.com/MKhiriev/ssl-monitor/internal/service"
	"github.com/MKhiriev/ssl-monitor/internal/utils"
)

// Handler is the root HTTP transport handler. It owns the cross-origin
// policy, the request metrics and the trace ID generator, and delegates
// response bodies to the service layer.
type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	cors        config.CORS
	server      config.Server
	metricsPath string

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. m may be nil, in which case neither
// the metrics middleware nor the metrics route is installed.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		metrics:     m,
		cors:        cfg.CORS,
		server:      cfg.Server,
		metricsPath: cfg.Metrics.Path,
		traceIDs:    utils.NewUUIDGenerator(),
		logger:      logger,
	}
}
