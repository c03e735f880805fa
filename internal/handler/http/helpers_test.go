package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/ssl-monitor/internal/config"
	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/internal/metrics"
	"github.com/MKhiriev/ssl-monitor/internal/service"
	"github.com/MKhiriev/ssl-monitor/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// testConfig mirrors the built-in defaults.
func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Title:       config.DefaultTitle,
			Description: config.DefaultDescription,
			Version:     config.DefaultVersion,
		},
		Server: config.Server{
			HTTPAddress:       config.DefaultHTTPAddress,
			RequestTimeout:    config.DefaultRequestTimeout,
			ReadHeaderTimeout: config.DefaultReadHeaderTimeout,
			ShutdownTimeout:   config.DefaultShutdownTimeout,
		},
		CORS: config.CORS{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"*"},
			AllowHeaders:  []string{"*"},
			ExposeHeaders: []string{traceIDHeader},
		},
		Log:     config.Log{Level: config.DefaultLogLevel},
		Metrics: config.Metrics{Path: config.DefaultMetricsPath},
	}
}

// newTestServices builds the real service layer with fixed build info.
func newTestServices(t *testing.T, cfg *config.StructuredConfig) *service.Services {
	t.Helper()

	services, err := service.NewServices(cfg.App, models.NewAppBuildInfo("v0.1.0", "2026-01-02", "abc123"), logger.Nop())
	require.NoError(t, err)
	return services
}

// newTestHandler creates a Handler with a nop logger (no stdout output)
// and a fresh metrics registry.
func newTestHandler(t *testing.T, cfg *config.StructuredConfig) (*Handler, *metrics.Metrics) {
	t.Helper()

	m := metrics.NewMetrics(prometheus.NewRegistry())
	return NewHandler(newTestServices(t, cfg), cfg, m, logger.Nop()), m
}

// newTestRouter returns the sealed dispatcher for cfg.
func newTestRouter(t *testing.T, cfg *config.StructuredConfig) (http.Handler, *metrics.Metrics) {
	t.Helper()

	h, m := newTestHandler(t, cfg)
	shell, err := h.Init()
	require.NoError(t, err)
	return shell.Handler(), m
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}
