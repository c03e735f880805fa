package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/ssl-monitor/internal/app"
	"github.com/MKhiriev/ssl-monitor/models"
	"github.com/go-chi/chi/v5/middleware"
)

// endpoint describes a registered route together with what the API
// document says about it.
type endpoint struct {
	method      string
	path        string
	summary     string
	contentType string
	response    any
	handler     http.Handler
}

// Init builds the service shell, installs the middleware chain and the
// routes, and seals it. The returned handler is ready to be served.
//
// Middleware order, outermost first: trace ID, access log, panic recovery,
// metrics, CORS, request timeout, compression.
func (h *Handler) Init() (*app.App, error) {
	shell := app.New(h.services.AppInfoService.GetServiceInfo(context.Background()))

	middlewares := []app.Middleware{
		h.withTraceID,
		h.withLogging,
		h.withRecovery,
	}
	if h.metrics != nil {
		middlewares = append(middlewares, h.withMetrics)
	}
	middlewares = append(middlewares, h.withCORS())
	if h.server.RequestTimeout > 0 {
		middlewares = append(middlewares, middleware.Timeout(h.server.RequestTimeout))
	}
	middlewares = append(middlewares, middleware.Compress(5, "application/json"))

	if err := shell.Use(middlewares...); err != nil {
		return nil, fmt.Errorf("error registering middlewares: %w", err)
	}

	endpoints := h.endpoints()
	for _, e := range endpoints {
		if err := shell.Handle(e.method, e.path, e.handler); err != nil {
			return nil, fmt.Errorf("error registering route: %w", err)
		}
	}

	doc, err := newOpenAPIDocument(shell.Info(), endpoints)
	if err != nil {
		return nil, fmt.Errorf("error building openapi document: %w", err)
	}
	if err = shell.Get(openAPIPath, h.getOpenAPI(doc)); err != nil {
		return nil, fmt.Errorf("error registering route: %w", err)
	}

	if err = shell.NotFound(h.notFound); err != nil {
		return nil, fmt.Errorf("error registering not found handler: %w", err)
	}
	if err = shell.MethodNotAllowed(MethodNotAllowed); err != nil {
		return nil, fmt.Errorf("error registering method not allowed handler: %w", err)
	}

	shell.Handler()

	h.logger.Info().
		Int("routes", len(shell.Routes())).
		Msg("http routes registered")

	return shell, nil
}

func (h *Handler) endpoints() []endpoint {
	endpoints := []endpoint{
		{
			method:      http.MethodGet,
			path:        "/",
			summary:     "Service greeting",
			contentType: "application/json",
			response:    models.MessageResponse{},
			handler:     http.HandlerFunc(h.root),
		},
		{
			method:      http.MethodGet,
			path:        "/health",
			summary:     "Liveness probe",
			contentType: "application/json",
			response:    models.HealthResponse{},
			handler:     http.HandlerFunc(h.health),
		},
		{
			method:      http.MethodGet,
			path:        "/version",
			summary:     "API version and build metadata",
			contentType: "application/json",
			response:    models.VersionResponse{},
			handler:     http.HandlerFunc(h.getServerVersion),
		},
	}

	if h.metrics != nil {
		endpoints = append(endpoints, endpoint{
			method:      http.MethodGet,
			path:        h.metricsPath,
			summary:     "Prometheus metrics",
			contentType: "text/plain",
			handler:     h.metrics.Handler(),
		})
	}

	return endpoints
}
