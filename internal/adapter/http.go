package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/internal/utils"
	"github.com/MKhiriev/ssl-monitor/models"
)

const (
	healthPath  = "/health"
	versionPath = "/version"
)

type httpServiceAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServiceAdapter constructs the HTTP implementation of
// [ServiceAdapter]. address may omit the scheme, in which case http is
// assumed. A non-positive timeout disables the per-request limit.
func NewHTTPServiceAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServiceAdapter{
		client: utils.NewHTTPClientFor(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServiceAdapter) CheckHealth(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	if err := h.getJSON(ctx, healthPath, &health); err != nil {
		return health, err
	}

	if health.Status != models.HealthStatusOK {
		return health, fmt.Errorf("%w: status %q", ErrUnhealthy, health.Status)
	}

	return health, nil
}

func (h *httpServiceAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	err := h.getJSON(ctx, versionPath, &version)
	return version, err
}

func (h *httpServiceAdapter) getJSON(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrRequestFailed, path, err)
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("service responded")

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: GET %s: %d", ErrUnexpectedStatus, path, resp.StatusCode())
	}
	if !strings.HasPrefix(resp.Header().Get("Content-Type"), "application/json") {
		return fmt.Errorf("%w: GET %s: content type %q", ErrMalformedResponse, path, resp.Header().Get("Content-Type"))
	}

	return nil
}
