package config

import (
	"strings"
	"time"
)

const wildcard = "*"

const (
	DefaultTitle             = "SSL Monitor Python Service"
	DefaultDescription       = "SSL certificate monitoring service"
	DefaultVersion           = "1.0.0"
	DefaultHTTPAddress       = "0.0.0.0:8000"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultLogLevel          = "info"
	DefaultMetricsPath       = "/metrics"
)

// defaultConfig returns the values used for every field no source set.
// Credentials stay off by default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Title:       DefaultTitle,
			Description: DefaultDescription,
			Version:     DefaultVersion,
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			RequestTimeout:    DefaultRequestTimeout,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
		CORS: CORS{
			AllowOrigins:  []string{wildcard},
			AllowMethods:  []string{wildcard},
			AllowHeaders:  []string{wildcard},
			ExposeHeaders: []string{"X-Trace-ID"},
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
		Metrics: Metrics{
			Path: DefaultMetricsPath,
		},
	}
}

// normalize trims list entries and drops the empty ones left by values
// such as "a, ,b".
func (cfg *StructuredConfig) normalize() {
	cfg.CORS.AllowOrigins = cleanList(cfg.CORS.AllowOrigins)
	cfg.CORS.AllowMethods = cleanList(cfg.CORS.AllowMethods)
	cfg.CORS.AllowHeaders = cleanList(cfg.CORS.AllowHeaders)
	cfg.CORS.ExposeHeaders = cleanList(cfg.CORS.ExposeHeaders)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
}

func cleanList(values []string) []string {
	if values == nil {
		return nil
	}

	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}
