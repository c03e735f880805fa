// Command healthcheck probes a running instance's liveness endpoint. It
// exits 0 when the instance reports "ok" and 1 otherwise, which makes it
// usable as a container HEALTHCHECK. With -version a healthy instance's
// version and build metadata are logged as well.
package main

import (
	"context"
	"os"

	"github.com/MKhiriev/ssl-monitor/internal/adapter"
	"github.com/MKhiriev/ssl-monitor/internal/config"
	"github.com/MKhiriev/ssl-monitor/internal/logger"
)

const (
	exitHealthy   = 0
	exitUnhealthy = 1
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.NewLogger("ssl-monitor-healthcheck")

	cfg, err := config.GetProbeConfig(args)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return exitUnhealthy
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Error().Err(err).Msg("error setting log level")
		return exitUnhealthy
	}

	client, err := adapter.NewHTTPServiceAdapter(cfg.URL, cfg.Timeout, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating service adapter")
		return exitUnhealthy
	}

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	return probe(ctx, client, cfg.ReportVersion, log)
}

// probe maps the liveness answer to an exit code. A failed version lookup
// is logged but does not fail a healthy instance.
func probe(ctx context.Context, client adapter.ServiceAdapter, reportVersion bool, log *logger.Logger) int {
	health, err := client.CheckHealth(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service is unhealthy")
		return exitUnhealthy
	}

	log.Debug().Str("status", health.Status).Msg("service is healthy")

	if reportVersion {
		version, err := client.Version(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("error getting service version")
			return exitHealthy
		}

		log.Info().
			Str("version", version.Version).
			Str("build_version", version.BuildVersion).
			Str("build_date", version.BuildDate).
			Str("build_commit", version.BuildCommit).
			Msg("service version")
	}

	return exitHealthy
}
