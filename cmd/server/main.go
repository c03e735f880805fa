package main

import (
	"fmt"

	"github.com/MKhiriev/ssl-monitor/internal/config"
	"github.com/MKhiriev/ssl-monitor/internal/handler"
	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/internal/metrics"
	"github.com/MKhiriev/ssl-monitor/internal/server"
	"github.com/MKhiriev/ssl-monitor/internal/service"
	"github.com/MKhiriev/ssl-monitor/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("ssl-monitor-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.CORS.WildcardWithCredentials() {
		log.Warn().
			Strs("allow_origins", cfg.CORS.AllowOrigins).
			Msg("wildcard CORS origin with credentials: every request origin will be reflected")
	}

	services, err := service.NewServices(cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, metrics.NewMetrics(metrics.NewRegistry()), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
