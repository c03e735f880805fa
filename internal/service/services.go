package service

import (
	"fmt"

	"github.com/MKhiriev/ssl-monitor/internal/config"
	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/models"
)

type Services struct {
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(logger),
	}, nil
}
