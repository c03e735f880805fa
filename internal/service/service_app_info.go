package service

import (
	"context"

	"github.com/MKhiriev/ssl-monitor/internal/app"
	"github.com/MKhiriev/ssl-monitor/internal/config"
	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/models"
)

type appInfoService struct {
	info      models.ServiceInfo
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if cfg.Title == "" {
		return nil, ErrTitleIsNotSpecified
	}

	return &appInfoService{
		info: models.ServiceInfo{
			Title:       cfg.Title,
			Description: cfg.Description,
			Version:     cfg.Version,
		},
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetServiceInfo(ctx context.Context) models.ServiceInfo {
	return s.info
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Version:      s.info.Version,
		BuildVersion: s.buildInfo.BuildVersion(),
		BuildDate:    s.buildInfo.BuildDate(),
		BuildCommit:  s.buildInfo.BuildCommit(),
	}
}

// GetGreeting is independent of the configured title: clients match on
// the exact message.
func (s *appInfoService) GetGreeting(ctx context.Context) models.MessageResponse {
	return models.MessageResponse{Message: app.MsgRootGreeting}
}
