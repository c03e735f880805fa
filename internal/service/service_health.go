package service

import (
	"context"

	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/models"
)

type healthService struct {
	logger *logger.Logger
}

func NewHealthService(logger *logger.Logger) HealthService {
	return &healthService{logger: logger}
}

func (s *healthService) Liveness(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{Status: models.HealthStatusOK}
}
