package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthService_Liveness_AlwaysOK(t *testing.T) {
	svc := NewHealthService(logger.Nop())

	assert.Equal(t, models.HealthResponse{Status: "ok"}, svc.Liveness(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, "ok", svc.Liveness(ctx).Status, "liveness ignores request cancellation")
}

func TestNewServices_Success(t *testing.T) {
	services, err := NewServices(testAppConfig("1.0.0"), testBuildInfo, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services)
	assert.NotNil(t, services.AppInfoService)
	assert.NotNil(t, services.HealthService)
}

func TestNewServices_InvalidAppConfig(t *testing.T) {
	services, err := NewServices(testAppConfig(""), testBuildInfo, logger.Nop())

	assert.Nil(t, services)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
