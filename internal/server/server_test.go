package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/ssl-monitor/internal/config"
	"github.com/MKhiriev/ssl-monitor/internal/handler"
	"github.com/MKhiriev/ssl-monitor/internal/logger"
	"github.com/MKhiriev/ssl-monitor/internal/service"
	"github.com/MKhiriev/ssl-monitor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func testConfig(httpAddress, grpcAddress string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Title:       config.DefaultTitle,
			Description: config.DefaultDescription,
			Version:     config.DefaultVersion,
		},
		Server: config.Server{
			HTTPAddress:       httpAddress,
			GRPCAddress:       grpcAddress,
			RequestTimeout:    time.Second,
			ReadHeaderTimeout: time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		CORS: config.CORS{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"*"},
			AllowHeaders: []string{"*"},
		},
		Metrics: config.Metrics{Path: config.DefaultMetricsPath},
	}
}

func newTestServer(t *testing.T, cfg *config.StructuredConfig) *server {
	t.Helper()

	services, err := service.NewServices(cfg.App, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg, nil, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

// start binds the listeners and serves in the background. The returned
// channel yields the result of serve once ctx is cancelled.
func start(t *testing.T, s *server, ctx context.Context) <-chan error {
	t.Helper()

	require.NoError(t, s.listen())

	done := make(chan error, 1)
	go func() { done <- s.serve(ctx) }()
	return done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()

	select {
	case err := <-done:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop in time")
		return nil
	}
}

func TestNewServer_NoAddresses(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestServer_ServesHTTPUntilCancelled(t *testing.T) {
	s := newTestServer(t, testConfig("127.0.0.1:0", ""))
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, s, ctx)

	resp, err := http.Get("http://" + s.httpServer.listener.Addr().String() + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"status":"ok"}`, string(body))

	cancel()
	require.NoError(t, waitDone(t, done))

	_, err = http.Get("http://" + s.httpServer.listener.Addr().String() + "/health")
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestServer_ListenErrorIsReturned(t *testing.T) {
	s := newTestServer(t, testConfig("127.0.0.1:0", ""))
	require.NoError(t, s.listen())
	t.Cleanup(func() { _ = s.httpServer.listener.Close() })

	taken := newTestServer(t, testConfig(s.httpServer.listener.Addr().String(), ""))
	err := taken.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error listening on HTTP address")
}

func TestServer_GRPCHealthLifecycle(t *testing.T) {
	s := newTestServer(t, testConfig("127.0.0.1:0", "127.0.0.1:0"))
	ctx, cancel := context.WithCancel(context.Background())
	done := start(t, s, ctx)

	conn, err := grpc.NewClient(s.gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	client := healthpb.NewHealthClient(conn)

	checkCtx, checkCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer checkCancel()
	resp, err := client.Check(checkCtx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	// drain alone must flip the status while the server still answers
	s.gRPCServer.drain()
	resp, err = client.Check(checkCtx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestServer_ShutdownWithoutServing(t *testing.T) {
	s := newTestServer(t, testConfig("127.0.0.1:0", ""))

	assert.NoError(t, s.Shutdown(context.Background()))
}
