package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"botany/config"
	httpmiddleware "botany/internal/delivery/http/middleware"
	"botany/internal/delivery/http/router"
	"botany/internal/delivery/http/router/handler"
	mockSvc "botany/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestServer(t *testing.T) *httpServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1K"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	params := HTTPParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    logger,
		RouterParams: router.RouterParams{
			UserHandler:    handler.NewUserHandler(nil, logger),
			PlantHandler:   handler.NewPlantHandler(nil, nil, logger),
			GardenHandler:  handler.NewGardenHandler(nil, logger),
			AuthMiddleware: httpmiddleware.NewAuthMiddleware(mockSvc.NewMockTokenService(t)),
		},
		ErrorMiddleware: httpmiddleware.NewErrorMiddleware(logger),
	}

	srv, err := NewServer(params)
	require.NoError(t, err)

	return srv.(*httpServer)
}

func TestServer_RejectsOversizedRequestBodies(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	body := strings.Repeat("a", 2048)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
