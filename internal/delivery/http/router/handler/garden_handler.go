package handler

import (
	"log/slog"
	"net/http"

	"botany/internal/delivery/http/response"
	"botany/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GardenHandler serves the community garden listing.
type GardenHandler struct {
	uc     usecase.GardenUsecase
	logger *slog.Logger
}

// NewGardenHandler is the constructor for GardenHandler, injected by Fx.
func NewGardenHandler(uc usecase.GardenUsecase, logger *slog.Logger) *GardenHandler {
	return &GardenHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListGarden returns every active plant in the community garden.
func (h *GardenHandler) ListGarden(c echo.Context) error {
	entries, err := h.uc.ListGarden(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}
