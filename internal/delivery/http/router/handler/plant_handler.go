package handler

import (
	"context"
	"log/slog"
	"net/http"

	"botany/internal/delivery/http/middleware"
	"botany/internal/delivery/http/response"
	"botany/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlantHandler holds dependencies for plant action handlers. Actions on the
// caller's own plant and visits to other plants both land here.
type PlantHandler struct {
	uc      usecase.PlantUsecase
	visitUC usecase.VisitUsecase
	logger  *slog.Logger
}

// NewPlantHandler is the constructor for PlantHandler, injected by Fx.
func NewPlantHandler(uc usecase.PlantUsecase, visitUC usecase.VisitUsecase, logger *slog.Logger) *PlantHandler {
	return &PlantHandler{
		uc:      uc,
		visitUC: visitUC,
		logger:  logger,
	}
}

// GetPlant returns the caller's active plant, brought current.
func (h *PlantHandler) GetPlant(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated")
	}

	status, err := h.uc.GetPlant(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// Water waters the caller's own plant.
func (h *PlantHandler) Water(c echo.Context) error {
	return h.action(c, h.uc.Water)
}

// Fertilize applies one fertilizer item to the caller's own plant.
func (h *PlantHandler) Fertilize(c echo.Context) error {
	return h.action(c, h.uc.Fertilize)
}

// Shake converts accrued growth into coins.
func (h *PlantHandler) Shake(c echo.Context) error {
	return h.action(c, h.uc.Shake)
}

// PickPetal picks a petal from the caller's flowering plant.
func (h *PlantHandler) PickPetal(c echo.Context) error {
	return h.action(c, h.uc.PickPetal)
}

// Harvest retires the caller's plant and sprouts the next generation.
func (h *PlantHandler) Harvest(c echo.Context) error {
	return h.action(c, h.uc.Harvest)
}

// UseChristmasCheer decorates the caller's garden for two days.
func (h *PlantHandler) UseChristmasCheer(c echo.Context) error {
	return h.action(c, h.uc.UseChristmasCheer)
}

// Rename sets the caller's plant nickname.
func (h *PlantHandler) Rename(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated")
	}

	var input usecase.RenamePlantInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rename input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	status, err := h.uc.Rename(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "Plant renamed")
}

// VisitWater waters another user's plant.
func (h *PlantHandler) VisitWater(c echo.Context) error {
	return h.visit(c, h.visitUC.WaterPlant)
}

// VisitFertilize applies the caller's fertilizer to another user's plant.
func (h *PlantHandler) VisitFertilize(c echo.Context) error {
	return h.visit(c, h.visitUC.FertilizePlant)
}

// VisitPickPetal picks a petal from another user's flowering plant.
func (h *PlantHandler) VisitPickPetal(c echo.Context) error {
	return h.visit(c, h.visitUC.PickPetal)
}

func (h *PlantHandler) action(c echo.Context, fn func(ctx context.Context, userID uuid.UUID) (*usecase.ActionResult, error)) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated")
	}

	result, err := fn(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, result.Message)
}

func (h *PlantHandler) visit(c echo.Context, fn func(ctx context.Context, visitorID, plantID uuid.UUID) (*usecase.ActionResult, error)) error {
	visitorID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Not authenticated")
	}

	plantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PLANT_ID", "Invalid plant id")
	}

	result, err := fn(c.Request().Context(), visitorID, plantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, result.Message)
}
