// Package usecase defines the application's use case interfaces and their
// input/output DTOs. Handlers depend on these interfaces, never on the
// implementations in impl.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PlantStatus is the view of a plant handed to the delivery layer. All
// percentages and display strings are derived from timestamps at read time.
type PlantStatus struct {
	ID                 uuid.UUID `json:"id"`
	OwnerID            uuid.UUID `json:"owner_id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Stage              int       `json:"stage"`
	StageName          string    `json:"stage_name"`
	Generation         int       `json:"generation"`
	Score              int       `json:"score"`
	AgeDays            int       `json:"age_days"`
	Health             string    `json:"health"`
	Dead               bool      `json:"dead"`
	WaterSupplyPercent int       `json:"water_supply_percent"`
	FertilizerPercent  int       `json:"fertilizer_percent"`
	WaterGauge         string    `json:"water_gauge"`
	FertilizerGauge    string    `json:"fertilizer_gauge"`
	NeglectedDays      int       `json:"neglected_days"`
	Neglected          bool      `json:"neglected"`
	FenceActive        bool      `json:"fence_active"`
}

// ActionResult carries the outcome of one plant action: the narrative
// message shown to the player and the plant's state after the action.
// Rejected actions come back as a message with unchanged state, not as an
// error.
type ActionResult struct {
	Message string       `json:"message"`
	Plant   *PlantStatus `json:"plant"`
}

// RenamePlantInput is the request body for renaming the active plant.
type RenamePlantInput struct {
	Name string `json:"name" validate:"required,max=40"`
}

// PlantUsecase drives a user's own active plant. Every method loads the
// active plant (creating one lazily if the user has none), refreshes it
// against the clock, applies at most one action, and persists the result.
type PlantUsecase interface {
	// GetPlant returns the user's active plant, brought current.
	GetPlant(ctx context.Context, userID uuid.UUID) (*PlantStatus, error)

	// Water waters the user's own plant.
	Water(ctx context.Context, userID uuid.UUID) (*ActionResult, error)

	// Fertilize applies one fertilizer item from the user's inventory.
	Fertilize(ctx context.Context, userID uuid.UUID) (*ActionResult, error)

	// Shake converts accrued score into coins, capped per call.
	Shake(ctx context.Context, userID uuid.UUID) (*ActionResult, error)

	// PickPetal picks a petal from the user's own flowering plant.
	PickPetal(ctx context.Context, userID uuid.UUID) (*ActionResult, error)

	// Harvest retires a dead or fully matured plant and sprouts the next one.
	Harvest(ctx context.Context, userID uuid.UUID) (*ActionResult, error)

	// UseChristmasCheer consumes a christmas cheer item to decorate the
	// user's garden for two days.
	UseChristmasCheer(ctx context.Context, userID uuid.UUID) (*ActionResult, error)

	// Rename sets the active plant's nickname.
	Rename(ctx context.Context, userID uuid.UUID, input *RenamePlantInput) (*PlantStatus, error)
}

// VisitUsecase covers actions performed on somebody else's plant.
type VisitUsecase interface {
	// WaterPlant waters another user's plant, subject to the visitor
	// cooldown and the owner's fence.
	WaterPlant(ctx context.Context, visitorID, plantID uuid.UUID) (*ActionResult, error)

	// FertilizePlant applies the visitor's own fertilizer to another
	// user's plant, subject to the owner's fence.
	FertilizePlant(ctx context.Context, visitorID, plantID uuid.UUID) (*ActionResult, error)

	// PickPetal picks a petal from another user's flowering plant.
	PickPetal(ctx context.Context, visitorID, plantID uuid.UUID) (*ActionResult, error)
}
