package usecase

import (
	"context"

	"github.com/google/uuid"
)

// GardenEntry is one plant in the community garden listing.
type GardenEntry struct {
	PlantID     uuid.UUID `json:"plant_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Owner       string    `json:"owner"`
	PlantName   string    `json:"plant_name"`
	Description string    `json:"description"`
	Health      string    `json:"health"`
	WaterSupply int       `json:"water_supply_percent"`
	FenceActive bool      `json:"fence_active"`
}

// GardenUsecase exposes the community garden: every user's active plant,
// available for visiting.
type GardenUsecase interface {
	// ListGarden returns all active plants with display state brought
	// current. The listing itself does not persist refreshes; the sweep
	// worker keeps stored state fresh.
	ListGarden(ctx context.Context) ([]*GardenEntry, error)
}
