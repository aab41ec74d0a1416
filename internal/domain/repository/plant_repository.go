// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"botany/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlantNotFound is a domain-specific error returned when a plant is not found.
var ErrPlantNotFound = errors.New("plant not found")

// PlantRepository defines the standard operations for plant persistence.
// The application layer will depend on this interface, not the concrete implementation.
type PlantRepository interface {
	// FindByID retrieves a single plant by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error)

	// FindActiveByUser retrieves the user's current active plant.
	// Returns ErrPlantNotFound if the user has none.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Plant, error)

	// ListActive retrieves every plant that is currently someone's active
	// plant, dead ones included. Used by the garden view and the sweep.
	ListActive(ctx context.Context) ([]*entity.Plant, error)

	// Create persists a new plant entity to the storage.
	Create(ctx context.Context, plant *entity.Plant) error

	// Update modifies an existing plant entity in the storage.
	Update(ctx context.Context, plant *entity.Plant) error

	// ExistsWateredBy reports whether the given visitor has watered any
	// plant since the given time. Backs the visitor watering cooldown.
	ExistsWateredBy(ctx context.Context, visitorID uuid.UUID, since time.Time) (bool, error)
}
