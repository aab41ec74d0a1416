package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event types recorded in the append-only event log.
const (
	// EventPickPetal rate-limits petal picking to one per actor, plant,
	// and calendar day.
	EventPickPetal = "pick_petal"

	// EventEnableChristmas marks a user's garden as decorated for the
	// next two days.
	EventEnableChristmas = "enable_christmas"
)

// Event is one row of the append-only action log. Rate limits (petal picks,
// christmas mode) are answered by existence queries over this log instead of
// extra columns on the plant.
type Event struct {
	ID        uuid.UUID
	UserID    uuid.UUID // the acting user
	EventType string
	Target    string // what was acted on, e.g. "plant_<id>"
	CreatedAt time.Time
}

// PlantTarget formats the event target for actions against a plant.
func PlantTarget(plantID uuid.UUID) string {
	return fmt.Sprintf("plant_%s", plantID)
}
