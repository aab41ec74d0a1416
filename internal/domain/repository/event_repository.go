package repository

import (
	"context"
	"time"

	"botany/internal/domain/entity"

	"github.com/google/uuid"
)

// EventRepository defines the operations for the append-only event log.
type EventRepository interface {
	// Create appends an event to the log.
	Create(ctx context.Context, event *entity.Event) error

	// Exists reports whether the user has an event of the given type and
	// target created at or after the given time. Target may be empty to
	// match any target.
	Exists(ctx context.Context, userID uuid.UUID, eventType, target string, since time.Time) (bool, error)
}
