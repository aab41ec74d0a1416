package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventModel mirrors the 'events' table, the append-only action log used for
// rate limiting.
type EventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_events_lookup,priority:1"`
	EventType string    `gorm:"type:varchar(50);not null;index:idx_events_lookup,priority:2"`
	Target    string    `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt time.Time `gorm:"index:idx_events_lookup,priority:3"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// All lists every persistence model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&PlantModel{},
		&ItemSlotModel{},
		&EventModel{},
	}
}
