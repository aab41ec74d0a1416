// Package model holds the GORM persistence models mirroring the database
// tables. They are kept separate from the domain entities so schema concerns
// never leak into the domain layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlantModel mirrors the 'plants' table. ActiveUserID is non-null only for a
// user's current plant; the unique index makes "one active plant per user" a
// database guarantee.
type PlantModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActiveUserID   *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	// Lifecycle timestamps are computed by the growth rules, so GORM's
	// automatic tracking is disabled for them.
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
	WateredAt      time.Time
	WateredAtOwner time.Time
	WateredByID    *uuid.UUID `gorm:"type:uuid;index:idx_plants_watered_by,priority:1"`
	FertilizedAt   time.Time
	Generation     int `gorm:"not null;default:1"`
	Score          int `gorm:"not null;default:0"`
	Stage          int `gorm:"not null;default:0"`
	Species        int `gorm:"not null"`
	Rarity         int `gorm:"not null"`
	Color          int `gorm:"not null"`
	Mutation       *int
	Dead           bool   `gorm:"not null;default:false"`
	Name           string `gorm:"type:varchar(40);not null"`
	ShakenAt       int    `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (PlantModel) TableName() string {
	return "plants"
}

// BeforeCreate assigns an ID when the caller did not. Keeps ID generation in
// the application so sqlite and postgres behave the same.
func (m *PlantModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
