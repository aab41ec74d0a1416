package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemSlotModel mirrors the 'item_slots' table. One row per user and item
// kind; the quantity is adjusted in place and the row removed when drained.
type ItemSlotModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_item_slots_user_item,priority:1"`
	ItemID   int       `gorm:"not null;uniqueIndex:idx_item_slots_user_item,priority:2"`
	Quantity int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ItemSlotModel) TableName() string {
	return "item_slots"
}

func (m *ItemSlotModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
