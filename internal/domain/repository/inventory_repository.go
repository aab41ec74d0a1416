package repository

import (
	"context"

	"botany/internal/domain/entity"

	"github.com/google/uuid"
)

// InventoryRepository defines the operations for a user's item holdings.
type InventoryRepository interface {
	// AddItem increases the quantity of an item in the user's inventory,
	// creating the slot if needed.
	AddItem(ctx context.Context, userID uuid.UUID, itemID int, quantity int) error

	// RemoveItem decreases the quantity of an item in the user's
	// inventory. It returns false, with no change, if the user holds
	// fewer than the requested quantity. A slot drained to zero is
	// removed entirely.
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID int, quantity int) (bool, error)

	// GetQuantity reports how many of an item the user holds.
	GetQuantity(ctx context.Context, userID uuid.UUID, itemID int) (int, error)

	// ListByUser returns every non-empty slot in the user's inventory.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ItemSlot, error)
}
