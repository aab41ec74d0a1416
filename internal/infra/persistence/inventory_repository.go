package persistence

import (
	"context"

	"botany/internal/domain/entity"
	domainerrors "botany/internal/domain/errors"
	"botany/internal/domain/repository"
	"botany/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inventoryRepository implements the repository.InventoryRepository interface using GORM.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

// AddItem increases the quantity of an item, creating the slot if needed.
func (repo *inventoryRepository) AddItem(ctx context.Context, userID uuid.UUID, itemID int, quantity int) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot model.ItemSlotModel
		err := tx.First(&slot, "user_id = ? AND item_id = ?", userID, itemID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slot = model.ItemSlotModel{
				UserID:   userID,
				ItemID:   itemID,
				Quantity: quantity,
			}

			return tx.Create(&slot).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&slot).Update("quantity", slot.Quantity+quantity).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add inventory item")
	}

	return nil
}

// RemoveItem decreases the quantity of an item. It returns false, with no
// change, if the user holds fewer than the requested quantity.
func (repo *inventoryRepository) RemoveItem(ctx context.Context, userID uuid.UUID, itemID int, quantity int) (bool, error) {
	removed := false
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot model.ItemSlotModel
		err := tx.First(&slot, "user_id = ? AND item_id = ?", userID, itemID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if slot.Quantity < quantity {
			return nil
		}

		removed = true
		remaining := slot.Quantity - quantity
		if remaining == 0 {
			return tx.Delete(&slot).Error
		}

		return tx.Model(&slot).Update("quantity", remaining).Error
	})
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to remove inventory item")
	}

	return removed, nil
}

// GetQuantity reports how many of an item the user holds.
func (repo *inventoryRepository) GetQuantity(ctx context.Context, userID uuid.UUID, itemID int) (int, error) {
	var slot model.ItemSlotModel
	err := repo.db.WithContext(ctx).First(&slot, "user_id = ? AND item_id = ?", userID, itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to get inventory quantity")
	}

	return slot.Quantity, nil
}

// ListByUser returns every non-empty slot in the user's inventory.
func (repo *inventoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ItemSlot, error) {
	var models []model.ItemSlotModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND quantity > 0", userID).
		Order("item_id").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inventory")
	}

	slots := make([]*entity.ItemSlot, 0, len(models))
	for i := range models {
		slots = append(slots, &entity.ItemSlot{
			ID:       models[i].ID,
			UserID:   models[i].UserID,
			ItemID:   models[i].ItemID,
			Quantity: models[i].Quantity,
		})
	}

	return slots, nil
}
