package persistence

import (
	"context"
	"time"

	"botany/internal/domain/entity"
	domainerrors "botany/internal/domain/errors"
	"botany/internal/domain/repository"
	"botany/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// plantRepository implements the repository.PlantRepository interface using GORM.
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository is the constructor for plantRepository.
func NewPlantRepository(db *gorm.DB) repository.PlantRepository {
	return &plantRepository{db: db}
}

// FindByID retrieves a single plant by its unique ID.
func (repo *plantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plant, error) {
	var plantM model.PlantModel
	if err := repo.db.WithContext(ctx).First(&plantM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find plant by id")
	}

	return toPlantDomain(&plantM), nil
}

// FindActiveByUser retrieves the user's current active plant.
func (repo *plantRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Plant, error) {
	var plantM model.PlantModel
	if err := repo.db.WithContext(ctx).First(&plantM, "active_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlantNotFound
		}

		return nil, errors.Wrap(err, "failed to find active plant")
	}

	return toPlantDomain(&plantM), nil
}

// ListActive retrieves every plant that is currently someone's active plant.
func (repo *plantRepository) ListActive(ctx context.Context) ([]*entity.Plant, error) {
	var models []model.PlantModel
	if err := repo.db.WithContext(ctx).
		Where("active_user_id IS NOT NULL").
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active plants")
	}

	plants := make([]*entity.Plant, 0, len(models))
	for i := range models {
		plants = append(plants, toPlantDomain(&models[i]))
	}

	return plants, nil
}

// Create persists a new plant entity to the database.
func (repo *plantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	if err := repo.db.WithContext(ctx).Create(plantM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create plant")
	}

	// Copy back the generated ID and timestamps.
	plant.ID = plantM.ID

	return nil
}

// Update modifies an existing plant entity in the database.
func (repo *plantRepository) Update(ctx context.Context, plant *entity.Plant) error {
	plantM := fromPlantDomain(plant)

	// Save with a full field list so zero values (dead flag cleared,
	// mutation removed) are written too.
	if err := repo.db.WithContext(ctx).
		Select("*").
		Save(plantM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update plant")
	}

	return nil
}

// ExistsWateredBy reports whether the visitor has watered any plant since the
// given time.
func (repo *plantRepository) ExistsWateredBy(ctx context.Context, visitorID uuid.UUID, since time.Time) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PlantModel{}).
		Where("watered_by_id = ? AND watered_at >= ?", visitorID, since).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check visitor watering")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// toPlantDomain converts a GORM PlantModel to a domain Plant entity.
func toPlantDomain(data *model.PlantModel) *entity.Plant {
	if data == nil {
		return nil
	}

	return &entity.Plant{
		ID:             data.ID,
		UserID:         data.UserID,
		ActiveUserID:   data.ActiveUserID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		WateredAt:      data.WateredAt,
		WateredAtOwner: data.WateredAtOwner,
		WateredByID:    data.WateredByID,
		FertilizedAt:   data.FertilizedAt,
		Generation:     data.Generation,
		Score:          data.Score,
		Stage:          data.Stage,
		Species:        data.Species,
		Rarity:         data.Rarity,
		Color:          data.Color,
		Mutation:       data.Mutation,
		Dead:           data.Dead,
		Name:           data.Name,
		ShakenAt:       data.ShakenAt,
	}
}

// fromPlantDomain converts a domain Plant entity to a GORM PlantModel.
func fromPlantDomain(data *entity.Plant) *model.PlantModel {
	if data == nil {
		return nil
	}

	return &model.PlantModel{
		ID:             data.ID,
		UserID:         data.UserID,
		ActiveUserID:   data.ActiveUserID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		WateredAt:      data.WateredAt,
		WateredAtOwner: data.WateredAtOwner,
		WateredByID:    data.WateredByID,
		FertilizedAt:   data.FertilizedAt,
		Generation:     data.Generation,
		Score:          data.Score,
		Stage:          data.Stage,
		Species:        data.Species,
		Rarity:         data.Rarity,
		Color:          data.Color,
		Mutation:       data.Mutation,
		Dead:           data.Dead,
		Name:           data.Name,
		ShakenAt:       data.ShakenAt,
	}
}
