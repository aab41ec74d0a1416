package impl

import (
	"context"
	"fmt"

	"botany/config"
	"botany/internal/domain/catalog"
	"botany/internal/domain/entity"
	domainerrors "botany/internal/domain/errors"
	"botany/internal/domain/repository"
	"botany/internal/domain/service"
	"botany/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// visitService reuses the plant action rules but targets someone else's
// plant, adding the visitor cooldown, fence checks, and karma.
type visitService struct {
	plantService
}

// NewVisitService creates the use case service for visiting other gardens.
func NewVisitService(
	plantRepo repository.PlantRepository,
	userRepo repository.UserRepository,
	inventoryRepo repository.InventoryRepository,
	eventRepo repository.EventRepository,
	items *catalog.Items,
	clock service.Clock,
	rng service.Rand,
	cfg *config.Config,
) usecase.VisitUsecase {
	return &visitService{plantService{
		plantRepo:     plantRepo,
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
		eventRepo:     eventRepo,
		items:         items,
		clock:         clock,
		rng:           rng,
		cfg:           cfg,
	}}
}

// WaterPlant waters another user's plant. Visitors share one watering can:
// only one outside watering per cooldown window, and fenced gardens reject
// it outright. A successful visit earns the visitor a point of karma.
func (s *visitService) WaterPlant(ctx context.Context, visitorID, plantID uuid.UUID) (*usecase.ActionResult, error) {
	plant, owner, err := s.loadVisited(ctx, plantID)
	if err != nil {
		return nil, err
	}
	if visitorID == plant.UserID {
		return s.Water(ctx, visitorID)
	}

	now := s.clock.Now()

	if plant.Dead {
		return s.finish(ctx, plant, owner, "There's no point in watering a dead plant.")
	}
	if plant.WaterSupplyPercent(now) == 100 {
		return s.finish(ctx, plant, owner, "The soil is already damp.")
	}

	watered, err := s.plantRepo.ExistsWateredBy(ctx, visitorID, now.Add(-s.cfg.Game.VisitWaterCooldown))
	if err != nil {
		return nil, errors.Wrap(err, "failed to check watering cooldown")
	}
	if watered {
		return s.finish(ctx, plant, owner, "Your watering can is empty, try again later!")
	}

	if owner.FenceActive {
		return s.finish(ctx, plant, owner, "The fence stops you from watering.")
	}

	// Outside watering keeps the plant alive but does not reset the
	// owner's neglect tracker.
	plant.WateredAt = now
	plant.WateredByID = &visitorID

	if err := s.grantKarma(ctx, visitorID); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("You water %s's plant for them.", owner.Username)

	return s.finish(ctx, plant, owner, message)
}

// FertilizePlant applies the visitor's own fertilizer to another user's
// plant.
func (s *visitService) FertilizePlant(ctx context.Context, visitorID, plantID uuid.UUID) (*usecase.ActionResult, error) {
	plant, owner, err := s.loadVisited(ctx, plantID)
	if err != nil {
		return nil, err
	}
	if visitorID == plant.UserID {
		return s.Fertilize(ctx, visitorID)
	}

	if owner.FenceActive {
		return s.finish(ctx, plant, owner, "The fence stops you from fertilizing.")
	}

	message, err := s.fertilize(ctx, plant, visitorID)
	if err != nil {
		return nil, err
	}

	return s.finish(ctx, plant, owner, message)
}

// PickPetal picks a petal from another user's flowering plant, subject to
// the same one-per-day rule as the owner.
func (s *visitService) PickPetal(ctx context.Context, visitorID, plantID uuid.UUID) (*usecase.ActionResult, error) {
	plant, owner, err := s.loadVisited(ctx, plantID)
	if err != nil {
		return nil, err
	}

	message, err := s.pickPetal(ctx, plant, visitorID)
	if err != nil {
		return nil, err
	}

	return s.finish(ctx, plant, owner, message)
}

// loadVisited loads a plant by ID for a visit. Only active plants are
// visitable; retired history is not.
func (s *visitService) loadVisited(ctx context.Context, plantID uuid.UUID) (*entity.Plant, *entity.User, error) {
	plant, err := s.plantRepo.FindByID(ctx, plantID)
	if errors.Is(err, repository.ErrPlantNotFound) {
		return nil, nil, domainerrors.ErrPlantNotFound
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load visited plant")
	}
	if plant.ActiveUserID == nil {
		return nil, nil, domainerrors.ErrPlantNotFound
	}

	owner, err := s.userRepo.FindByID(ctx, plant.UserID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load plant owner")
	}

	plant.Refresh(s.clock.Now(), s.rng)

	return plant, owner, nil
}

func (s *visitService) grantKarma(ctx context.Context, visitorID uuid.UUID) error {
	visitor, err := s.userRepo.FindByID(ctx, visitorID)
	if err != nil {
		return errors.Wrap(err, "failed to load visitor")
	}

	visitor.Karma++
	if err := s.userRepo.Update(ctx, visitor); err != nil {
		return errors.Wrap(err, "failed to update visitor karma")
	}

	return nil
}
