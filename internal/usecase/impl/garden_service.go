package impl

import (
	"context"
	"sort"

	"botany/internal/domain/repository"
	"botany/internal/domain/service"
	"botany/internal/usecase"

	"github.com/pkg/errors"
)

type gardenService struct {
	plantRepo repository.PlantRepository
	userRepo  repository.UserRepository
	clock     service.Clock
	rng       service.Rand
}

// NewGardenService creates the use case service for the community garden
// listing.
func NewGardenService(
	plantRepo repository.PlantRepository,
	userRepo repository.UserRepository,
	clock service.Clock,
	rng service.Rand,
) usecase.GardenUsecase {
	return &gardenService{
		plantRepo: plantRepo,
		userRepo:  userRepo,
		clock:     clock,
		rng:       rng,
	}
}

// ListGarden returns every active plant, refreshed in memory for display.
// The listing itself doesn't write anything back; the sweep worker owns
// keeping stored state current.
func (s *gardenService) ListGarden(ctx context.Context) ([]*usecase.GardenEntry, error) {
	plants, err := s.plantRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active plants")
	}

	now := s.clock.Now()
	entries := make([]*usecase.GardenEntry, 0, len(plants))
	for _, plant := range plants {
		owner, err := s.userRepo.FindByID(ctx, plant.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load plant owner")
		}

		plant.Refresh(now, s.rng)

		entries = append(entries, &usecase.GardenEntry{
			PlantID:     plant.ID,
			OwnerID:     plant.UserID,
			Owner:       owner.Username,
			PlantName:   plant.Name,
			Description: plant.Description(false),
			Health:      plant.Health(now),
			WaterSupply: plant.WaterSupplyPercent(now),
			FenceActive: owner.FenceActive,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Owner < entries[j].Owner
	})

	return entries, nil
}
