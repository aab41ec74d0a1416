package impl

import (
	"context"
	"log/slog"

	"botany/internal/domain/repository"
	"botany/internal/domain/service"
	"botany/internal/usecase"

	"github.com/pkg/errors"
)

type sweepService struct {
	plantRepo repository.PlantRepository
	clock     service.Clock
	rng       service.Rand
	logger    *slog.Logger
}

// NewSweepService creates the periodic refresh pass over all active plants.
func NewSweepService(
	plantRepo repository.PlantRepository,
	clock service.Clock,
	rng service.Rand,
	logger *slog.Logger,
) usecase.SweepUsecase {
	return &sweepService{
		plantRepo: plantRepo,
		clock:     clock,
		rng:       rng,
		logger:    logger,
	}
}

// RefreshAll refreshes and persists every active plant. A failure on one
// plant is logged and skipped so a single bad record can't stall the sweep.
func (s *sweepService) RefreshAll(ctx context.Context) (int, error) {
	plants, err := s.plantRepo.ListActive(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list active plants")
	}

	now := s.clock.Now()
	refreshed := 0
	for _, plant := range plants {
		plant.Refresh(now, s.rng)
		if err := s.plantRepo.Update(ctx, plant); err != nil {
			s.logger.Error("failed to save refreshed plant",
				slog.String("plantID", plant.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		refreshed++
	}

	return refreshed, nil
}
