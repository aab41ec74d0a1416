// Package impl contains the concrete use case implementations. Each service
// follows the same request shape: load the plant, bring it current with
// Refresh, apply at most one action, persist. Precondition failures are not
// errors, they come back as a narrative message with no state change.
package impl

import (
	"context"
	"fmt"
	"time"

	"botany/config"
	"botany/internal/domain/catalog"
	"botany/internal/domain/entity"
	"botany/internal/domain/repository"
	"botany/internal/domain/service"
	"botany/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// christmasModeWindow is how long an enable_christmas event keeps the
// decoration up.
const christmasModeWindow = 2 * 24 * time.Hour

// shakeCoinCap bounds the payout of a single shake so hoarding score is no
// better than shaking regularly.
const shakeCoinCap = 100

// scorePerCoin converts accrued score into coins: one coin per un-adjusted
// hour of watered plant time.
const scorePerCoin = 3600

type plantService struct {
	plantRepo     repository.PlantRepository
	userRepo      repository.UserRepository
	inventoryRepo repository.InventoryRepository
	eventRepo     repository.EventRepository
	items         *catalog.Items
	clock         service.Clock
	rng           service.Rand
	cfg           *config.Config
}

// NewPlantService creates the use case service for a user's own plant.
func NewPlantService(
	plantRepo repository.PlantRepository,
	userRepo repository.UserRepository,
	inventoryRepo repository.InventoryRepository,
	eventRepo repository.EventRepository,
	items *catalog.Items,
	clock service.Clock,
	rng service.Rand,
	cfg *config.Config,
) usecase.PlantUsecase {
	return &plantService{
		plantRepo:     plantRepo,
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
		eventRepo:     eventRepo,
		items:         items,
		clock:         clock,
		rng:           rng,
		cfg:           cfg,
	}
}

// GetPlant returns the user's active plant, brought current.
func (s *plantService) GetPlant(ctx context.Context, userID uuid.UUID) (*usecase.PlantStatus, error) {
	plant, owner, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.status(ctx, plant, owner)
}

// Water waters the user's own plant. Watering by the owner also resets the
// neglect tracker and clears visitor attribution.
func (s *plantService) Water(ctx context.Context, userID uuid.UUID) (*usecase.ActionResult, error) {
	plant, owner, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	message := "You sprinkle some water over your plant."
	switch {
	case plant.Dead:
		message = "There's no point in watering a dead plant."
	case plant.WaterSupplyPercent(now) == 100:
		message = "The soil is already damp."
	default:
		plant.WateredAt = now
		plant.WateredAtOwner = now
		plant.WateredByID = nil
	}

	return s.finish(ctx, plant, owner, message)
}

// Fertilize consumes one fertilizer item from the user's inventory and
// starts the three-day bonus window.
func (s *plantService) Fertilize(ctx context.Context, userID uuid.UUID) (*usecase.ActionResult, error) {
	plant, owner, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	message, err := s.fertilize(ctx, plant, userID)
	if err != nil {
		return nil, err
	}

	return s.finish(ctx, plant, owner, message)
}

// fertilize holds the shared fertilizing rules; the acting user supplies the
// fertilizer regardless of who owns the plant.
func (s *plantService) fertilize(ctx context.Context, plant *entity.Plant, actorID uuid.UUID) (string, error) {
	now := s.clock.Now()

	if plant.Dead {
		return "There's no point in fertilizing a dead plant.", nil
	}
	if plant.FertilizerPercent(now) > 0 {
		return "The soil is still rich with nutrients.", nil
	}

	removed, err := s.inventoryRepo.RemoveItem(ctx, actorID, s.items.Fertilizer.ID, 1)
	if err != nil {
		return "", errors.Wrap(err, "failed to consume fertilizer")
	}
	if !removed {
		return "You don't have any fertilizer to use, so nothing happened.", nil
	}

	plant.FertilizedAt = now

	return "You apply a bottle of fertilizer to the plant.", nil
}

// Shake converts accrued score into coins at one coin per hour-equivalent of
// growth. The payout is capped; score beyond the cap stays banked for the
// next shake.
func (s *plantService) Shake(ctx context.Context, userID uuid.UUID) (*usecase.ActionResult, error) {
	plant, owner, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	if plant.Dead {
		return s.finish(ctx, plant, owner, "There's no point in shaking a dead plant.")
	}

	coins := (plant.Score - plant.ShakenAt) / scorePerCoin
	if coins > shakeCoinCap {
		coins = shakeCoinCap
	}
	// Fractional coins stay unclaimed until next time.
	plant.ShakenAt += coins * scorePerCoin

	if coins > 0 {
		if err := s.inventoryRepo.AddItem(ctx, userID, s.items.Coin.ID, coins); err != nil {
			return nil, errors.Wrap(err, "failed to grant coins")
		}
	}

	var flavor string
	switch {
	case coins < 1:
		flavor = "but nothing happens."
	case coins < 2:
		flavor = "and you hear the plink of a single coin."
	case coins < 5:
		flavor = "and a few coins come loose from the leaves."
	case coins < 25:
		flavor = "and a handful of coins sprinkle down."
	case coins < 99:
		flavor = "and coins shower down all around."
	default:
		flavor = "and a golden nugget clonks you on the head."
	}

	message := fmt.Sprintf("You shake your plant, %s\n(+%d coins)", flavor, coins)

	return s.finish(ctx, plant, owner, message)
}

// PickPetal picks a petal from the user's own flowering plant.
func (s *plantService) PickPetal(ctx context.Context, userID uuid.UUID) (*usecase.ActionResult, error) {
	plant, owner, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	message, err := s.pickPetal(ctx, plant, userID)
	if err != nil {
		return nil, err
	}

	return s.finish(ctx, plant, owner, message)
}

// pickPetal holds the shared petal rules: flowering plants only, one petal
// per actor, plant, and calendar day.
func (s *plantService) pickPetal(ctx context.Context, plant *entity.Plant, actorID uuid.UUID) (string, error) {
	if plant.Dead || plant.Stage != catalog.StageFlowering {
		return "You shouldn't be here!", nil
	}

	now := s.clock.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := entity.PlantTarget(plant.ID)

	picked, err := s.eventRepo.Exists(ctx, actorID, entity.EventPickPetal, target, midnight)
	if err != nil {
		return "", errors.Wrap(err, "failed to check petal events")
	}
	if picked {
		return "The ground around this plant is bare, come back tomorrow!", nil
	}

	event := &entity.Event{
		ID:        uuid.New(),
		UserID:    actorID,
		EventType: entity.EventPickPetal,
		Target:    target,
		CreatedAt: now,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return "", errors.Wrap(err, "failed to record petal event")
	}

	petalColor := plant.ColorStr()
	if plant.Color == catalog.ColorRainbow {
		petalColor = catalog.ColorsPlain[s.rng.Intn(len(catalog.ColorsPlain))]
	}

	petal, ok := s.items.Petal(petalColor)
	if !ok {
		return "", errors.Errorf("no petal item for color %q", petalColor)
	}
	if err := s.inventoryRepo.AddItem(ctx, actorID, petal.ID, 1); err != nil {
		return "", errors.Wrap(err, "failed to grant petal")
	}

	message := fmt.Sprintf(
		"You spot a %s petal lying on the ground nearby.\nYou pick it up and stick it in your backpack.",
		petalColor,
	)

	return message, nil
}

// Harvest retires a dead or fully matured plant and sprouts its successor.
// Only a plant retired at the seed-bearing stage carries its generation
// forward; one that died early starts the lineage over.
func (s *plantService) Harvest(ctx context.Context, userID uuid.UUID) (*usecase.ActionResult, error) {
	plant, owner, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !plant.CanHarvest() {
		return s.finish(ctx, plant, owner, "Your plant isn't ready to be harvested yet.")
	}

	newGeneration := 1
	if plant.Stage == catalog.StageSeedBearing {
		newGeneration = plant.Generation + 1
	}

	plant.Dead = true
	plant.ActiveUserID = nil
	if err := s.plantRepo.Update(ctx, plant); err != nil {
		return nil, errors.Wrap(err, "failed to retire plant")
	}

	successor := entity.NewPlant(userID, newGeneration, s.clock.Now(), s.rng)
	successor.ActiveUserID = &userID
	if err := s.plantRepo.Create(ctx, successor); err != nil {
		return nil, errors.Wrap(err, "failed to create successor plant")
	}

	message := fmt.Sprintf(
		"You tuck the remains of your plant into the soil and plant a fresh generation %d seed.",
		newGeneration,
	)

	return s.result(ctx, successor, owner, message)
}

// UseChristmasCheer consumes a christmas cheer item and decorates the user's
// garden for the next two days.
func (s *plantService) UseChristmasCheer(ctx context.Context, userID uuid.UUID) (*usecase.ActionResult, error) {
	plant, owner, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	festive, err := s.christmasMode(ctx, userID)
	if err != nil {
		return nil, err
	}
	if festive {
		return s.finish(ctx, plant, owner, "Nothing happened.")
	}

	removed, err := s.inventoryRepo.RemoveItem(ctx, userID, s.items.ChristmasCheer.ID, 1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume christmas cheer")
	}
	if !removed {
		return s.finish(ctx, plant, owner, "You don't have any christmas cheer to apply.")
	}

	event := &entity.Event{
		ID:        uuid.New(),
		UserID:    userID,
		EventType: entity.EventEnableChristmas,
		Target:    "self",
		CreatedAt: s.clock.Now(),
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to record christmas event")
	}

	return s.finish(ctx, plant, owner, "✨ 💯 ✨")
}

// Rename sets the active plant's nickname. Dead plants keep the name they
// died with.
func (s *plantService) Rename(ctx context.Context, userID uuid.UUID, input *usecase.RenamePlantInput) (*usecase.PlantStatus, error) {
	plant, owner, err := s.loadActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !plant.Dead {
		plant.Name = input.Name
	}
	if err := s.plantRepo.Update(ctx, plant); err != nil {
		return nil, errors.Wrap(err, "failed to rename plant")
	}

	return s.status(ctx, plant, owner)
}

// loadActive is the explicit get-or-create factory for a user's active
// plant: returns the stored one refreshed, or sprouts a first-generation
// seed if the user has none yet.
func (s *plantService) loadActive(ctx context.Context, userID uuid.UUID) (*entity.Plant, *entity.User, error) {
	owner, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load owner")
	}

	plant, err := s.plantRepo.FindActiveByUser(ctx, userID)
	if errors.Is(err, repository.ErrPlantNotFound) {
		plant = entity.NewPlant(userID, 1, s.clock.Now(), s.rng)
		plant.ActiveUserID = &userID
		if err := s.plantRepo.Create(ctx, plant); err != nil {
			return nil, nil, errors.Wrap(err, "failed to create first plant")
		}
		return plant, owner, nil
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load active plant")
	}

	plant.Refresh(s.clock.Now(), s.rng)

	return plant, owner, nil
}

// finish persists the plant and packages the action result.
func (s *plantService) finish(ctx context.Context, plant *entity.Plant, owner *entity.User, message string) (*usecase.ActionResult, error) {
	if err := s.plantRepo.Update(ctx, plant); err != nil {
		return nil, errors.Wrap(err, "failed to save plant")
	}

	return s.result(ctx, plant, owner, message)
}

func (s *plantService) result(ctx context.Context, plant *entity.Plant, owner *entity.User, message string) (*usecase.ActionResult, error) {
	status, err := s.status(ctx, plant, owner)
	if err != nil {
		return nil, err
	}

	return &usecase.ActionResult{Message: message, Plant: status}, nil
}

func (s *plantService) status(ctx context.Context, plant *entity.Plant, owner *entity.User) (*usecase.PlantStatus, error) {
	festive, err := s.christmasMode(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	return &usecase.PlantStatus{
		ID:                 plant.ID,
		OwnerID:            plant.UserID,
		Name:               plant.Name,
		Description:        plant.Description(festive),
		Stage:              plant.Stage,
		StageName:          plant.StageStr(),
		Generation:         plant.Generation,
		Score:              plant.Score,
		AgeDays:            plant.Age(now),
		Health:             plant.Health(now),
		Dead:               plant.Dead,
		WaterSupplyPercent: plant.WaterSupplyPercent(now),
		FertilizerPercent:  plant.FertilizerPercent(now),
		WaterGauge:         plant.WaterGauge(now),
		FertilizerGauge:    plant.FertilizerGauge(now),
		NeglectedDays:      plant.NeglectedDays(now),
		Neglected:          plant.IsNeglected(now),
		FenceActive:        owner.FenceActive,
	}, nil
}

func (s *plantService) christmasMode(ctx context.Context, userID uuid.UUID) (bool, error) {
	since := s.clock.Now().Add(-christmasModeWindow)
	festive, err := s.eventRepo.Exists(ctx, userID, entity.EventEnableChristmas, "", since)
	if err != nil {
		return false, errors.Wrap(err, "failed to check christmas events")
	}

	return festive, nil
}
