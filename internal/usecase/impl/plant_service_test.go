package impl

import (
	"context"
	"testing"
	"time"

	"botany/internal/domain/catalog"
	"botany/internal/domain/entity"
	"botany/internal/domain/repository"
	"botany/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlantService_GetPlant_CreatesFirstPlant(t *testing.T) {
	t.Parallel()

	f := createTestPlantService(t)
	owner := testUser("alice")

	f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
	f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).
		Return(nil, repository.ErrPlantNotFound)

	var created *entity.Plant
	f.plantRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, plant *entity.Plant) {
			created = plant
		}).
		Return(nil)
	f.expectNoChristmas(owner.ID)

	status, err := f.service.GetPlant(context.Background(), owner.ID)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, owner.ID, created.UserID)
	require.NotNil(t, created.ActiveUserID)
	assert.Equal(t, owner.ID, *created.ActiveUserID)
	assert.Equal(t, 1, created.Generation)

	assert.Equal(t, created.ID, status.ID)
	assert.Equal(t, catalog.StageSeed, status.Stage)
	assert.False(t, status.Dead)
	// A fresh seed starts with an empty watering can.
	assert.Equal(t, 0, status.WaterSupplyPercent)
}

func TestPlantService_GetPlant_ReportsNeglect(t *testing.T) {
	t.Parallel()

	f := createTestPlantService(t)
	owner := testUser("alice")
	plant := activePlant(owner)
	// Visitors kept the plant watered while the owner stayed away.
	plant.WateredAtOwner = testNow.Add(-6 * 24 * time.Hour)

	f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
	f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
	f.expectNoChristmas(owner.ID)

	status, err := f.service.GetPlant(context.Background(), owner.ID)
	require.NoError(t, err)

	assert.Equal(t, 6, status.NeglectedDays)
	assert.True(t, status.Neglected)
	assert.False(t, status.Dead)
}

func TestPlantService_Water(t *testing.T) {
	t.Parallel()

	t.Run("waters a thirsty plant", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := dryPlant(owner)
		visitor := uuid.New()
		plant.WateredByID = &visitor

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Water(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "You sprinkle some water over your plant.", result.Message)
		assert.Equal(t, testNow, plant.WateredAt)
		assert.Equal(t, testNow, plant.WateredAtOwner)
		assert.Nil(t, plant.WateredByID)
		assert.Equal(t, 100, result.Plant.WaterSupplyPercent)
	})

	t.Run("rejects watering damp soil", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Water(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "The soil is already damp.", result.Message)
	})

	t.Run("rejects watering a dead plant", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Dead = true

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Water(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "There's no point in watering a dead plant.", result.Message)
		assert.NotEqual(t, testNow, plant.WateredAtOwner)
	})
}

func TestPlantService_Fertilize(t *testing.T) {
	t.Parallel()

	t.Run("consumes a fertilizer item", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.inventoryRepo.EXPECT().
			RemoveItem(mock.Anything, owner.ID, f.items.Fertilizer.ID, 1).
			Return(true, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Fertilize(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "You apply a bottle of fertilizer to the plant.", result.Message)
		assert.Equal(t, testNow, plant.FertilizedAt)
		assert.Equal(t, 100, result.Plant.FertilizerPercent)
	})

	t.Run("rejects fertilizing rich soil", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.FertilizedAt = testNow.Add(-time.Hour)

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Fertilize(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "The soil is still rich with nutrients.", result.Message)
		f.inventoryRepo.AssertNotCalled(t, "RemoveItem",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("does nothing without a fertilizer item", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		before := plant.FertilizedAt

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.inventoryRepo.EXPECT().
			RemoveItem(mock.Anything, owner.ID, f.items.Fertilizer.ID, 1).
			Return(false, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Fertilize(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "You don't have any fertilizer to use, so nothing happened.", result.Message)
		assert.Equal(t, before, plant.FertilizedAt)
	})
}

func TestPlantService_Shake(t *testing.T) {
	t.Parallel()

	t.Run("pays one coin per hour of growth", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Score = 10*3600 + 1800

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.inventoryRepo.EXPECT().
			AddItem(mock.Anything, owner.ID, f.items.Coin.ID, 10).
			Return(nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Shake(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Contains(t, result.Message, "a handful of coins sprinkle down")
		assert.Contains(t, result.Message, "(+10 coins)")
		// The half hour of spare score stays banked.
		assert.Equal(t, 10*3600, plant.ShakenAt)
	})

	t.Run("caps the payout and banks the remainder", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Score = 150 * 3600

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.inventoryRepo.EXPECT().
			AddItem(mock.Anything, owner.ID, f.items.Coin.ID, 100).
			Return(nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Shake(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Contains(t, result.Message, "a golden nugget clonks you on the head")
		assert.Equal(t, 100*3600, plant.ShakenAt)
	})

	t.Run("pays nothing when no score accrued", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Score = 1800

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Shake(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Contains(t, result.Message, "but nothing happens")
		assert.Equal(t, 0, plant.ShakenAt)
		f.inventoryRepo.AssertNotCalled(t, "AddItem",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects shaking a dead plant", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Dead = true
		plant.Score = 50 * 3600

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Shake(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "There's no point in shaking a dead plant.", result.Message)
		assert.Equal(t, 0, plant.ShakenAt)
	})
}

func TestPlantService_PickPetal(t *testing.T) {
	t.Parallel()

	midnight := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)

	t.Run("grants a petal in the flower's color", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Stage = catalog.StageFlowering
		plant.Color = 0 // red
		target := entity.PlantTarget(plant.ID)

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.eventRepo.EXPECT().
			Exists(mock.Anything, owner.ID, entity.EventPickPetal, target, midnight).
			Return(false, nil)
		f.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		petal, ok := f.items.Petal("red")
		require.True(t, ok)
		f.inventoryRepo.EXPECT().
			AddItem(mock.Anything, owner.ID, petal.ID, 1).
			Return(nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.PickPetal(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Contains(t, result.Message, "a red petal")
	})

	t.Run("resolves a rainbow flower to a plain color", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		f.rng.n = 2
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Stage = catalog.StageFlowering
		plant.Color = catalog.ColorRainbow
		target := entity.PlantTarget(plant.ID)

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.eventRepo.EXPECT().
			Exists(mock.Anything, owner.ID, entity.EventPickPetal, target, midnight).
			Return(false, nil)
		f.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		petal, ok := f.items.Petal(catalog.ColorsPlain[2])
		require.True(t, ok)
		f.inventoryRepo.EXPECT().
			AddItem(mock.Anything, owner.ID, petal.ID, 1).
			Return(nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.PickPetal(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Contains(t, result.Message, catalog.ColorsPlain[2]+" petal")
	})

	t.Run("allows only one petal per day", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Stage = catalog.StageFlowering
		target := entity.PlantTarget(plant.ID)

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.eventRepo.EXPECT().
			Exists(mock.Anything, owner.ID, entity.EventPickPetal, target, midnight).
			Return(true, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.PickPetal(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "The ground around this plant is bare, come back tomorrow!", result.Message)
		f.inventoryRepo.AssertNotCalled(t, "AddItem",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects plants that are not flowering", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.PickPetal(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "You shouldn't be here!", result.Message)
	})
}

func TestPlantService_Harvest(t *testing.T) {
	t.Parallel()

	t.Run("advances the generation from a seed-bearing plant", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Stage = catalog.StageSeedBearing
		plant.Generation = 3

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)

		var successor *entity.Plant
		f.plantRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(_ context.Context, created *entity.Plant) {
				successor = created
			}).
			Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Harvest(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.True(t, plant.Dead)
		assert.Nil(t, plant.ActiveUserID)

		require.NotNil(t, successor)
		assert.Equal(t, 4, successor.Generation)
		require.NotNil(t, successor.ActiveUserID)
		assert.Equal(t, owner.ID, *successor.ActiveUserID)

		assert.Contains(t, result.Message, "generation 4 seed")
		assert.Equal(t, successor.ID, result.Plant.ID)
	})

	t.Run("restarts the lineage from a dead plant", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Dead = true
		plant.Generation = 3

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)

		var successor *entity.Plant
		f.plantRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(_ context.Context, created *entity.Plant) {
				successor = created
			}).
			Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Harvest(context.Background(), owner.ID)
		require.NoError(t, err)

		require.NotNil(t, successor)
		assert.Equal(t, 1, successor.Generation)
		assert.Contains(t, result.Message, "generation 1 seed")
	})

	t.Run("rejects harvesting too early", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Stage = catalog.StageFlowering

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.service.Harvest(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "Your plant isn't ready to be harvested yet.", result.Message)
		assert.False(t, plant.Dead)
		f.plantRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPlantService_UseChristmasCheer(t *testing.T) {
	t.Parallel()

	t.Run("consumes the item and decorates the garden", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)

		// First lookup gates the action, second builds the status after
		// the event is recorded.
		f.eventRepo.EXPECT().
			Exists(mock.Anything, owner.ID, entity.EventEnableChristmas, "", mock.Anything).
			Return(false, nil).Once()
		f.inventoryRepo.EXPECT().
			RemoveItem(mock.Anything, owner.ID, f.items.ChristmasCheer.ID, 1).
			Return(true, nil)

		var event *entity.Event
		f.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Run(func(_ context.Context, created *entity.Event) {
				event = created
			}).
			Return(nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.eventRepo.EXPECT().
			Exists(mock.Anything, owner.ID, entity.EventEnableChristmas, "", mock.Anything).
			Return(true, nil).Once()

		result, err := f.service.UseChristmasCheer(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "✨ 💯 ✨", result.Message)
		require.NotNil(t, event)
		assert.Equal(t, entity.EventEnableChristmas, event.EventType)
		assert.Equal(t, testNow, event.CreatedAt)
		assert.Contains(t, result.Plant.Description, "christmas")
	})

	t.Run("does nothing while already festive", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.eventRepo.EXPECT().
			Exists(mock.Anything, owner.ID, entity.EventEnableChristmas, "", mock.Anything).
			Return(true, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)

		result, err := f.service.UseChristmasCheer(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "Nothing happened.", result.Message)
		f.inventoryRepo.AssertNotCalled(t, "RemoveItem",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("does nothing without the item", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.eventRepo.EXPECT().
			Exists(mock.Anything, owner.ID, entity.EventEnableChristmas, "", mock.Anything).
			Return(false, nil)
		f.inventoryRepo.EXPECT().
			RemoveItem(mock.Anything, owner.ID, f.items.ChristmasCheer.ID, 1).
			Return(false, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)

		result, err := f.service.UseChristmasCheer(context.Background(), owner.ID)
		require.NoError(t, err)

		assert.Equal(t, "You don't have any christmas cheer to apply.", result.Message)
		f.eventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPlantService_Rename(t *testing.T) {
	t.Parallel()

	t.Run("renames a living plant", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		status, err := f.service.Rename(context.Background(), owner.ID, &usecase.RenamePlantInput{Name: "Herbert"})
		require.NoError(t, err)

		assert.Equal(t, "Herbert", plant.Name)
		assert.Equal(t, "Herbert", status.Name)
	})

	t.Run("dead plants keep their name", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := activePlant(owner)
		plant.Dead = true

		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		status, err := f.service.Rename(context.Background(), owner.ID, &usecase.RenamePlantInput{Name: "Herbert"})
		require.NoError(t, err)

		assert.Equal(t, "Basil", plant.Name)
		assert.Equal(t, "Basil", status.Name)
	})
}
