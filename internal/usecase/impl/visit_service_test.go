package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "botany/internal/domain/errors"
	"botany/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVisitService_WaterPlant(t *testing.T) {
	t.Parallel()

	t.Run("waters another user's plant and earns karma", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		visitor := testUser("bob")
		plant := dryPlant(owner)
		ownerWatered := plant.WateredAtOwner

		f.plantRepo.EXPECT().FindByID(mock.Anything, plant.ID).Return(plant, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().
			ExistsWateredBy(mock.Anything, visitor.ID, testNow.Add(-30*time.Minute)).
			Return(false, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, visitor.ID).Return(visitor, nil)
		f.userRepo.EXPECT().Update(mock.Anything, visitor).Return(nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.visits.WaterPlant(context.Background(), visitor.ID, plant.ID)
		require.NoError(t, err)

		assert.Equal(t, "You water alice's plant for them.", result.Message)
		assert.Equal(t, testNow, plant.WateredAt)
		require.NotNil(t, plant.WateredByID)
		assert.Equal(t, visitor.ID, *plant.WateredByID)
		// The owner's neglect tracker is untouched by outside help.
		assert.Equal(t, ownerWatered, plant.WateredAtOwner)
		assert.Equal(t, 1, visitor.Karma)
	})

	t.Run("enforces the watering can cooldown", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		visitor := testUser("bob")
		plant := dryPlant(owner)

		f.plantRepo.EXPECT().FindByID(mock.Anything, plant.ID).Return(plant, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().
			ExistsWateredBy(mock.Anything, visitor.ID, testNow.Add(-30*time.Minute)).
			Return(true, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.visits.WaterPlant(context.Background(), visitor.ID, plant.ID)
		require.NoError(t, err)

		assert.Equal(t, "Your watering can is empty, try again later!", result.Message)
		assert.Nil(t, plant.WateredByID)
		assert.Equal(t, 0, visitor.Karma)
	})

	t.Run("a raised fence blocks the visit", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		owner.FenceActive = true
		visitor := testUser("bob")
		plant := dryPlant(owner)
		before := plant.WateredAt

		f.plantRepo.EXPECT().FindByID(mock.Anything, plant.ID).Return(plant, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().
			ExistsWateredBy(mock.Anything, visitor.ID, mock.Anything).
			Return(false, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.visits.WaterPlant(context.Background(), visitor.ID, plant.ID)
		require.NoError(t, err)

		assert.Equal(t, "The fence stops you from watering.", result.Message)
		assert.Equal(t, before, plant.WateredAt)
	})

	t.Run("rejects watering damp soil before spending the cooldown", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		visitor := testUser("bob")
		plant := activePlant(owner)

		f.plantRepo.EXPECT().FindByID(mock.Anything, plant.ID).Return(plant, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.visits.WaterPlant(context.Background(), visitor.ID, plant.ID)
		require.NoError(t, err)

		assert.Equal(t, "The soil is already damp.", result.Message)
		f.plantRepo.AssertNotCalled(t, "ExistsWateredBy",
			mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("watering your own plant is a normal watering", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		plant := dryPlant(owner)

		f.plantRepo.EXPECT().FindByID(mock.Anything, plant.ID).Return(plant, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().FindActiveByUser(mock.Anything, owner.ID).Return(plant, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.visits.WaterPlant(context.Background(), owner.ID, plant.ID)
		require.NoError(t, err)

		assert.Equal(t, "You sprinkle some water over your plant.", result.Message)
		assert.Equal(t, testNow, plant.WateredAtOwner)
		assert.Equal(t, 0, owner.Karma)
	})

	t.Run("retired plants are not visitable", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		visitor := testUser("bob")
		plant := dryPlant(owner)
		plant.ActiveUserID = nil

		f.plantRepo.EXPECT().FindByID(mock.Anything, plant.ID).Return(plant, nil)

		_, err := f.visits.WaterPlant(context.Background(), visitor.ID, plant.ID)
		assert.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
	})

	t.Run("unknown plant id", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		visitor := testUser("bob")
		plantID := dryPlant(testUser("alice")).ID

		f.plantRepo.EXPECT().FindByID(mock.Anything, plantID).
			Return(nil, repository.ErrPlantNotFound)

		_, err := f.visits.WaterPlant(context.Background(), visitor.ID, plantID)
		assert.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
	})
}

func TestVisitService_FertilizePlant(t *testing.T) {
	t.Parallel()

	t.Run("spends the visitor's own fertilizer", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		visitor := testUser("bob")
		plant := activePlant(owner)

		f.plantRepo.EXPECT().FindByID(mock.Anything, plant.ID).Return(plant, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.inventoryRepo.EXPECT().
			RemoveItem(mock.Anything, visitor.ID, f.items.Fertilizer.ID, 1).
			Return(true, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.visits.FertilizePlant(context.Background(), visitor.ID, plant.ID)
		require.NoError(t, err)

		assert.Equal(t, "You apply a bottle of fertilizer to the plant.", result.Message)
		assert.Equal(t, testNow, plant.FertilizedAt)
	})

	t.Run("a raised fence blocks fertilizing", func(t *testing.T) {
		t.Parallel()

		f := createTestPlantService(t)
		owner := testUser("alice")
		owner.FenceActive = true
		visitor := testUser("bob")
		plant := activePlant(owner)
		before := plant.FertilizedAt

		f.plantRepo.EXPECT().FindByID(mock.Anything, plant.ID).Return(plant, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
		f.plantRepo.EXPECT().Update(mock.Anything, plant).Return(nil)
		f.expectNoChristmas(owner.ID)

		result, err := f.visits.FertilizePlant(context.Background(), visitor.ID, plant.ID)
		require.NoError(t, err)

		assert.Equal(t, "The fence stops you from fertilizing.", result.Message)
		assert.Equal(t, before, plant.FertilizedAt)
		f.inventoryRepo.AssertNotCalled(t, "RemoveItem",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
