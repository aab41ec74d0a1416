package impl

import (
	"context"
	"testing"

	"botany/internal/domain/entity"
	mockRepo "botany/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGardenService_ListGarden(t *testing.T) {
	t.Parallel()

	plantRepo := mockRepo.NewMockPlantRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	clock := &fakeClock{now: testNow}
	rng := &fakeRand{}
	service := NewGardenService(plantRepo, userRepo, clock, rng)

	zoe := testUser("zoe")
	abe := testUser("abe")
	zoePlant := activePlant(zoe)
	abePlant := dryPlant(abe)
	abe.FenceActive = true

	plantRepo.EXPECT().ListActive(mock.Anything).
		Return([]*entity.Plant{zoePlant, abePlant}, nil)
	userRepo.EXPECT().FindByID(mock.Anything, zoe.ID).Return(zoe, nil)
	userRepo.EXPECT().FindByID(mock.Anything, abe.ID).Return(abe, nil)

	entries, err := service.ListGarden(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Sorted by owner name, not storage order.
	assert.Equal(t, "abe", entries[0].Owner)
	assert.Equal(t, "zoe", entries[1].Owner)

	assert.Equal(t, abePlant.ID, entries[0].PlantID)
	assert.True(t, entries[0].FenceActive)
	assert.Equal(t, 0, entries[0].WaterSupply)
	assert.Equal(t, "dry", entries[0].Health)

	assert.Equal(t, zoePlant.Name, entries[1].PlantName)
	assert.Equal(t, 100, entries[1].WaterSupply)
	assert.Equal(t, "healthy", entries[1].Health)

	// Browsing the garden never writes plants back.
	plantRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
