package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"botany/config"
	"botany/internal/domain/catalog"
	"botany/internal/domain/entity"
	mockRepo "botany/internal/mocks/repository"
	"botany/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// testNow is the frozen wall clock every service test runs against.
var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// fakeClock returns a fixed instant.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// fakeRand returns fixed values; f below any mutation threshold keeps
// refreshes deterministic.
type fakeRand struct {
	f float64
	n int
}

func (r *fakeRand) Float64() float64 { return r.f }
func (r *fakeRand) Intn(n int) int   { return r.n % n }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Game.VisitWaterCooldown = 30 * time.Minute
	cfg.Game.SweepInterval = time.Hour

	return cfg
}

// plantServiceFixtures holds all test dependencies for plant and visit
// service tests.
type plantServiceFixtures struct {
	service       usecase.PlantUsecase
	visits        usecase.VisitUsecase
	plantRepo     *mockRepo.MockPlantRepository
	userRepo      *mockRepo.MockUserRepository
	inventoryRepo *mockRepo.MockInventoryRepository
	eventRepo     *mockRepo.MockEventRepository
	items         *catalog.Items
	clock         *fakeClock
	rng           *fakeRand
}

func createTestPlantService(t *testing.T) plantServiceFixtures {
	plantRepo := mockRepo.NewMockPlantRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	items := catalog.NewItems()
	clock := &fakeClock{now: testNow}
	rng := &fakeRand{}
	cfg := testConfig()

	service := NewPlantService(plantRepo, userRepo, inventoryRepo, eventRepo, items, clock, rng, cfg)
	visits := NewVisitService(plantRepo, userRepo, inventoryRepo, eventRepo, items, clock, rng, cfg)

	return plantServiceFixtures{
		service:       service,
		visits:        visits,
		plantRepo:     plantRepo,
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
		eventRepo:     eventRepo,
		items:         items,
		clock:         clock,
		rng:           rng,
	}
}

// expectNoChristmas satisfies the decoration lookup every status build
// performs.
func (f *plantServiceFixtures) expectNoChristmas(userID uuid.UUID) {
	f.eventRepo.EXPECT().
		Exists(mock.Anything, userID, entity.EventEnableChristmas, "", mock.Anything).
		Return(false, nil)
}

func testUser(username string) *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: testNow.Add(-30 * 24 * time.Hour),
		UpdatedAt: testNow.Add(-30 * 24 * time.Hour),
	}
}

// activePlant builds a plant owned by the user, watered and refreshed at the
// frozen test clock so a refresh during the test accrues nothing.
func activePlant(owner *entity.User) *entity.Plant {
	return &entity.Plant{
		ID:             uuid.New(),
		UserID:         owner.ID,
		ActiveUserID:   &owner.ID,
		CreatedAt:      testNow.Add(-10 * 24 * time.Hour),
		UpdatedAt:      testNow,
		WateredAt:      testNow,
		WateredAtOwner: testNow,
		FertilizedAt:   testNow.Add(-4 * 24 * time.Hour),
		Generation:     1,
		Name:           "Basil",
	}
}

// dryPlant is an active plant whose water expired an hour ago: alive, not
// growing, and safe to mutate in tests without refresh side effects.
func dryPlant(owner *entity.User) *entity.Plant {
	plant := activePlant(owner)
	plant.WateredAt = testNow.Add(-25 * time.Hour)
	plant.WateredAtOwner = plant.WateredAt

	return plant
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
