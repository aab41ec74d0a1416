package entity

import (
	"testing"
	"time"

	"botany/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRand returns fixed values. Float64 of 0 never triggers a mutation
// roll; Float64 of 0.9999999 always does.
type stubRand struct {
	f float64
	n int
}

func (r stubRand) Float64() float64 { return r.f }
func (r stubRand) Intn(n int) int   { return r.n % n }

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// freshPlant is watered and refreshed at t0 with no fertilizer active.
func freshPlant() *Plant {
	return &Plant{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		CreatedAt:      t0,
		UpdatedAt:      t0,
		WateredAt:      t0,
		WateredAtOwner: t0,
		FertilizedAt:   t0.Add(-4 * 24 * time.Hour),
		Generation:     1,
	}
}

func TestRefresh_AccruesOneTickPerWateredSecond(t *testing.T) {
	plant := freshPlant()

	plant.Refresh(t0.Add(12*time.Hour), stubRand{})

	assert.Equal(t, 12*3600, plant.Score)
	assert.Equal(t, t0.Add(12*time.Hour), plant.UpdatedAt)
}

func TestRefresh_StopsAtWaterWindow(t *testing.T) {
	plant := freshPlant()

	// 36 hours elapsed, but only the first 24 were watered.
	plant.Refresh(t0.Add(36*time.Hour), stubRand{})

	assert.Equal(t, 24*3600, plant.Score)
}

func TestRefresh_IsIdempotentOverCoveredIntervals(t *testing.T) {
	plant := freshPlant()

	plant.Refresh(t0.Add(12*time.Hour), stubRand{})
	score := plant.Score

	plant.Refresh(t0.Add(12*time.Hour), stubRand{})
	assert.Equal(t, score, plant.Score)
}

func TestRefresh_SplitRefreshMatchesSingleRefresh(t *testing.T) {
	single := freshPlant()
	split := freshPlant()

	single.Refresh(t0.Add(18*time.Hour), stubRand{})

	split.Refresh(t0.Add(7*time.Hour), stubRand{})
	split.Refresh(t0.Add(18*time.Hour), stubRand{})

	assert.Equal(t, single.Score, split.Score)
}

func TestRefresh_FertilizerAddsHalfBonus(t *testing.T) {
	plant := freshPlant()
	plant.FertilizedAt = t0

	plant.Refresh(t0.Add(12*time.Hour), stubRand{})

	// 43200 base ticks plus half again from fertilizer.
	assert.Equal(t, 43200+21600, plant.Score)
}

func TestRefresh_FertilizerAppliedMidInterval(t *testing.T) {
	// Fertilizer applied 6 hours into a 12 hour gap: the bonus only
	// covers the back half of the interval.
	plant := freshPlant()
	plant.FertilizedAt = t0.Add(6 * time.Hour)

	plant.Refresh(t0.Add(12*time.Hour), stubRand{})

	assert.Equal(t, 12*3600+6*3600/2, plant.Score)
}

func TestRefresh_FertilizerMidIntervalStopsAtWaterWindow(t *testing.T) {
	plant := freshPlant()
	plant.FertilizedAt = t0.Add(6 * time.Hour)

	// 36 hours elapsed: water covers the first 24, so the bonus runs
	// from hour 6 to hour 24 even though fertilizer itself lasts longer.
	plant.Refresh(t0.Add(36*time.Hour), stubRand{})

	assert.Equal(t, 24*3600+18*3600/2, plant.Score)
}

func TestRefresh_FertilizerOnlyCountsWhileWatered(t *testing.T) {
	plant := freshPlant()
	plant.FertilizedAt = t0

	// Fertilizer lasts 3 days but water ran out after 1.
	plant.Refresh(t0.Add(48*time.Hour), stubRand{})

	assert.Equal(t, 86400+43200, plant.Score)
}

func TestRefresh_GenerationSpeedsGrowth(t *testing.T) {
	tests := []struct {
		generation int
		want       int
	}{
		{generation: 1, want: 43200},
		{generation: 2, want: 51840}, // 1.2x
		{generation: 6, want: 86400}, // 2.0x
	}

	for _, tt := range tests {
		plant := freshPlant()
		plant.Generation = tt.generation

		plant.Refresh(t0.Add(12*time.Hour), stubRand{})

		assert.Equal(t, tt.want, plant.Score, "generation %d", tt.generation)
	}
}

func TestRefresh_DeathByNeglect(t *testing.T) {
	plant := freshPlant()
	plant.Score = 500

	now := t0.Add(5 * 24 * time.Hour)
	plant.Refresh(now, stubRand{})

	assert.True(t, plant.Dead)
	// No growth is credited for the interval leading up to death.
	assert.Equal(t, 500, plant.Score)
	assert.Equal(t, now, plant.UpdatedAt)
}

func TestRefresh_SurvivesJustUnderNeglectWindow(t *testing.T) {
	plant := freshPlant()

	plant.Refresh(t0.Add(5*24*time.Hour-time.Second), stubRand{})

	assert.False(t, plant.Dead)
}

func TestRefresh_AdvancesStages(t *testing.T) {
	plant := freshPlant()

	plant.Refresh(t0.Add(24*time.Hour), stubRand{})

	assert.Equal(t, catalog.StageSeedling, plant.Stage)
}

func TestRefresh_CrossesMultipleCutoffsAtOnce(t *testing.T) {
	plant := freshPlant()
	// Banked score just below the young cutoff plus a full day of growth
	// crosses seedling and young in one refresh.
	plant.Score = 3*24*3600 - 1000

	plant.Refresh(t0.Add(24*time.Hour), stubRand{})

	assert.Equal(t, catalog.StageYoung, plant.Stage)
}

func TestRefresh_StageNeverExceedsTable(t *testing.T) {
	plant := freshPlant()
	plant.Score = 100 * 24 * 3600

	plant.Refresh(t0.Add(24*time.Hour), stubRand{})

	assert.Equal(t, catalog.StageSeedBearing, plant.Stage)
}

func TestRefresh_MutationRoll(t *testing.T) {
	plant := freshPlant()
	plant.Refresh(t0.Add(12*time.Hour), stubRand{f: 0.9999999, n: 4})

	require.NotNil(t, plant.Mutation)
	assert.Equal(t, 4, *plant.Mutation)
	assert.Equal(t, catalog.Mutations[4], plant.MutationStr())
}

func TestRefresh_MutationIsNeverReplaced(t *testing.T) {
	plant := freshPlant()
	existing := 2
	plant.Mutation = &existing

	plant.Refresh(t0.Add(12*time.Hour), stubRand{f: 0.9999999, n: 7})

	assert.Equal(t, 2, *plant.Mutation)
}

func TestNewPlant_StartsDry(t *testing.T) {
	plant := NewPlant(uuid.New(), 1, t0, stubRand{})

	assert.Equal(t, 0, plant.WaterSupplyPercent(t0))
	assert.Equal(t, 0, plant.FertilizerPercent(t0))
	assert.Equal(t, 0, plant.Score)
	assert.Equal(t, catalog.StageSeed, plant.Stage)
	assert.NotEmpty(t, plant.Name)

	// Nothing grows until the owner waters it.
	plant.Refresh(t0.Add(time.Hour), stubRand{})
	assert.Equal(t, 0, plant.Score)
}

func TestWaterSupplyPercent(t *testing.T) {
	plant := freshPlant()

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{elapsed: 0, want: 100},
		{elapsed: 12 * time.Hour, want: 50},
		{elapsed: 24*time.Hour - time.Second, want: 1}, // ceil keeps a sliver visible
		{elapsed: 24 * time.Hour, want: 0},
		{elapsed: 48 * time.Hour, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, plant.WaterSupplyPercent(t0.Add(tt.elapsed)), "elapsed %s", tt.elapsed)
	}
}

func TestHealth(t *testing.T) {
	plant := freshPlant()

	assert.Equal(t, "healthy", plant.Health(t0.Add(time.Hour)))
	assert.Equal(t, "dry", plant.Health(t0.Add(2*24*time.Hour)))
	assert.Equal(t, "wilting", plant.Health(t0.Add(4*24*time.Hour)))
	assert.Equal(t, "dead", plant.Health(t0.Add(6*24*time.Hour)))

	plant.Dead = true
	assert.Equal(t, "dead", plant.Health(t0))
}

func TestIsWilted(t *testing.T) {
	plant := freshPlant()

	assert.False(t, plant.IsWilted(t0.Add(24*time.Hour)))
	assert.True(t, plant.IsWilted(t0.Add(4*24*time.Hour)))

	plant.Dead = true
	assert.False(t, plant.IsWilted(t0.Add(4*24*time.Hour)))
}

func TestNeglect_TracksOwnerWateringOnly(t *testing.T) {
	plant := freshPlant()
	// A visitor kept the plant alive for a week while the owner was away.
	plant.WateredAt = t0.Add(6 * 24 * time.Hour)
	now := t0.Add(6*24*time.Hour + time.Hour)

	assert.Equal(t, 6, plant.NeglectedDays(now))
	assert.True(t, plant.IsNeglected(now))

	plant.WateredAtOwner = now
	assert.False(t, plant.IsNeglected(now))
}

func TestCanHarvest(t *testing.T) {
	plant := freshPlant()
	assert.False(t, plant.CanHarvest())

	plant.Stage = catalog.StageSeedBearing
	assert.True(t, plant.CanHarvest())

	plant.Stage = catalog.StageYoung
	plant.Dead = true
	assert.True(t, plant.CanHarvest())
}

func TestDescription_RevealsAttributesByStage(t *testing.T) {
	plant := freshPlant()
	plant.Species = 0 // poppy
	plant.Rarity = 2  // rare
	plant.Color = 0   // red

	assert.Equal(t, "seed", plant.Description(false))

	plant.Stage = catalog.StageYoung
	assert.Equal(t, "young poppy", plant.Description(false))

	plant.Stage = catalog.StageMature
	assert.Equal(t, "rare mature poppy", plant.Description(false))

	plant.Stage = catalog.StageFlowering
	assert.Equal(t, "rare red flowering poppy", plant.Description(false))

	mutation := 0 // humming
	plant.Mutation = &mutation
	assert.Equal(t, "rare humming red flowering poppy", plant.Description(false))

	plant.Dead = true
	assert.Equal(t, "rare humming red flowering poppy (deceased)", plant.Description(false))
}

func TestDescription_ChristmasModeOverridesEverything(t *testing.T) {
	plant := freshPlant()
	plant.Stage = catalog.StageFlowering

	assert.Equal(t, "christmas tree", plant.Description(true))
}

func TestGauges(t *testing.T) {
	plant := freshPlant()

	assert.Equal(t, "|██████████| 100%", plant.WaterGauge(t0))
	assert.Equal(t, "|█████     | 50%", plant.WaterGauge(t0.Add(12*time.Hour)))
	assert.Equal(t, "|          | 0%", plant.WaterGauge(t0.Add(24*time.Hour)))

	plant.FertilizedAt = t0
	assert.Equal(t, "|▞▞▞▞▞▞▞▞▞▞| 100%", plant.FertilizerGauge(t0))

	plant.Dead = true
	assert.Equal(t, "N/A", plant.WaterGauge(t0))
	assert.Equal(t, "N/A", plant.FertilizerGauge(t0))
}

func TestGrowthRate(t *testing.T) {
	plant := freshPlant()
	assert.InDelta(t, 1.0, plant.GrowthRate(), 1e-9)

	plant.Generation = 4
	assert.InDelta(t, 1.6, plant.GrowthRate(), 1e-9)
}

func TestAge(t *testing.T) {
	plant := freshPlant()

	assert.Equal(t, 0, plant.Age(t0.Add(12*time.Hour)))
	assert.Equal(t, 3, plant.Age(t0.Add(3*24*time.Hour+time.Hour)))
}
