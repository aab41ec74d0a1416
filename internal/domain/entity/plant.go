package entity

import (
	"fmt"
	"math"
	"strings"
	"time"

	"botany/internal/domain/catalog"
	"botany/internal/domain/service"

	"github.com/google/uuid"
)

// Game-balance windows. DeathAfter and WaterWindow are independent knobs: a
// plant can sit at 0% water for four days before it dies, which is intended.
const (
	// WaterWindow is how long a watering keeps growth ticking.
	WaterWindow = 24 * time.Hour

	// FertilizerWindow is how long a fertilizer application stays active.
	FertilizerWindow = 3 * 24 * time.Hour

	// DeathAfter is the neglect window; an unwatered plant dies once it
	// has been this long since the last watering.
	DeathAfter = 5 * 24 * time.Hour

	// WiltedAfter marks the plant as visibly close to death.
	WiltedAfter = 3 * 24 * time.Hour

	// mutationCoefficient tunes the per-tick mutation hazard rate: each
	// growth second carries a 1-in-200000 chance of rolling a mutation.
	mutationCoefficient = 200_000
)

// Plant is the persisted state of one growing slot. A user accumulates many
// plants over time but has at most one with ActiveUserID set; the rest are
// retired history. All growth state is derived lazily from timestamps by
// Refresh rather than by a background ticker.
type Plant struct {
	ID             uuid.UUID
	UserID         uuid.UUID  // owning user, never changes
	ActiveUserID   *uuid.UUID // non-nil iff this is the owner's current plant (unique per user)
	CreatedAt      time.Time
	UpdatedAt      time.Time // when Refresh last ran
	WateredAt      time.Time // last watering by anyone
	WateredAtOwner time.Time // last watering by the owner, feeds neglect detection
	WateredByID    *uuid.UUID
	FertilizedAt   time.Time
	Generation     int
	Score          int
	Stage          int
	Species        int
	Rarity         int
	Color          int
	Mutation       *int
	Dead           bool
	Name           string
	ShakenAt       int // score already converted to coins via Shake
}

// NewPlant rolls a fresh plant for a user. The new plant starts with an
// expired water supply and no active fertilizer, so nothing grows until the
// owner waters it.
func NewPlant(ownerID uuid.UUID, generation int, now time.Time, rng service.Rand) *Plant {
	return &Plant{
		ID:             uuid.New(),
		UserID:         ownerID,
		CreatedAt:      now,
		UpdatedAt:      now,
		WateredAt:      now.Add(-WaterWindow),
		WateredAtOwner: now,
		FertilizedAt:   now.Add(-4 * 24 * time.Hour),
		Generation:     generation,
		Species:        catalog.RollSpecies(rng),
		Rarity:         catalog.RollRarity(rng),
		Color:          catalog.RollColor(rng),
		Name:           catalog.RollName(rng),
	}
}

// ColorStr returns the display name of the plant's flower color.
func (p *Plant) ColorStr() string { return catalog.Colors[p.Color] }

// StageStr returns the display name of the plant's growth stage.
func (p *Plant) StageStr() string { return catalog.Stages[p.Stage] }

// SpeciesStr returns the display name of the plant's species.
func (p *Plant) SpeciesStr() string { return catalog.Species[p.Species] }

// RarityStr returns the display name of the plant's rarity tier.
func (p *Plant) RarityStr() string { return catalog.Rarities[p.Rarity] }

// MutationStr returns the display name of the plant's mutation, or "" if the
// plant has not mutated.
func (p *Plant) MutationStr() string {
	if p.Mutation == nil {
		return ""
	}
	return catalog.Mutations[*p.Mutation]
}

// GrowthRate is the generation multiplier: each harvest of a fully matured
// plant makes the next generation grow 20% faster.
func (p *Plant) GrowthRate() float64 {
	return 1 + float64(p.Generation-1)*0.2
}

// Age is the plant's age in whole days.
func (p *Plant) Age(now time.Time) int {
	return int(now.Sub(p.CreatedAt).Hours() / 24)
}

// WaterSupplyPercent reports the remaining water supply from 100 (just
// watered) to 0 (water window expired). Ceiling rounding, so any nonzero
// remainder reads as at least 1%.
func (p *Plant) WaterSupplyPercent(now time.Time) int {
	elapsed := now.Sub(p.WateredAt).Seconds()
	remaining := math.Max(0, 1-elapsed/WaterWindow.Seconds())
	return int(math.Ceil(remaining * 100))
}

// FertilizerPercent reports the remaining fertilizer from 100 to 0 over the
// three-day fertilizer window.
func (p *Plant) FertilizerPercent(now time.Time) int {
	elapsed := now.Sub(p.FertilizedAt).Seconds()
	remaining := math.Max(0, 1-elapsed/FertilizerWindow.Seconds())
	return int(math.Ceil(remaining * 100))
}

// Health summarizes the watering state as a display word.
func (p *Plant) Health(now time.Time) string {
	wateredDelta := now.Sub(p.WateredAt)
	switch {
	case p.Dead:
		return "dead"
	case wateredDelta < WaterWindow:
		return "healthy"
	case wateredDelta < WiltedAfter:
		return "dry"
	case wateredDelta < DeathAfter:
		return "wilting"
	default:
		return "dead"
	}
}

// IsWilted reports whether the plant is close to death. Dead plants are not
// wilted, they are dead.
func (p *Plant) IsWilted(now time.Time) bool {
	if p.Dead {
		return false
	}
	return now.Sub(p.WateredAt) > WiltedAfter
}

// NeglectedDays is the number of whole days since the owner last watered
// their own plant. Waterings by visitors don't reset it.
func (p *Plant) NeglectedDays(now time.Time) int {
	return int(now.Sub(p.WateredAtOwner).Hours() / 24)
}

// IsNeglected reports whether the owner has let visitors keep the plant
// alive for them for too long.
func (p *Plant) IsNeglected(now time.Time) bool {
	return p.NeglectedDays(now) > 5
}

// CanHarvest reports whether the plant is ready to be retired: either it is
// dead, or it has reached the terminal seed-bearing stage.
func (p *Plant) CanHarvest() bool {
	return p.Dead || p.Stage == catalog.StageSeedBearing
}

// Description builds the one-line summary of the plant. Attributes reveal
// themselves progressively as the plant grows.
func (p *Plant) Description(christmasMode bool) string {
	if christmasMode {
		return "christmas tree"
	}

	var words []string
	if p.Stage > catalog.StageYoung {
		words = append(words, p.RarityStr())
	}
	if mutation := p.MutationStr(); mutation != "" {
		words = append(words, mutation)
	}
	if p.Stage > catalog.StageMature {
		words = append(words, p.ColorStr())
	}
	words = append(words, p.StageStr())
	if p.Stage > catalog.StageSeedling {
		words = append(words, p.SpeciesStr())
	}
	if p.Dead {
		words = append(words, "(deceased)")
	}
	return strings.Join(words, " ")
}

// WaterGauge renders the water supply as a ten-segment bar.
func (p *Plant) WaterGauge(now time.Time) string {
	if p.Dead {
		return "N/A"
	}
	return gauge("█", p.WaterSupplyPercent(now))
}

// FertilizerGauge renders the remaining fertilizer as a ten-segment bar.
func (p *Plant) FertilizerGauge(now time.Time) string {
	if p.Dead {
		return "N/A"
	}
	return gauge("▞", p.FertilizerPercent(now))
}

func gauge(barChar string, percent int) string {
	bar := strings.Repeat(barChar, percent/10) + strings.Repeat(" ", 10-percent/10)
	return fmt.Sprintf("|%s| %d%%", bar, percent)
}

// Refresh brings the plant current with the wall clock: integrates growth
// over the elapsed interval, rolls for mutations, advances stages, and
// detects death by neglect. It performs no I/O and is safe to call
// redundantly; already-counted intervals contribute zero ticks because
// UpdatedAt advances monotonically.
func (p *Plant) Refresh(now time.Time, rng service.Rand) {
	lastUpdate := p.UpdatedAt
	p.UpdatedAt = now

	// Past the neglect window the plant is gone; no growth is credited
	// for the interval leading up to death.
	if now.Sub(p.WateredAt) >= DeathAfter {
		p.Dead = true
		return
	}

	// One tick per elapsed second while water was in supply: the overlap
	// of [lastUpdate, now] with [wateredAt, wateredAt+24h].
	minTime := laterOf(p.WateredAt, lastUpdate)
	maxTime := earlierOf(p.WateredAt.Add(WaterWindow), now)
	ticks := math.Max(0, maxTime.Sub(minTime).Seconds())

	// Fertilizer adds half a tick per second, but only while water is
	// also active: intersect the elapsed interval with both windows.
	minTime = laterOf(p.FertilizedAt, laterOf(lastUpdate, p.WateredAt))
	maxTime = earlierOf(p.FertilizedAt.Add(FertilizerWindow), earlierOf(p.WateredAt.Add(WaterWindow), now))
	bonusTicks := math.Max(0, maxTime.Sub(minTime).Seconds())
	ticks += bonusTicks * 0.5

	ticks *= p.GrowthRate()
	earned := int(ticks)
	p.Score += earned

	// Constant per-second mutation hazard, folded into one roll so we
	// don't loop over every elapsed second.
	if p.Mutation == nil {
		threshold := math.Pow(float64(mutationCoefficient-1)/float64(mutationCoefficient), float64(earned))
		if rng.Float64() > threshold {
			mutation := rng.Intn(len(catalog.Mutations))
			p.Mutation = &mutation
		}
	}

	// A long gap can cross several cutoffs in one refresh.
	for p.Stage < len(catalog.Stages)-1 && p.Score >= catalog.StageCutoffs[p.Stage+1] {
		p.Stage++
	}
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
