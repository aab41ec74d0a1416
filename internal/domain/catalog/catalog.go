// Package catalog holds the fixed game data: growth stages, plant attribute
// tables, and the item registry. A single immutable Catalog is constructed at
// startup and shared by reference; nothing in here mutates after New.
package catalog

import "botany/internal/domain/service"

// Stage indices. The stage table is ordered; a plant enters a stage once its
// score reaches the matching cutoff.
const (
	StageSeed = iota
	StageSeedling
	StageYoung
	StageMature
	StageFlowering
	StageSeedBearing
)

const secondsPerDay = 24 * 60 * 60

// Stages maps stage index to display name.
var Stages = []string{
	"seed",
	"seedling",
	"young",
	"mature",
	"flowering",
	"seed-bearing",
}

// StageCutoffs holds the score required to enter each stage. Score is
// accumulated in effective growth seconds, so the cutoffs read as days of
// fully watered growth.
var StageCutoffs = []int{
	0,
	1 * secondsPerDay,
	3 * secondsPerDay,
	10 * secondsPerDay,
	20 * secondsPerDay,
	30 * secondsPerDay,
}

// Species holds every plant species a seed can sprout into.
var Species = []string{
	"poppy",
	"cactus",
	"aloe",
	"venus flytrap",
	"jade plant",
	"fern",
	"daffodil",
	"sunflower",
	"baobab",
	"lithops",
	"hemp",
	"pansy",
	"iris",
	"agave",
	"ficus",
	"moss",
	"sage",
	"snapdragon",
	"columbine",
	"brugmansia",
	"palm",
	"pachypodium",
}

// ColorsPlain holds the flower colors a petal can take. Colors additionally
// includes the special rainbow value, which is never a petal color.
var ColorsPlain = []string{
	"red",
	"orange",
	"yellow",
	"green",
	"blue",
	"indigo",
	"violet",
	"white",
	"black",
	"gold",
}

// Colors is ColorsPlain plus rainbow.
var Colors = append(append([]string{}, ColorsPlain...), "rainbow")

// ColorRainbow is the index of the special rainbow color.
var ColorRainbow = len(Colors) - 1

// Rarities maps rarity tier to display name.
var Rarities = []string{
	"common",
	"uncommon",
	"rare",
	"legendary",
	"godly",
}

// Mutations holds the cosmetic mutations a plant can roll during growth.
var Mutations = []string{
	"humming",
	"noxious",
	"vorpal",
	"glowing",
	"flamboyant",
	"feathered",
	"spiked",
	"juicy",
	"vibrant",
	"pale",
	"sparkly",
	"crystalline",
	"carnivorous",
	"fragrant",
	"luminous",
	"melodic",
	"spectral",
	"velvety",
	"iridescent",
	"whistling",
}

// PlantNames is the pool of default nicknames for freshly sprouted plants.
var PlantNames = []string{
	"Ada", "Basil", "Clementine", "Daisy", "Edgar", "Fern", "Gus",
	"Hazel", "Iris", "Juniper", "Kelvin", "Luna", "Mochi", "Nova",
	"Olive", "Pip", "Quincy", "Rosie", "Sprout", "Tulip", "Umber",
	"Violet", "Willow", "Xeno", "Yarrow", "Ziggy",
}

// RollRarity performs the cascading rarity roll: 66% common, then each
// remaining tier takes half of what's left.
func RollRarity(rng service.Rand) int {
	switch {
	case rng.Float64() < 0.66:
		return 0
	case rng.Float64() < 0.5:
		return 1
	case rng.Float64() < 0.5:
		return 2
	case rng.Float64() < 0.5:
		return 3
	default:
		return 4
	}
}

// RollSpecies picks a uniformly random species index.
func RollSpecies(rng service.Rand) int {
	return rng.Intn(len(Species))
}

// RollColor picks a uniformly random color index, rainbow included.
func RollColor(rng service.Rand) int {
	return rng.Intn(len(Colors))
}

// RollName picks a default nickname for a new plant.
func RollName(rng service.Rand) string {
	return PlantNames[rng.Intn(len(PlantNames))]
}
