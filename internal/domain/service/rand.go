package service

// Rand abstracts the random source used for attribute rolls (species, color,
// rarity), mutation hazards, and petal colors. It is injected so that
// probability-driven branches can be tested deterministically with a seeded
// or scripted source.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64

	// Intn returns a pseudo-random number in [0, n).
	Intn(n int) int
}
