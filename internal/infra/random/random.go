// Package random provides the math/rand implementation of the domain Rand service.
package random

import (
	"math/rand/v2"

	"botany/internal/domain/service"
)

type source struct{}

// New returns a Rand backed by the shared math/rand/v2 generator.
func New() service.Rand {
	return source{}
}

func (source) Float64() float64 {
	return rand.Float64()
}

func (source) Intn(n int) int {
	return rand.IntN(n)
}
