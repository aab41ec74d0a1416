// Package clock provides the wall-clock implementation of the domain Clock service.
package clock

import (
	"time"

	"botany/internal/domain/service"
)

type systemClock struct{}

// New returns a Clock backed by the system wall clock.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
