// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate concerns that don't naturally fit within a
// single entity, keeping the domain free of ambient dependencies.
package service

import "time"

// Clock abstracts wall-clock time. All growth computation is driven by
// elapsed real time, so the clock is injected everywhere instead of calling
// time.Now directly; tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}
