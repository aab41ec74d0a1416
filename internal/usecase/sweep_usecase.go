package usecase

import "context"

// SweepUsecase is the periodic maintenance pass: refresh every active plant
// so displayed state stays current even for gardens nobody has visited.
type SweepUsecase interface {
	// RefreshAll refreshes and persists every active plant, returning
	// how many were processed. It is safe to run concurrently with
	// user-triggered refreshes: already-counted intervals contribute
	// zero growth.
	RefreshAll(ctx context.Context) (int, error)
}
