// Package delivery defines the contract shared by every inbound adapter
// (HTTP server, background workers).
package delivery

import "context"

// Delivery is a long-running inbound adapter. Serve blocks until the adapter
// stops or the context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
