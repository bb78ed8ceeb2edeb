package expiry

import "context"

// Client removes stories that are past their display window.
type Client interface {
	// Schedule starts the periodic sweep. It stops when ctx is done.
	Schedule(ctx context.Context) error
	// Sweep deletes expired stories once and reports how many were removed.
	Sweep(ctx context.Context) (int64, error)
}
