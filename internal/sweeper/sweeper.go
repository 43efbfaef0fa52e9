package sweeper

import "context"

// Sweeper is a long-running background job with a managed lifecycle
type Sweeper interface {
	// Start runs the sweep loop until the context is canceled or Stop is called
	Start(ctx context.Context) error
	// Stop signals the loop to exit and waits for the in-flight round
	Stop()
	// Name identifies the sweeper in logs
	Name() string
}
