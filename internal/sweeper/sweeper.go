package sweeper

import (
	"context"
)

// Sweeper is a long-running maintenance loop over the payment tables,
// expiring stale records and resuming interrupted settlements
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the sweep loop; blocks until the context is canceled
	// or Stop is called
	Start(ctx context.Context) error

	// Stop shuts the loop down, waiting for an in-progress cycle to finish
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}
