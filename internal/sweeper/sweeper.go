package sweeper

import "context"

// Sweeper is a background maintenance loop owned by the API process
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start blocks, sweeping once per interval, until ctx ends or Stop is called
	Start(ctx context.Context) error
	// Stop ends the loop and waits for an in-progress sweep
	Stop(ctx context.Context) error
	Name() string
}
