// Package gate bounds how many path queries may run the search engine
// concurrently, independent of however many HTTP requests are in flight.
package gate

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrent is the permit count used when no override is given.
const DefaultMaxConcurrent = 10

// Gate is a counting permit around the search engine's hot path.
type Gate struct {
	sem *semaphore.Weighted
}

// New creates a Gate allowing up to max concurrent holders.
func New(max int64) *Gate {
	if max <= 0 {
		max = DefaultMaxConcurrent
	}
	return &Gate{sem: semaphore.NewWeighted(max)}
}

// Acquire blocks until a permit is available or ctx is done.
func (g *Gate) Acquire(ctx context.Context) error {
	return g.sem.Acquire(ctx, 1)
}

// Release returns a permit acquired via Acquire. Callers must release
// exactly once per successful Acquire, on every code path.
func (g *Gate) Release() {
	g.sem.Release(1)
}
