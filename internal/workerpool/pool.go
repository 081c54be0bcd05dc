// Package workerpool provides the default transform.Context implementation:
// a parallelism bound sized off the host's CPU count plus a cancellation
// context (the goroutines themselves are started by Execute), the out-of-scope
// "thread-pool provider and workload-hint policy" collaborator that
// spec.md §1 leaves to the host application.
package workerpool

import (
	"context"
	"runtime"
)

// Pool is a bounded-parallelism transform.Context. It doesn't itself run
// goroutines — Execute's errgroup does that, bounded via SetLimit(pool.
// Parallelism()) — it only carries the parallelism decision and the
// cancellation signal, mirroring the teacher's own
// `numWorkers := runtime.NumCPU()` sizing (engine/aggregator.go,
// engine/loader.go).
type Pool struct {
	context.Context
	parallelism int
}

// New wraps parent with a fixed parallelism. parallelism is clamped to at
// least 1.
func New(parent context.Context, parallelism int) *Pool {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Pool{Context: parent, parallelism: parallelism}
}

// NewDefault wraps parent with parallelism set to runtime.NumCPU(), the
// teacher's default worker count for both loading and aggregation.
func NewDefault(parent context.Context) *Pool {
	return New(parent, runtime.NumCPU())
}

// Parallelism returns the pool's target concurrent-batch count.
func (p *Pool) Parallelism() int { return p.parallelism }

// WithCancel returns a child pool sharing parallelism but with its own
// cancellation func, e.g. so a caller can abort an in-flight Execute call
// from outside.
func WithCancel(parent *Pool) (*Pool, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent.Context)
	return &Pool{Context: ctx, parallelism: parent.parallelism}, cancel
}
