// Package proof hosts the deadline-aware runner that sits between a
// CLI host and the pure folresolve.Solve search. Solve itself has no
// notion of a context or a deadline; this package supplies one so a
// host can bound how long a single proof attempt is allowed to run
// without teaching the search package itself about cancellation.
package proof

import (
	"context"
	"fmt"

	"github.com/gitrdm/folresolve/pkg/folresolve"
)

// Result carries the outcome of a single bounded Solve run.
type Result struct {
	Proven bool
	Log    []string
}

// ErrDeadlineExceeded is returned when ctx is cancelled or times out
// before Solve finishes its search. The search itself is not aborted
// mid-sweep — folresolve.Solve has no cancellation points — so the
// goroutine running it is abandoned to finish or keep looping in the
// background; Run returns as soon as ctx says to.
var ErrDeadlineExceeded = fmt.Errorf("proof: deadline exceeded before resolution finished")

// Run executes folresolve.Solve(premises, goal) on a worker goroutine
// and returns its Result, or ErrDeadlineExceeded if ctx is done first.
//
// Grounded on the teacher's ExecuteWithDeadlockProtection shape
// (internal/parallel/pool.go): a single worker goroutine reporting
// through a buffered done channel, raced against ctx.Done() in a
// select. The teacher's dynamic worker pool, work-stealing scheduler,
// and execution-statistics machinery have no counterpart here — a
// proof attempt is one synchronous search, not a stream of
// independently schedulable tasks, so there is nothing for a pool to
// balance load across.
func Run(ctx context.Context, premises []string, goal string) (Result, error) {
	done := make(chan Result, 1)

	go func() {
		proven, log := folresolve.Solve(premises, goal)
		done <- Result{Proven: proven, Log: log}
	}()

	select {
	case r := <-done:
		return r, nil
	case <-ctx.Done():
		return Result{}, ErrDeadlineExceeded
	}
}
