// ABOUTME: One in-flight tunes fetch, run as a goroutine and awaited by the caller
// ABOUTME: Moves from Pending to Resolved or Rejected exactly once
package request

import (
	"context"
	"sync"

	"github.com/harper/tunes-client/internal/domain"
	"github.com/harper/tunes-client/internal/domain/tune"
)

// State is the lifecycle position of a Request.
type State string

const (
	// StatePending means the fetch has been issued and has not settled.
	StatePending State = "Pending"

	// StateResolved means the fetch settled with a collection.
	StateResolved State = "Resolved"

	// StateRejected means the fetch settled with an error.
	StateRejected State = "Rejected"
)

func (s State) String() string {
	return string(s)
}

// IsSettled reports whether s is terminal.
func (s State) IsSettled() bool {
	return s == StateResolved || s == StateRejected
}

type Request struct {
	mu    sync.RWMutex
	state State
	tunes tune.Collection
	err   error
	done  chan struct{}
}

// Start issues a fetch in the background. The Request shares nothing with
// any other Request started from the same fetcher.
func Start(ctx context.Context, fetcher domain.TuneFetcher) *Request {
	r := &Request{
		state: StatePending,
		done:  make(chan struct{}),
	}

	go func() {
		tunes, err := fetcher.Fetch(ctx)
		r.settle(tunes, err)
	}()

	return r
}

func (r *Request) settle(tunes tune.Collection, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.IsSettled() {
		return
	}

	if err != nil {
		r.state = StateRejected
		r.err = err
	} else {
		r.state = StateResolved
		r.tunes = tunes
	}
	close(r.done)
}

func (r *Request) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Done is closed once the request settles.
func (r *Request) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the request settles. Every call returns the same outcome.
func (r *Request) Wait() (tune.Collection, error) {
	<-r.done

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tunes, r.err
}
