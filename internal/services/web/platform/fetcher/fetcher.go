// Package fetcher tracks remote reads as three-state resources and discards
// responses that were superseded by a newer load.
package fetcher

import (
	"context"
	"sync"
)

// Status is the lifecycle of a remote resource.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Resource is a snapshot of one remote read.
type Resource[T any] struct {
	Status     Status
	Data       T
	Err        error
	Generation uint64
}

// Ticket identifies one load. Only the latest ticket may settle.
type Ticket struct {
	generation uint64
}

// Generation returns the load generation.
func (t Ticket) Generation() uint64 { return t.generation }

// Tracker issues monotonically increasing load generations. Starting a load
// cancels the previous in-flight one, and settling a stale ticket is a no-op.
// Tracker is safe for concurrent use.
type Tracker[T any] struct {
	mu       sync.Mutex
	latest   uint64
	cancel   context.CancelFunc
	resource Resource[T]
}

// NewTracker returns an idle tracker.
func NewTracker[T any]() *Tracker[T] {
	return &Tracker[T]{resource: Resource[T]{Status: StatusIdle}}
}

// Begin starts a new load. The returned context is cancelled when a newer
// load begins or when parent is done.
func (t *Tracker[T]) Begin(parent context.Context) (Ticket, context.Context) {
	ctx, cancel := context.WithCancel(parent)
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
	t.latest++
	t.cancel = cancel
	t.resource.Status = StatusPending
	t.resource.Err = nil
	t.resource.Generation = t.latest
	return Ticket{generation: t.latest}, ctx
}

// Settle records the outcome of ticket's load. It reports false, leaving the
// resource untouched, when a newer load has begun since ticket was issued.
func (t *Tracker[T]) Settle(ticket Ticket, data T, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ticket.generation != t.latest {
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if err != nil {
		t.resource.Status = StatusError
		t.resource.Err = err
		return true
	}
	t.resource.Status = StatusSuccess
	t.resource.Data = data
	t.resource.Err = nil
	return true
}

// Snapshot returns the current resource state.
func (t *Tracker[T]) Snapshot() Resource[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.resource
}

// Load runs fetch under a new ticket and returns the settled snapshot. ok is
// false when a newer load superseded this one.
func (t *Tracker[T]) Load(parent context.Context, fetch func(context.Context) (T, error)) (Resource[T], bool) {
	ticket, ctx := t.Begin(parent)
	data, err := fetch(ctx)
	if !t.Settle(ticket, data, err) {
		return t.Snapshot(), false
	}
	return t.Snapshot(), true
}
