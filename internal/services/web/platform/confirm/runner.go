// Package confirm runs confirmed mutating actions (delete, kick, respond)
// behind a dialog, at most once per target while a request is in flight.
package confirm

import (
	"context"
	"fmt"
	"sync"

	"github.com/arenahq/arena/internal/platform/timeouts"
	"golang.org/x/sync/singleflight"
)

// Runner de-duplicates concurrent confirmations of the same key. Repeated
// confirms while one is pending join it and never issue a second request.
type Runner struct {
	group singleflight.Group
	mu    sync.Mutex
	busy  map[string]bool
}

// NewRunner returns an idle runner.
func NewRunner() *Runner {
	return &Runner{busy: map[string]bool{}}
}

// Run executes fn for key unless a call for key is already in flight, in
// which case it waits for and returns that call's outcome. shared reports
// whether the result came from another caller's request. The call keeps the
// values of the first caller's ctx but not its cancellation, so a client that
// disconnects does not fail the callers that joined it.
func (r *Runner) Run(ctx context.Context, key string, fn func(context.Context) (string, error)) (message string, shared bool, err error) {
	if fn == nil {
		return "", false, fmt.Errorf("confirm: action for %q is required", key)
	}
	value, err, shared := r.group.Do(key, func() (any, error) {
		r.setBusy(key, true)
		defer r.setBusy(key, false)
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.APIRequest)
		defer cancel()
		return fn(callCtx)
	})
	if err != nil {
		return "", shared, err
	}
	message, _ = value.(string)
	return message, shared, nil
}

// Busy reports whether a request for key is in flight.
func (r *Runner) Busy(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy[key]
}

func (r *Runner) setBusy(key string, busy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.busy == nil {
		r.busy = map[string]bool{}
	}
	if busy {
		r.busy[key] = true
		return
	}
	delete(r.busy, key)
}
