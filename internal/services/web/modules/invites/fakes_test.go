package invites

import (
	"context"
	"sync"
)

// fakeGateway implements InviteGateway with a configurable result. When
// release is set, calls block until it is closed.
type fakeGateway struct {
	mu      sync.Mutex
	message string
	err     error
	calls   []string
	release chan struct{}
}

var _ InviteGateway = (*fakeGateway)(nil)

func (f *fakeGateway) RespondInvite(ctx context.Context, inviteID string, accept bool) (string, error) {
	f.mu.Lock()
	action := "decline"
	if accept {
		action = "accept"
	}
	f.calls = append(f.calls, action+":"+inviteID)
	release := f.release
	f.mu.Unlock()
	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.message, f.err
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
