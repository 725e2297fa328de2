// Package storage declares persistence for transient browser state: sessions
// and the per-session slots (cart, checkout wizard) hung off them.
//
// Nothing stored here is domain data; losing it signs users out and empties
// carts, nothing more.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports a missing session.
var ErrNotFound = errors.New("storage: not found")

// Session is one browser session. Anonymous sessions have an empty UserID
// and AccessToken.
type Session struct {
	ID          string
	UserID      string
	Username    string
	Email       string
	Role        string
	AccessToken string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// SignedIn reports whether the session carries a backend identity.
func (s Session) SignedIn() bool {
	return s.UserID != "" && s.AccessToken != ""
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Store persists sessions and their slots. Implementations must be safe for
// concurrent use.
type Store interface {
	PutSession(ctx context.Context, session Session) error
	// GetSession returns ErrNotFound for unknown or expired sessions.
	GetSession(ctx context.Context, id string) (Session, error)
	// DeleteSession removes the session and all of its slots.
	DeleteSession(ctx context.Context, id string) error
	PutSlot(ctx context.Context, sessionID, slot string, payload []byte) error
	// GetSlot reports false when the slot was never written or was deleted.
	GetSlot(ctx context.Context, sessionID, slot string) ([]byte, bool, error)
	DeleteSlot(ctx context.Context, sessionID, slot string) error
	// PurgeExpired removes sessions expired at now and returns how many.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
	Close() error
}
