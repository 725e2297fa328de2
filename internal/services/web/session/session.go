// Package session resolves browser sessions from cookies and carries them,
// together with their per-session slots, through request contexts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/arenahq/arena/internal/platform/requestctx"
	"github.com/arenahq/arena/internal/services/web/platform/sessioncookie"
	"github.com/arenahq/arena/internal/services/web/storage"
	"github.com/google/uuid"
)

// Slot names used by feature modules.
const (
	SlotCart     = "cart"
	SlotCheckout = "checkout"
)

// carriedSlots survive a sign-in rotation so a guest cart follows the user.
var carriedSlots = []string{SlotCart}

// Identity is the backend user a session signs in as.
type Identity struct {
	UserID   string
	Username string
	Email    string
	Role     string
	Token    string
}

type contextKey struct{}

// Manager owns session lifecycle for one store.
type Manager struct {
	store   storage.Store
	cookies sessioncookie.Cookies
	ttl     time.Duration
	now     func() time.Time
	newID   func() string
}

// NewManager builds a session manager. ttl bounds every session; signed-in
// sessions are further bounded by the access token expiry.
func NewManager(store storage.Store, cookies sessioncookie.Cookies, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	cookies.TTL = ttl
	return &Manager{
		store:   store,
		cookies: cookies,
		ttl:     ttl,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// FromContext returns the session attached by Middleware or Ensure.
func FromContext(ctx context.Context) (storage.Session, bool) {
	if ctx == nil {
		return storage.Session{}, false
	}
	sess, ok := ctx.Value(contextKey{}).(storage.Session)
	return sess, ok
}

// WithSession attaches sess and its identity to ctx.
func WithSession(ctx context.Context, sess storage.Session) context.Context {
	ctx = context.WithValue(ctx, contextKey{}, sess)
	if sess.SignedIn() {
		ctx = requestctx.WithUserID(ctx, sess.UserID)
		ctx = requestctx.WithBearerToken(ctx, sess.AccessToken)
	}
	return ctx
}

// Middleware resolves the session cookie. Unknown or expired sessions clear
// the cookie and continue anonymously.
func (m *Manager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := sessioncookie.Read(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			sess, err := m.store.GetSession(r.Context(), id)
			switch {
			case errors.Is(err, storage.ErrNotFound):
				m.cookies.Clear(w, r)
			case err != nil:
				log.Printf("session lookup failed path=%s err=%v", r.URL.Path, err)
			default:
				r = r.WithContext(WithSession(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Ensure returns the request session, creating an anonymous one when the
// browser has none. The returned request carries the session in its context.
func (m *Manager) Ensure(w http.ResponseWriter, r *http.Request) (storage.Session, *http.Request, error) {
	if sess, ok := FromContext(r.Context()); ok {
		return sess, r, nil
	}
	now := m.now().UTC()
	sess := storage.Session{
		ID:        m.newID(),
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.PutSession(r.Context(), sess); err != nil {
		return storage.Session{}, r, fmt.Errorf("create session: %w", err)
	}
	m.cookies.Write(w, r, sess.ID)
	return sess, r.WithContext(WithSession(r.Context(), sess)), nil
}

// SignIn rotates the browser onto a fresh signed-in session. Carried slots
// move from the previous session, which is then deleted.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, identity Identity) (storage.Session, error) {
	ctx := r.Context()
	now := m.now().UTC()
	expires := now.Add(m.ttl)
	if tokenExpiry, ok := TokenExpiry(identity.Token); ok && tokenExpiry.Before(expires) {
		expires = tokenExpiry
	}
	if !expires.After(now) {
		return storage.Session{}, fmt.Errorf("access token already expired")
	}

	sess := storage.Session{
		ID:          m.newID(),
		UserID:      strings.TrimSpace(identity.UserID),
		Username:    strings.TrimSpace(identity.Username),
		Email:       strings.TrimSpace(identity.Email),
		Role:        strings.TrimSpace(identity.Role),
		AccessToken: strings.TrimSpace(identity.Token),
		CreatedAt:   now,
		ExpiresAt:   expires,
	}
	if err := m.store.PutSession(ctx, sess); err != nil {
		return storage.Session{}, fmt.Errorf("create session: %w", err)
	}

	if previous, ok := FromContext(ctx); ok {
		for _, slot := range carriedSlots {
			payload, found, err := m.store.GetSlot(ctx, previous.ID, slot)
			if err != nil || !found {
				continue
			}
			if err := m.store.PutSlot(ctx, sess.ID, slot, payload); err != nil {
				log.Printf("session slot carry failed slot=%s err=%v", slot, err)
			}
		}
		if err := m.store.DeleteSession(ctx, previous.ID); err != nil {
			log.Printf("session rotation cleanup failed err=%v", err)
		}
	}

	m.cookies.Write(w, r, sess.ID)
	return sess, nil
}

// SignOut deletes the request session and clears the cookie.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	m.cookies.Clear(w, r)
	sess, ok := FromContext(r.Context())
	if !ok {
		return nil
	}
	if err := m.store.DeleteSession(r.Context(), sess.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// LoadSlot decodes a slot into dst. It reports false when the slot is empty.
func (m *Manager) LoadSlot(ctx context.Context, sess storage.Session, slot string, dst any) (bool, error) {
	payload, ok, err := m.store.GetSlot(ctx, sess.ID, slot)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return false, fmt.Errorf("decode slot %s: %w", slot, err)
	}
	return true, nil
}

// SaveSlot encodes value into a slot.
func (m *Manager) SaveSlot(ctx context.Context, sess storage.Session, slot string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", slot, err)
	}
	return m.store.PutSlot(ctx, sess.ID, slot, payload)
}

// ClearSlot deletes a slot.
func (m *Manager) ClearSlot(ctx context.Context, sess storage.Session, slot string) error {
	return m.store.DeleteSlot(ctx, sess.ID, slot)
}
