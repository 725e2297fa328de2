// Package redis provides a Redis-backed session store for deployments that
// run more than one web process.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	webstorage "github.com/arenahq/arena/internal/services/web/storage"
	goredis "github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "arena:web:"

// Store keeps each session as a JSON string and its slots in a sibling hash.
// Both keys share the session expiry so Redis evicts them together.
type Store struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

var _ webstorage.Store = (*Store)(nil)

type sessionRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	Username    string    `json:"username,omitempty"`
	Email       string    `json:"email,omitempty"`
	Role        string    `json:"role,omitempty"`
	AccessToken string    `json:"access_token,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at,omitzero"`
}

// Open connects to addr and verifies the connection.
func Open(ctx context.Context, addr string) (*Store, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client), nil
}

// New wraps an existing client.
func New(client *goredis.Client) *Store {
	return &Store{client: client, prefix: defaultKeyPrefix, now: time.Now}
}

// Close closes the underlying client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *Store) sessionKey(id string) string { return s.prefix + "session:" + id }

func (s *Store) slotsKey(id string) string { return s.prefix + "slots:" + id }

// PutSession stores a session until its expiry.
func (s *Store) PutSession(ctx context.Context, session webstorage.Session) error {
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now().UTC()
	}
	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return s.DeleteSession(ctx, session.ID)
		}
	}
	payload, err := json.Marshal(sessionRecord(session))
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, s.sessionKey(session.ID), payload, ttl)
		if ttl > 0 {
			pipe.PExpire(ctx, s.slotsKey(session.ID), ttl)
		} else {
			pipe.Persist(ctx, s.slotsKey(session.ID))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession loads a session by id.
func (s *Store) GetSession(ctx context.Context, id string) (webstorage.Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(strings.TrimSpace(id))).Bytes()
	if errors.Is(err, goredis.Nil) {
		return webstorage.Session{}, webstorage.ErrNotFound
	}
	if err != nil {
		return webstorage.Session{}, fmt.Errorf("get session: %w", err)
	}
	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return webstorage.Session{}, fmt.Errorf("decode session: %w", err)
	}
	session := webstorage.Session(record)
	if session.Expired(s.now()) {
		return webstorage.Session{}, webstorage.ErrNotFound
	}
	return session, nil
}

// DeleteSession removes a session and its slots.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if err := s.client.Del(ctx, s.sessionKey(id), s.slotsKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PutSlot stores one slot payload, inheriting the session's remaining TTL.
func (s *Store) PutSlot(ctx context.Context, sessionID, slot string, payload []byte) error {
	sessionID = strings.TrimSpace(sessionID)
	slot = strings.TrimSpace(slot)
	if sessionID == "" || slot == "" {
		return fmt.Errorf("session id and slot are required")
	}
	ttl, err := s.client.PTTL(ctx, s.sessionKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("put slot %s: %w", slot, err)
	}
	// PTTL reports -2 for a missing key.
	if ttl == -2 {
		return webstorage.ErrNotFound
	}
	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, s.slotsKey(sessionID), slot, payload)
		if ttl > 0 {
			pipe.PExpire(ctx, s.slotsKey(sessionID), ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("put slot %s: %w", slot, err)
	}
	return nil
}

// GetSlot loads one slot payload.
func (s *Store) GetSlot(ctx context.Context, sessionID, slot string) ([]byte, bool, error) {
	data, err := s.client.HGet(ctx, s.slotsKey(strings.TrimSpace(sessionID)), strings.TrimSpace(slot)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get slot %s: %w", slot, err)
	}
	return data, true, nil
}

// DeleteSlot removes one slot.
func (s *Store) DeleteSlot(ctx context.Context, sessionID, slot string) error {
	if err := s.client.HDel(ctx, s.slotsKey(strings.TrimSpace(sessionID)), strings.TrimSpace(slot)).Err(); err != nil {
		return fmt.Errorf("delete slot %s: %w", slot, err)
	}
	return nil
}

// PurgeExpired is a no-op: Redis expires session and slot keys itself.
func (s *Store) PurgeExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}
