package session

import (
	"context"
	"sync"
	"time"

	"github.com/arenahq/arena/internal/services/web/storage"
)

// memoryStore is an in-memory storage.Store for tests.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]storage.Session
	slots    map[string]map[string][]byte
	purges   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		sessions: map[string]storage.Session{},
		slots:    map[string]map[string][]byte{},
	}
}

func (s *memoryStore) PutSession(_ context.Context, sess storage.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *memoryStore) GetSession(_ context.Context, id string) (storage.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || sess.Expired(time.Now()) {
		return storage.Session{}, storage.ErrNotFound
	}
	return sess, nil
}

func (s *memoryStore) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	delete(s.slots, id)
	return nil
}

func (s *memoryStore) PutSlot(_ context.Context, sessionID, slot string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return storage.ErrNotFound
	}
	if s.slots[sessionID] == nil {
		s.slots[sessionID] = map[string][]byte{}
	}
	s.slots[sessionID][slot] = append([]byte(nil), payload...)
	return nil
}

func (s *memoryStore) GetSlot(_ context.Context, sessionID, slot string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.slots[sessionID][slot]
	return payload, ok, nil
}

func (s *memoryStore) DeleteSlot(_ context.Context, sessionID, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots[sessionID], slot)
	return nil
}

func (s *memoryStore) PurgeExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purges++
	purged := 0
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
			delete(s.slots, id)
			purged++
		}
	}
	return purged, nil
}

func (s *memoryStore) Close() error { return nil }

func (s *memoryStore) purgeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.purges
}
