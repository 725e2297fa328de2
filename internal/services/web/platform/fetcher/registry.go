package fetcher

import (
	"container/list"
	"sync"
)

// Registry keeps one tracker per key with least-recently-used eviction.
type Registry[T any] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[string]*list.Element
}

type registryEntry[T any] struct {
	key     string
	tracker *Tracker[T]
}

// NewRegistry returns a registry holding at most capacity trackers.
func NewRegistry[T any](capacity int) *Registry[T] {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Registry[T]{
		capacity: capacity,
		order:    list.New(),
		entries:  map[string]*list.Element{},
	}
}

// Tracker returns the tracker for key, creating it when absent.
func (r *Registry[T]) Tracker(key string) *Tracker[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if elem, ok := r.entries[key]; ok {
		r.order.MoveToFront(elem)
		return elem.Value.(registryEntry[T]).tracker
	}
	entry := registryEntry[T]{key: key, tracker: NewTracker[T]()}
	r.entries[key] = r.order.PushFront(entry)
	for r.order.Len() > r.capacity {
		oldest := r.order.Back()
		r.order.Remove(oldest)
		delete(r.entries, oldest.Value.(registryEntry[T]).key)
	}
	return entry.tracker
}

// Len returns the number of tracked keys.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}
