package cache

import (
	"sync"

	"hashicon/internal/domain"
)

// DefaultCapacity bounds a memo when the caller does not pick a size.
const DefaultCapacity = 256

// Memo is a bounded key-to-image store with first-in-first-out eviction.
type Memo struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]domain.Image
	order    []string
}

// New returns a memo holding at most capacity entries. Non-positive
// capacities fall back to DefaultCapacity.
func New(capacity int) *Memo {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Memo{
		capacity: capacity,
		entries:  make(map[string]domain.Image, capacity),
	}
}

// Get returns the cached image for key, if present.
func (m *Memo) Get(key string) (domain.Image, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	img, ok := m.entries[key]
	return img, ok
}

// Put stores img under key, evicting the oldest entry when full. Re-putting
// an existing key overwrites the image without extending the memo.
func (m *Memo) Put(key string, img domain.Image) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.entries[key]; exists {
		m.entries[key] = img
		return
	}
	if len(m.order) == m.capacity {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}
	m.entries[key] = img
	m.order = append(m.order, key)
}

// Len reports the number of cached entries.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

var _ domain.IconCache = (*Memo)(nil)
