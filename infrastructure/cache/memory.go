package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type memoryItem struct {
	value      []byte
	expiresAt  time.Time
	lastAccess time.Time
}

type MemoryStore struct {
	mu         sync.Mutex
	items      map[string]*memoryItem
	maxEntries int
	clock      clockwork.Clock
}

// NewMemoryStore builds a process-local store. When maxEntries is reached,
// expired entries are dropped first, then the least recently used one.
func NewMemoryStore(maxEntries int, clock clockwork.Clock) *MemoryStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryStore{
		items:      make(map[string]*memoryItem),
		maxEntries: maxEntries,
		clock:      clock,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok {
		return nil, ErrCacheMiss
	}

	now := m.clock.Now()
	if !now.Before(item.expiresAt) {
		delete(m.items, key)
		return nil, ErrCacheMiss
	}

	item.lastAccess = now
	out := make([]byte, len(item.value))
	copy(out, item.value)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	if _, exists := m.items[key]; !exists && m.maxEntries > 0 && len(m.items) >= m.maxEntries {
		m.evict(now)
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.items[key] = &memoryItem{
		value:      stored,
		expiresAt:  now.Add(ttl),
		lastAccess: now,
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.items, key)
	}
	return nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]*memoryItem)
	return nil
}

// PurgeExpired drops every expired entry and reports how many were removed.
func (m *MemoryStore) PurgeExpired(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dropExpired(m.clock.Now()), nil
}

// dropExpired must be called with mu held.
func (m *MemoryStore) dropExpired(now time.Time) int64 {
	var removed int64
	for key, item := range m.items {
		if !now.Before(item.expiresAt) {
			delete(m.items, key)
			removed++
		}
	}
	return removed
}

// evict must be called with mu held.
func (m *MemoryStore) evict(now time.Time) {
	if m.dropExpired(now) > 0 {
		return
	}

	var oldestKey string
	var oldest time.Time
	for key, item := range m.items {
		if oldestKey == "" || item.lastAccess.Before(oldest) {
			oldestKey = key
			oldest = item.lastAccess
		}
	}
	delete(m.items, oldestKey)
}
