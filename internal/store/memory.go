package store

import (
	"sync"
	"time"
)

type memoryEntry struct {
	run       *AnalysisRun
	expiresAt time.Time
}

// MemoryStore keeps runs in-process with a TTL. Suitable for a single API
// instance; use the Redis store when runs must survive restarts or be shared.
type MemoryStore struct {
	mu    sync.RWMutex
	store map[string]*memoryEntry
	ttl   time.Duration
}

// NewMemoryStore creates a store whose entries expire after ttl.
// A non-positive ttl defaults to one hour.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &MemoryStore{
		store: make(map[string]*memoryEntry),
		ttl:   ttl,
	}
}

func (m *MemoryStore) Save(run *AnalysisRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[run.ID] = &memoryEntry{
		run:       run,
		expiresAt: time.Now().Add(m.ttl),
	}
	return nil
}

func (m *MemoryStore) Get(id string) (*AnalysisRun, bool) {
	m.mu.RLock()
	entry, ok := m.store[id]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.store, id)
		m.mu.Unlock()
		return nil, false
	}
	return entry.run, true
}

// Len reports the number of entries, expired or not. Used by tests and the
// debug endpoint.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
