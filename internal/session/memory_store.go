package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process fallback used while the distributed
// backend is down. A janitor goroutine expires records and index sets on
// the same TTL semantics redis provides.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]memRecord
	indexes map[string]memIndex

	stop     chan struct{}
	stopOnce sync.Once
}

type memRecord struct {
	session   Session
	expiresAt time.Time
}

type memIndex struct {
	ids       map[string]struct{}
	expiresAt time.Time
}

func NewMemoryStore(janitorInterval time.Duration) *MemoryStore {
	m := &MemoryStore{
		records: make(map[string]memRecord),
		indexes: make(map[string]memIndex),
		stop:    make(chan struct{}),
	}
	go m.janitor(janitorInterval)
	return m
}

func (m *MemoryStore) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case now := <-ticker.C:
			m.mu.Lock()
			for id, rec := range m.records {
				if now.After(rec.expiresAt) {
					delete(m.records, id)
				}
			}
			for userID, idx := range m.indexes {
				if now.After(idx.expiresAt) {
					delete(m.indexes, userID)
				}
			}
			m.mu.Unlock()
		}
	}
}

func (m *MemoryStore) Save(_ context.Context, s Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[s.ID] = memRecord{session: s, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[sessionID]
	if !ok {
		return nil, nil
	}
	if time.Now().After(rec.expiresAt) {
		delete(m.records, sessionID)
		return nil, nil
	}
	s := rec.session
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, sessionID)
	return nil
}

func (m *MemoryStore) AddToIndex(_ context.Context, userID, sessionID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx, ok := m.indexes[userID]
	if !ok || time.Now().After(idx.expiresAt) {
		idx = memIndex{ids: make(map[string]struct{})}
	}
	idx.ids[sessionID] = struct{}{}
	idx.expiresAt = time.Now().Add(ttl)
	m.indexes[userID] = idx
	return nil
}

func (m *MemoryStore) RemoveFromIndex(_ context.Context, userID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if idx, ok := m.indexes[userID]; ok {
		delete(idx.ids, sessionID)
	}
	return nil
}

func (m *MemoryStore) IndexMembers(_ context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx, ok := m.indexes[userID]
	if !ok || time.Now().After(idx.expiresAt) {
		return nil, nil
	}
	ids := make([]string, 0, len(idx.ids))
	for id := range idx.ids {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *MemoryStore) ClearIndex(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.indexes, userID)
	return nil
}

func (m *MemoryStore) Ping(_ context.Context) error { return nil }
