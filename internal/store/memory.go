package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one record held by MemoryStore.
type Entry struct {
	ID        string
	Record    any
	CreatedAt time.Time
}

// MemoryStore keeps records in process. It backs tests and local runs without a database.
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string]map[string]Entry
	failWith    error
}

func NewMemoryStore(name string) *MemoryStore {
	if name == "" {
		name = "memory"
	}
	return &MemoryStore{name: name, collections: make(map[string]map[string]Entry)}
}

// Fail makes every following write return err. Pass nil to recover.
func (m *MemoryStore) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

func (m *MemoryStore) CreateDocument(_ context.Context, collection string, record any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return "", &PersistenceError{Collection: collection, Err: m.failWith}
	}
	col, ok := m.collections[collection]
	if !ok {
		col = make(map[string]Entry)
		m.collections[collection] = col
	}
	id := uuid.NewString()
	col[id] = Entry{ID: id, Record: record, CreatedAt: time.Now().UTC()}
	return id, nil
}

// Get returns the entry stored under id in collection.
func (m *MemoryStore) Get(collection, id string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.collections[collection][id]
	return e, ok
}

// Count returns how many records collection holds.
func (m *MemoryStore) Count(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.collections[collection])
}

func (m *MemoryStore) Name() string { return m.name }

func (m *MemoryStore) ListCollectionNames(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.collections))
	for name := range m.collections {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
