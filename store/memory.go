package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory Store used by tests and local development. It
// mirrors the semantics the content layer relies on: descending scans,
// equality queries, merge-vs-set, and all-or-nothing batches. A forced
// error can be injected to simulate an unreachable or rejecting store.
type Memory struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]interface{}
	nextID      int
	forcedErr   error
	now         func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string]map[string]map[string]interface{}),
		now:         time.Now,
	}
}

// FailWith makes every subsequent call (and any in-flight batch commit)
// return err. Pass nil to clear.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.forcedErr = err
}

// SetClock overrides the clock used to resolve server timestamps.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *Memory) List(ctx context.Context, path string, order Order, limit int) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	docs := []Document{}
	for id, data := range m.collections[path] {
		docs = append(docs, Document{ID: id, Data: copyMap(data)})
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if order.Desc {
			return lessValue(docs[j].Data[order.Field], docs[i].Data[order.Field])
		}
		return lessValue(docs[i].Data[order.Field], docs[j].Data[order.Field])
	})
	if limit > 0 && len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

func (m *Memory) Get(ctx context.Context, path string, id string) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return Document{}, m.forcedErr
	}
	data, ok := m.collections[path][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Data: copyMap(data)}, nil
}

func (m *Memory) Query(ctx context.Context, path string, field string, value interface{}) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return nil, m.forcedErr
	}
	docs := []Document{}
	for id, data := range m.collections[path] {
		if data[field] == value {
			docs = append(docs, Document{ID: id, Data: copyMap(data)})
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (m *Memory) Create(ctx context.Context, path string, data map[string]interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return "", m.forcedErr
	}
	id := m.newIDLocked()
	m.putLocked(path, id, data)
	return id, nil
}

func (m *Memory) Set(ctx context.Context, path string, id string, data map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return m.forcedErr
	}
	m.putLocked(path, id, data)
	return nil
}

func (m *Memory) Merge(ctx context.Context, path string, id string, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.forcedErr != nil {
		return m.forcedErr
	}
	existing, ok := m.collections[path][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range m.resolveLocked(fields) {
		existing[k] = v
	}
	return nil
}

func (m *Memory) Batch() Batch {
	return &memoryBatch{store: m}
}

type memoryWrite struct {
	path string
	id   string
	data map[string]interface{}
}

type memoryBatch struct {
	store  *Memory
	writes []memoryWrite
}

func (b *memoryBatch) Create(path string, data map[string]interface{}) string {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	id := b.store.newIDLocked()
	b.writes = append(b.writes, memoryWrite{path: path, id: id, data: data})
	return id
}

// Commit applies every queued write under one lock, or none when a failure
// is injected.
func (b *memoryBatch) Commit(ctx context.Context) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	if b.store.forcedErr != nil {
		return b.store.forcedErr
	}
	for _, w := range b.writes {
		b.store.putLocked(w.path, w.id, w.data)
	}
	return nil
}

func (m *Memory) newIDLocked() string {
	m.nextID++
	return fmt.Sprintf("doc-%d", m.nextID)
}

func (m *Memory) putLocked(path, id string, data map[string]interface{}) {
	col, ok := m.collections[path]
	if !ok {
		col = make(map[string]map[string]interface{})
		m.collections[path] = col
	}
	col[id] = m.resolveLocked(data)
}

func (m *Memory) resolveLocked(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = m.now()
			continue
		}
		out[k] = v
	}
	return out
}

func copyMap(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

func lessValue(a, b interface{}) bool {
	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv)
		}
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
