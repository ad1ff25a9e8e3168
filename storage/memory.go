package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryRemote is an in-memory RemoteStore used by tests and local
// development. FailWrites and FailAll simulate connectivity loss.
type MemoryRemote struct {
	mu          sync.Mutex
	collections map[string]map[string]json.RawMessage
	order       map[string][]string

	FailWrites bool
	FailAll    bool
}

func NewMemoryRemote() *MemoryRemote {
	return &MemoryRemote{
		collections: make(map[string]map[string]json.RawMessage),
		order:       make(map[string][]string),
	}
}

func (r *MemoryRemote) GetAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAll {
		return nil, fmt.Errorf("remote store unreachable")
	}
	records := make([]json.RawMessage, 0, len(r.collections[collection]))
	for _, id := range r.order[collection] {
		records = append(records, r.collections[collection][id])
	}
	return records, nil
}

func (r *MemoryRemote) GetByID(ctx context.Context, collection, id string) (json.RawMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAll {
		return nil, fmt.Errorf("remote store unreachable")
	}
	record, ok := r.collections[collection][id]
	if !ok {
		return nil, nil
	}
	return record, nil
}

func (r *MemoryRemote) Create(ctx context.Context, collection string, data json.RawMessage) (string, error) {
	id := uuid.NewString()
	if err := r.CreateWithID(ctx, collection, id, data); err != nil {
		return "", err
	}
	return id, nil
}

func (r *MemoryRemote) CreateWithID(ctx context.Context, collection, id string, data json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAll || r.FailWrites {
		return fmt.Errorf("remote store unreachable")
	}
	if r.collections[collection] == nil {
		r.collections[collection] = make(map[string]json.RawMessage)
	}
	if _, exists := r.collections[collection][id]; !exists {
		r.order[collection] = append(r.order[collection], id)
	}
	r.collections[collection][id] = WithID(data, id)
	return nil
}

func (r *MemoryRemote) Update(ctx context.Context, collection, id string, partial json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAll || r.FailWrites {
		return fmt.Errorf("remote store unreachable")
	}
	existing, ok := r.collections[collection][id]
	if !ok {
		return fmt.Errorf("document %s/%s not found", collection, id)
	}
	r.collections[collection][id] = MergeRecord(existing, partial)
	return nil
}

func (r *MemoryRemote) Delete(ctx context.Context, collection, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAll || r.FailWrites {
		return fmt.Errorf("remote store unreachable")
	}
	delete(r.collections[collection], id)
	ids := r.order[collection][:0]
	for _, existing := range r.order[collection] {
		if existing != id {
			ids = append(ids, existing)
		}
	}
	r.order[collection] = ids
	return nil
}

func (r *MemoryRemote) Ping(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAll {
		return fmt.Errorf("remote store unreachable")
	}
	return nil
}

// MemoryLocal is an in-memory LocalStore for tests and local development
type MemoryLocal struct {
	mu    sync.Mutex
	blobs map[string][]json.RawMessage
}

func NewMemoryLocal() *MemoryLocal {
	return &MemoryLocal{blobs: make(map[string][]json.RawMessage)}
}

func (l *MemoryLocal) Get(ctx context.Context, key string) ([]json.RawMessage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	records := make([]json.RawMessage, len(l.blobs[key]))
	copy(records, l.blobs[key])
	return records, nil
}

func (l *MemoryLocal) Set(ctx context.Context, key string, records []json.RawMessage) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	stored := make([]json.RawMessage, len(records))
	copy(stored, records)
	l.blobs[key] = stored
	return nil
}

func (l *MemoryLocal) Upsert(ctx context.Context, key string, record json.RawMessage) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.blobs[key] = upsertRecord(l.blobs[key], record)
	return nil
}

func (l *MemoryLocal) Remove(ctx context.Context, key, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.blobs[key] = removeRecord(l.blobs[key], id)
	return nil
}
