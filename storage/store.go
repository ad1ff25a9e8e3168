package storage

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound marks update and delete targets that do not exist
var ErrNotFound = errors.New("document not found")

// RemoteStore is the contract of the cloud document store: generic CRUD on
// named collections. GetByID returns (nil, nil) when the document does not
// exist. No retry is built in; errors propagate to the caller.
type RemoteStore interface {
	GetAll(ctx context.Context, collection string) ([]json.RawMessage, error)
	GetByID(ctx context.Context, collection, id string) (json.RawMessage, error)
	Create(ctx context.Context, collection string, data json.RawMessage) (string, error)
	CreateWithID(ctx context.Context, collection, id string, data json.RawMessage) error
	Update(ctx context.Context, collection, id string, partial json.RawMessage) error
	Delete(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
}

// LocalStore is the client-side persistent cache: one blob per logical
// key. Upsert and Remove are record-level operations internally but still
// serialize the whole blob at the I/O boundary.
type LocalStore interface {
	Get(ctx context.Context, key string) ([]json.RawMessage, error)
	Set(ctx context.Context, key string, records []json.RawMessage) error
	Upsert(ctx context.Context, key string, record json.RawMessage) error
	Remove(ctx context.Context, key, id string) error
}
