package store

import (
	"context"
	"errors"
)

// Error taxonomy surfaced to callers. Read paths are expected to degrade on
// ErrUnavailable; write paths must be able to tell the three apart.
var (
	ErrUnavailable      = errors.New("document store unavailable")
	ErrNotFound         = errors.New("document not found")
	ErrPermissionDenied = errors.New("write rejected by store access rules")
)

// serverTimestamp is the sentinel type for server-assigned timestamps.
type serverTimestamp struct{}

// ServerTimestamp marks a field to be stamped by the store at write time
// rather than trusted from the submitting client.
var ServerTimestamp = serverTimestamp{}

// Document is a single record from a collection: the store-assigned
// identifier plus the stored fields as a key-value bag.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Order names the field a collection scan sorts on.
type Order struct {
	Field string
	Desc  bool
}

// Batch accumulates document creations that commit atomically: either every
// queued write lands or none do. Create returns the new document's ID before
// commit so sub-collection paths can be built from it.
type Batch interface {
	Create(path string, data map[string]interface{}) string
	Commit(ctx context.Context) error
}

// Store is the document-store handle every accessor receives explicitly.
// A path is a collection name, optionally nested ("courses/<id>/lessons").
type Store interface {
	// List returns all documents in the collection sorted by order, newest
	// first under the usual descending-timestamp order. A limit <= 0 means
	// no limit. An empty collection yields an empty slice, not an error.
	List(ctx context.Context, path string, order Order, limit int) ([]Document, error)

	// Get reads a single document by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, path string, id string) (Document, error)

	// Query returns the documents whose field equals value exactly.
	Query(ctx context.Context, path string, field string, value interface{}) ([]Document, error)

	// Create adds a document with a store-assigned ID and returns that ID.
	Create(ctx context.Context, path string, data map[string]interface{}) (string, error)

	// Set writes a full document at a known ID, creating or replacing it.
	Set(ctx context.Context, path string, id string, data map[string]interface{}) error

	// Merge applies a partial update to an existing document, leaving fields
	// not named in fields untouched. Returns ErrNotFound if the document
	// does not exist.
	Merge(ctx context.Context, path string, id string, fields map[string]interface{}) error

	// Batch starts an atomic multi-document write.
	Batch() Batch
}

// Unavailable is the store handle installed when initialization fails:
// every call reports ErrUnavailable so pages degrade instead of crashing.
type Unavailable struct{}

func (Unavailable) List(ctx context.Context, path string, order Order, limit int) ([]Document, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Get(ctx context.Context, path string, id string) (Document, error) {
	return Document{}, ErrUnavailable
}

func (Unavailable) Query(ctx context.Context, path string, field string, value interface{}) ([]Document, error) {
	return nil, ErrUnavailable
}

func (Unavailable) Create(ctx context.Context, path string, data map[string]interface{}) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) Set(ctx context.Context, path string, id string, data map[string]interface{}) error {
	return ErrUnavailable
}

func (Unavailable) Merge(ctx context.Context, path string, id string, fields map[string]interface{}) error {
	return ErrUnavailable
}

func (Unavailable) Batch() Batch {
	return unavailableBatch{}
}

type unavailableBatch struct{}

func (unavailableBatch) Create(path string, data map[string]interface{}) string { return "" }
func (unavailableBatch) Commit(ctx context.Context) error                       { return ErrUnavailable }
