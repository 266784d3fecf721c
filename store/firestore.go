package store

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore backs the Store interface with a Cloud Firestore client.
type Firestore struct {
	client *firestore.Client
}

func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// collection resolves a path like "courses/<id>/lessons" to a collection
// reference by walking alternating collection/document segments.
func (s *Firestore) collection(path string) *firestore.CollectionRef {
	parts := strings.Split(path, "/")
	col := s.client.Collection(parts[0])
	for i := 1; i+1 < len(parts); i += 2 {
		col = col.Doc(parts[i]).Collection(parts[i+1])
	}
	return col
}

func (s *Firestore) List(ctx context.Context, path string, order Order, limit int) ([]Document, error) {
	dir := firestore.Asc
	if order.Desc {
		dir = firestore.Desc
	}
	q := s.collection(path).OrderBy(order.Field, dir)
	if limit > 0 {
		q = q.Limit(limit)
	}
	return collect(q.Documents(ctx))
}

func (s *Firestore) Get(ctx context.Context, path string, id string) (Document, error) {
	snap, err := s.collection(path).Doc(id).Get(ctx)
	if err != nil {
		return Document{}, mapError(err)
	}
	return Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *Firestore) Query(ctx context.Context, path string, field string, value interface{}) ([]Document, error) {
	return collect(s.collection(path).Where(field, "==", value).Documents(ctx))
}

func (s *Firestore) Create(ctx context.Context, path string, data map[string]interface{}) (string, error) {
	ref, _, err := s.collection(path).Add(ctx, resolveSentinels(data))
	if err != nil {
		return "", mapError(err)
	}
	return ref.ID, nil
}

func (s *Firestore) Set(ctx context.Context, path string, id string, data map[string]interface{}) error {
	_, err := s.collection(path).Doc(id).Set(ctx, resolveSentinels(data))
	return mapError(err)
}

func (s *Firestore) Merge(ctx context.Context, path string, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range resolveSentinels(fields) {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	// Update, unlike Set-with-merge, fails on a missing document.
	_, err := s.collection(path).Doc(id).Update(ctx, updates)
	return mapError(err)
}

func (s *Firestore) Batch() Batch {
	return &firestoreBatch{store: s, batch: s.client.Batch()}
}

type firestoreBatch struct {
	store *Firestore
	batch *firestore.WriteBatch
}

func (b *firestoreBatch) Create(path string, data map[string]interface{}) string {
	ref := b.store.collection(path).NewDoc()
	b.batch.Set(ref, resolveSentinels(data))
	return ref.ID
}

func (b *firestoreBatch) Commit(ctx context.Context) error {
	_, err := b.batch.Commit(ctx)
	return mapError(err)
}

func collect(iter *firestore.DocumentIterator) ([]Document, error) {
	defer iter.Stop()
	docs := []Document{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
	return docs, nil
}

// resolveSentinels swaps the package's ServerTimestamp marker for the
// Firestore one so callers never import the driver directly.
func resolveSentinels(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		if _, ok := v.(serverTimestamp); ok {
			out[k] = firestore.ServerTimestamp
			continue
		}
		out[k] = v
	}
	return out
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrUnavailable
	}
	switch status.Code(err) {
	case codes.NotFound:
		return ErrNotFound
	case codes.PermissionDenied:
		return ErrPermissionDenied
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return ErrUnavailable
	}
	return err
}
