// Package docstore is the generic document-database collaborator the
// content services run on: schemaless JSON documents addressed by
// collection name and document id.
package docstore

import (
	"context"
	"encoding/json"
)

// Store is the generic document contract.
type Store interface {
	// GetCollection returns all documents of a collection as raw JSON.
	GetCollection(ctx context.Context, collection string) ([]json.RawMessage, error)
	// GetDocument returns one document, or models.ErrNotFound.
	GetDocument(ctx context.Context, collection, id string) (json.RawMessage, error)
	// SaveDocument creates or overwrites a document.
	SaveDocument(ctx context.Context, collection, id string, doc any) error
	// RemoveDocument deletes a document; removing a missing document is
	// not an error.
	RemoveDocument(ctx context.Context, collection, id string) error
}

// DecodeAll unmarshals a collection result into typed values, skipping
// nothing: a single malformed document fails the whole read so data
// corruption is noticed rather than silently dropped.
func DecodeAll[T any](raw []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, doc := range raw {
		var value T
		if err := json.Unmarshal(doc, &value); err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}
