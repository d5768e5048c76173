// Package kvstore provides the shared key-value store that backs the
// security and activity-log state. The store is the single source of
// truth: services re-read it on every operation instead of caching in
// memory, so concurrent writers (other processes sharing a Redis
// backend) are tolerated with last-write-wins semantics.
package kvstore

import "errors"

// ErrNotFound is returned by GetItem when the key has no value.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is a minimal string key-value contract.
type Store interface {
	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
	Clear() error
}
