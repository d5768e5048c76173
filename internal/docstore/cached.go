package docstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Cached is a read-through wrapper over a Store. Whole collections are
// cached (public pages read full collections); any write invalidates
// the touched collection. Single-document reads bypass the cache; they
// are rare and always want fresh data in the admin UI.
type Cached struct {
	inner  Store
	cache  *ristretto.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCached creates the caching wrapper.
func NewCached(inner Store, maxSizeMB int, ttl time.Duration, logger *slog.Logger) (*Cached, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     int64(maxSizeMB) * 1024 * 1024,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("document cache initialized",
		slog.Int("max_size_mb", maxSizeMB),
		slog.Duration("ttl", ttl))

	return &Cached{inner: inner, cache: cache, ttl: ttl, logger: logger}, nil
}

func (c *Cached) GetCollection(ctx context.Context, collection string) ([]json.RawMessage, error) {
	if value, found := c.cache.Get(collection); found {
		if docs, ok := value.([]json.RawMessage); ok {
			return docs, nil
		}
	}

	docs, err := c.inner.GetCollection(ctx, collection)
	if err != nil {
		return nil, err
	}

	cost := int64(0)
	for _, doc := range docs {
		cost += int64(len(doc))
	}
	c.cache.SetWithTTL(collection, docs, cost, c.ttl)

	return docs, nil
}

func (c *Cached) GetDocument(ctx context.Context, collection, id string) (json.RawMessage, error) {
	return c.inner.GetDocument(ctx, collection, id)
}

func (c *Cached) SaveDocument(ctx context.Context, collection, id string, doc any) error {
	c.cache.Del(collection)
	return c.inner.SaveDocument(ctx, collection, id, doc)
}

func (c *Cached) RemoveDocument(ctx context.Context, collection, id string) error {
	c.cache.Del(collection)
	return c.inner.RemoveDocument(ctx, collection, id)
}
