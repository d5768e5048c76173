package services

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/Ashish-04-codes/Portfolio/internal/models"
)

// MockDocStore is an in-memory docstore.Store for tests.
type MockDocStore struct {
	mu   sync.Mutex
	data map[string]map[string]json.RawMessage
}

func NewMockDocStore() *MockDocStore {
	return &MockDocStore{data: make(map[string]map[string]json.RawMessage)}
}

func (m *MockDocStore) GetCollection(ctx context.Context, collection string) ([]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := m.data[collection]
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]json.RawMessage, 0, len(docs))
	for _, id := range ids {
		out = append(out, docs[id])
	}
	return out, nil
}

func (m *MockDocStore) GetDocument(ctx context.Context, collection, id string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.data[collection][id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return doc, nil
}

func (m *MockDocStore) SaveDocument(ctx context.Context, collection, id string, doc any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if m.data[collection] == nil {
		m.data[collection] = make(map[string]json.RawMessage)
	}
	m.data[collection][id] = raw
	return nil
}

func (m *MockDocStore) RemoveDocument(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data[collection], id)
	return nil
}
