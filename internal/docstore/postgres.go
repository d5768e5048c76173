package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Ashish-04-codes/Portfolio/internal/database"
	"github.com/Ashish-04-codes/Portfolio/internal/models"
	"github.com/jackc/pgx/v5"
)

// Postgres stores documents in a single jsonb table.
type Postgres struct {
	db *database.DB
}

// NewPostgres creates a Postgres-backed document store.
func NewPostgres(db *database.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) GetCollection(ctx context.Context, collection string) ([]json.RawMessage, error) {
	query := `SELECT data FROM documents WHERE collection = $1`

	rows, err := s.db.Pool.Query(ctx, query, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	return docs, nil
}

func (s *Postgres) GetDocument(ctx context.Context, collection, id string) (json.RawMessage, error) {
	query := `SELECT data FROM documents WHERE collection = $1 AND id = $2`

	var data []byte
	err := s.db.Pool.QueryRow(ctx, query, collection, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s/%s: %w", collection, id, err)
	}

	return json.RawMessage(data), nil
}

func (s *Postgres) SaveDocument(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s/%s: %w", collection, id, err)
	}

	query := `
		INSERT INTO documents (collection, id, data, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (collection, id) DO UPDATE SET data = $3, updated_at = now()
	`

	if _, err := s.db.Pool.Exec(ctx, query, collection, id, data); err != nil {
		return fmt.Errorf("failed to write document %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Postgres) RemoveDocument(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	if _, err := s.db.Pool.Exec(ctx, query, collection, id); err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}
	return nil
}
