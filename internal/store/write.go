package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// PutAll inserts documents in order inside a single transaction and
// returns the assigned ids. Either all documents are stored or none.
// Documents are stored as JSON text; ids are UUIDv7 so they are themselves
// time-ordered.
func (s *Store) PutAll(ctx context.Context, collection string, docs []any) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("put documents: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (id, collection, body)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("put documents: %w", err)
	}
	defer stmt.Close()

	ids := make([]string, 0, len(docs))
	for i, doc := range docs {
		body, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("put documents: document %d: %w", i, err)
		}

		id := uuid.Must(uuid.NewV7()).String()
		if _, err := stmt.ExecContext(ctx, id, collection, string(body)); err != nil {
			return nil, fmt.Errorf("put documents: document %d: %w", i, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("put documents: %w", err)
	}

	return ids, nil
}

// Delete removes an entire collection and reports how many documents were
// dropped. Deleting a collection that does not exist is not an error.
func (s *Store) Delete(ctx context.Context, collection string) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ?`, collection)
	if err != nil {
		return 0, fmt.Errorf("delete collection: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete collection: %w", err)
	}
	return n, nil
}
