package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"smartdo/internal/model"
)

var _ model.KV = (*Store)(nil)

// Store is a KV driver backed by a single postgres table.
type Store struct {
	db *Connection
}

func NewStore(db *Connection) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM kv_entries WHERE key = $1`

	var value string
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", err
	}

	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv_entries (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	_, err := s.db.Exec(ctx, query, key, value)
	return err
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_entries WHERE key = $1`

	_, err := s.db.Exec(ctx, query, key)
	return err
}
