package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"socialfit/internal/model"
)

// PostgresStore keeps one row per collection in a JSONB table. A save is a
// single upsert, so readers always see either the previous or the new
// document, never a mix.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the collections table if it does not exist.
// Call this on startup before serving traffic.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure collections schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, collection string, dst any) error {
	var raw []byte
	query := `SELECT document FROM collections WHERE name = $1`
	err := s.db.GetContext(ctx, &raw, query, collection)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load collection %q: %w: %w", collection, model.ErrStoreUnavailable, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode collection %q: %w", collection, err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, collection string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", collection, err)
	}

	query := `
		INSERT INTO collections (name, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = now()
	`
	if _, err := s.db.ExecContext(ctx, query, collection, raw); err != nil {
		return fmt.Errorf("save collection %q: %w: %w", collection, model.ErrStoreUnavailable, err)
	}
	return nil
}
