package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type postgresBackend struct {
	db *pgxpool.Pool
}

// NewPostgres ensures the kv_store table exists and returns a backend on it.
func NewPostgres(ctx context.Context, db *pgxpool.Pool) (Backend, error) {
	if _, err := db.Exec(ctx, createKVTable); err != nil {
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}
	return &postgresBackend{db: db}, nil
}

func (r *postgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Set upserts the raw document. The column is TEXT: parsing is the
// catalog's concern, not the database's.
func (r *postgresBackend) Set(ctx context.Context, key string, value []byte) error {
	query := `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key)
	DO UPDATE SET value = $2, updated_at = now()`
	_, err := r.db.Exec(ctx, query, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

func (r *postgresBackend) Close() error {
	r.db.Close()
	return nil
}
