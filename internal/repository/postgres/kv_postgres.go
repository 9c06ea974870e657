package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier — то, что нужно от *pgxpool.Pool
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// KVStore — key-value хранилище в таблице kv_store
type KVStore struct {
	db querier
}

// NewKVStore - Создаёт хранилище на основе пула соединений.
func NewKVStore(db querier) *KVStore {
	return &KVStore{db: db}
}

// EnsureSchema - Создаёт таблицу, если её ещё нет.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	query := `
        CREATE TABLE IF NOT EXISTS kv_store (
            key        TEXT PRIMARY KEY,
            value      TEXT NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )
    `
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure kv_store: %w", err)
	}
	return nil
}

// Get - Значения по ключам одним запросом; отсутствующих ключей в результате нет.
func (s *KVStore) Get(ctx context.Context, keys []string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	query := `
        SELECT COALESCE(jsonb_object_agg(key, value), '{}'::jsonb)
        FROM kv_store
        WHERE key = ANY($1)
    `
	if err := s.db.QueryRow(ctx, query, keys).Scan(&out); err != nil {
		return nil, fmt.Errorf("kv get: %w", err)
	}
	return out, nil
}

// Set - Upsert всех ключей одним запросом, запись атомарна.
func (s *KVStore) Set(ctx context.Context, record map[string]string) error {
	if len(record) == 0 {
		return nil
	}
	keys := make([]string, 0, len(record))
	values := make([]string, 0, len(record))
	for k, v := range record {
		keys = append(keys, k)
		values = append(values, v)
	}

	query := `
        INSERT INTO kv_store (key, value, updated_at)
        SELECT k, v, now() FROM unnest($1::text[], $2::text[]) AS t(k, v)
        ON CONFLICT (key) DO UPDATE
        SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
    `
	if _, err := s.db.Exec(ctx, query, keys, values); err != nil {
		return fmt.Errorf("kv set: %w", err)
	}
	return nil
}
