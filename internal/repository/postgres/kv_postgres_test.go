package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakeQuerier struct {
	execSQL  []string
	execArgs [][]any
	execErr  error

	rowSQL  string
	rowArgs []any
	row     pgx.Row
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	return pgconn.NewCommandTag("INSERT 0 2"), f.execErr
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.rowSQL = sql
	f.rowArgs = args
	return f.row
}

func TestKVStore_Get(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{scan: func(dest ...any) error {
		m := dest[0].(*map[string]string)
		*m = map[string]string{"dailyOpenPrice": "340000", "priceDate": "2025-01-02"}
		return nil
	}}}
	store := NewKVStore(q)

	got, err := store.Get(context.Background(), []string{"dailyOpenPrice", "priceDate"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["dailyOpenPrice"] != "340000" || got["priceDate"] != "2025-01-02" {
		t.Fatalf("unexpected record: %v", got)
	}
	if !strings.Contains(q.rowSQL, "ANY($1)") {
		t.Fatalf("unexpected query: %s", q.rowSQL)
	}
	keys, ok := q.rowArgs[0].([]string)
	if !ok || len(keys) != 2 {
		t.Fatalf("keys must be passed as text array: %#v", q.rowArgs)
	}
}

func TestKVStore_GetError(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{scan: func(...any) error { return errors.New("conn closed") }}}

	if _, err := NewKVStore(q).Get(context.Background(), []string{"priceDate"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestKVStore_GetNoKeysSkipsQuery(t *testing.T) {
	q := &fakeQuerier{}
	got, err := NewKVStore(q).Get(context.Background(), nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("unexpected: %v %v", got, err)
	}
	if q.rowSQL != "" {
		t.Fatalf("query must not be sent")
	}
}

func TestKVStore_Set(t *testing.T) {
	q := &fakeQuerier{}
	store := NewKVStore(q)

	err := store.Set(context.Background(), map[string]string{"dailyOpenPrice": "340000", "priceDate": "2025-01-02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.execSQL) != 1 || !strings.Contains(q.execSQL[0], "ON CONFLICT (key) DO UPDATE") {
		t.Fatalf("expected single upsert, got %v", q.execSQL)
	}

	keys := q.execArgs[0][0].([]string)
	values := q.execArgs[0][1].([]string)
	got := map[string]string{}
	for i := range keys {
		got[keys[i]] = values[i]
	}
	if got["dailyOpenPrice"] != "340000" || got["priceDate"] != "2025-01-02" {
		t.Fatalf("keys and values out of sync: %v", got)
	}
}

func TestKVStore_SetError(t *testing.T) {
	q := &fakeQuerier{execErr: errors.New("read-only transaction")}

	if err := NewKVStore(q).Set(context.Background(), map[string]string{"priceDate": "2025-01-02"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestKVStore_EnsureSchema(t *testing.T) {
	q := &fakeQuerier{}
	if err := NewKVStore(q).EnsureSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.execSQL) != 1 || !strings.Contains(q.execSQL[0], "CREATE TABLE IF NOT EXISTS kv_store") {
		t.Fatalf("unexpected ddl: %v", q.execSQL)
	}
}
