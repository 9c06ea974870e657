package app

import (
	"context"
	"fmt"

	"github.com/NastyaGoryachaya/btc-ticker-service/internal/config"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/infra/db"
	sqlitedb "github.com/NastyaGoryachaya/btc-ticker-service/internal/infra/sqlite"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/repository/memory"
	repopg "github.com/NastyaGoryachaya/btc-ticker-service/internal/repository/postgres"
	reposqlite "github.com/NastyaGoryachaya/btc-ticker-service/internal/repository/sqlite"
	"github.com/NastyaGoryachaya/btc-ticker-service/internal/service/dailyref"
)

// store — хранилище кэша дневной цены и его закрытие
type store struct {
	kv    dailyref.Store
	close func() error
}

func openStore(ctx context.Context, cfg config.Config) (*store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		sdb, err := sqlitedb.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLite.Path, err)
		}
		return &store{kv: reposqlite.NewKVStore(sdb.DB), close: sdb.Close}, nil

	case config.DriverPostgres:
		pool, err := db.NewPool(ctx, &cfg.Postgres)
		if err != nil {
			return nil, err
		}
		kv := repopg.NewKVStore(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &store{kv: kv, close: func() error { pool.Close(); return nil }}, nil

	case config.DriverMemory:
		return &store{kv: memory.NewKVStore(), close: func() error { return nil }}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
