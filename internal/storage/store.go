package storage

import (
	"context"
	"fmt"

	"github.com/pagardi95/ironunicorn/internal/progression"

	"github.com/go-redis/redis/v8"
)

const DefaultSlot = "unicorn_stats"

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Store persists one save slot. Load returns nil stats when the slot is empty
// or can not be decoded.
type Store interface {
	Load(ctx context.Context) (*progression.UserStats, error)
	Save(ctx context.Context, stats progression.UserStats) error
	Close() error
}

type OpenParams struct {
	Backend string
	// Path is a directory for the file backend and a database file for sqlite.
	Path string
	Slot string
	// Redis must be set for the redis backend.
	Redis *redis.Client
}

func Open(ctx context.Context, params OpenParams) (Store, error) {
	if params.Slot == "" {
		params.Slot = DefaultSlot
	}

	switch params.Backend {
	case BackendFile, "":
		return NewFileStore(params.Path, params.Slot)
	case BackendSQLite:
		return NewSQLiteStore(ctx, params.Path, params.Slot)
	case BackendRedis:
		if params.Redis == nil {
			return nil, fmt.Errorf("redis backend needs a redis client")
		}
		return NewRedisStore(params.Redis, params.Slot), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", params.Backend)
	}
}
