package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/pagardi95/ironunicorn/internal/progression"
	"github.com/pagardi95/ironunicorn/internal/telemetry/tracing"
	"github.com/pagardi95/ironunicorn/pkg"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS save_slots (
	slot       TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStore keeps slots as rows of a single table.
type SQLiteStore struct {
	db   *sql.DB
	slot string
}

func NewSQLiteStore(ctx context.Context, path, slot string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}
	if err := pkg.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("sqlite dir: %w", err)
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{
		db:   db,
		slot: slot,
	}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (_ *progression.UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.sqlite.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var data []byte
	err = s.db.QueryRowContext(ctx, `SELECT data FROM save_slots WHERE slot = ?`, s.slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select slot: %w", err)
	}

	stats, decodeErr := Decode(data)
	if decodeErr != nil {
		log.Warnf("ignoring sqlite save slot %s: %s", s.slot, decodeErr)
		return nil, nil
	}
	return stats, nil
}

func (s *SQLiteStore) Save(ctx context.Context, stats progression.UserStats) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.sqlite.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := Encode(stats)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO save_slots (slot, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		s.slot, data, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
