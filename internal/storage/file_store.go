package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pagardi95/ironunicorn/internal/progression"
	"github.com/pagardi95/ironunicorn/internal/telemetry/tracing"
	"github.com/pagardi95/ironunicorn/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// FileStore keeps the slot as a JSON file, {dir}/{slot}.json.
type FileStore struct {
	path string
}

func NewFileStore(dir, slot string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("storage path is empty")
	}
	if err := pkg.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("storage dir: %w", err)
	}
	return &FileStore{
		path: filepath.Join(dir, slot+".json"),
	}, nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(ctx context.Context) (_ *progression.UserStats, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "storage.file.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("path", s.path))

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read slot: %w", err)
	}

	stats, decodeErr := Decode(data)
	if decodeErr != nil {
		log.Warnf("ignoring save slot %s: %s", s.path, decodeErr)
		return nil, nil
	}
	return stats, nil
}

func (s *FileStore) Save(ctx context.Context, stats progression.UserStats) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "storage.file.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := Encode(stats)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace slot: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
