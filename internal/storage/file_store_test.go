package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pagardi95/ironunicorn/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	store, err := storage.NewFileStore(dir, storage.DefaultSlot)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "unicorn_stats.json"), store.Path())

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	stats := playedStats()
	require.NoError(t, store.Save(ctx, stats))
	_, err = os.Stat(store.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, stats, *loaded)

	stats.XP += 40
	require.NoError(t, store.Save(ctx, stats))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.XP, loaded.XP)

	require.NoError(t, store.Close())
}

func TestFileStore_CorruptSlotIsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir, "broken")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"xp": 12`), 0o644))

	loaded, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStore_InvalidDir(t *testing.T) {
	_, err := storage.NewFileStore("", storage.DefaultSlot)
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = storage.NewFileStore(file, storage.DefaultSlot)
	assert.Error(t, err)
}
