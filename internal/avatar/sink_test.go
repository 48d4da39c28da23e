package avatar_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pagardi95/ironunicorn/internal/avatar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskSink_PutAlwaysWritesPNGName(t *testing.T) {
	dir := t.TempDir()
	sink, err := avatar.NewDiskSink(dir)
	require.NoError(t, err)

	for _, mime := range []string{"image/png", "image/jpeg", "image/webp", ""} {
		ref, err := sink.Put(context.Background(), 12, avatar.Image{MIMEType: mime, Data: []byte(mime + "x")})
		require.NoError(t, err)
		assert.Equal(t, avatar.ImageRef(filepath.Join(dir, "level_12.png")), ref)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "level_12.png", entries[0].Name())
}

func TestDiskSink_StoreAndLookup(t *testing.T) {
	dir := t.TempDir()
	sink, err := avatar.NewDiskSink(dir)
	require.NoError(t, err)

	_, found := sink.Lookup(40, "female")
	assert.False(t, found)

	ref, err := sink.Store(context.Background(), 40, "female", pngImage)
	require.NoError(t, err)
	assert.Equal(t, avatar.ImageRef(filepath.Join(dir, "female", "level_40.png")), ref)

	got, found := sink.Lookup(40, "female")
	require.True(t, found)
	assert.Equal(t, ref, got)

	_, found = sink.Lookup(40, "male")
	assert.False(t, found)

	// empty gender is stored as male
	ref, err = sink.Store(context.Background(), 250, "", pngImage)
	require.NoError(t, err)
	assert.Equal(t, avatar.ImageRef(filepath.Join(dir, "male", "level_100.png")), ref)
	_, found = sink.Lookup(100, "male")
	assert.True(t, found)
}

func TestDiskSink_RejectsEmptyImage(t *testing.T) {
	dir := t.TempDir()
	sink, err := avatar.NewDiskSink(dir)
	require.NoError(t, err)

	_, err = sink.Store(context.Background(), 3, "male", avatar.Image{MIMEType: "image/png"})
	assert.ErrorIs(t, err, avatar.ErrNoImage)
	_, found := sink.Lookup(3, "male")
	assert.False(t, found)

	// an empty file left behind is not an asset
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "male"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "male", "level_3.png"), nil, 0o644))
	_, found = sink.Lookup(3, "male")
	assert.False(t, found)
}
