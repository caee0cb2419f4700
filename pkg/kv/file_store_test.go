package kv

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "cart:dev-1", []byte(`[{"id":"a","quantity":2}]`)))
	got, err := store.Get(ctx, "cart:dev-1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a","quantity":2}]`, string(got))

	// whole-value swap on overwrite
	require.NoError(t, store.Set(ctx, "cart:dev-1", []byte(`[]`)))
	got, err = store.Get(ctx, "cart:dev-1")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	require.NoError(t, store.Delete(ctx, "cart:dev-1"))
	_, err = store.Get(ctx, "cart:dev-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing key is a no-op
	require.NoError(t, store.Delete(ctx, "cart:dev-1"))
}

func TestFileStoreSetLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart:dev-1", []byte(`[{"id":"a","quantity":2}]`)))
	require.NoError(t, store.Set(ctx, "cart:dev-1", []byte(`[]`)))

	// the rename swap leaves exactly the final file behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cart_dev-1.json", entries[0].Name())

	got, err := store.Get(ctx, "cart:dev-1")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestFileStoreKeySanitizing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a:b/c", []byte("x")))
	got, err := store.Get(ctx, "a:b/c")
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))
}
