package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/ibc-core/x/ibccore/store"
)

func TestOverlayPromoteAppliesWrites(t *testing.T) {
	ctx := context.Background()
	base := store.NewMemStoreService()
	overlay := store.NewOverlay(base)

	kv := overlay.OpenKVStore(ctx)
	require.NoError(t, kv.Set([]byte("a"), []byte("1")))

	v, err := base.OpenKVStore(ctx).Get([]byte("a"))
	require.NoError(t, err)
	require.Nil(t, v, "write must not be visible on the base store before Promote")

	require.NoError(t, overlay.Promote(ctx))

	v, err = base.OpenKVStore(ctx).Get([]byte("a"))
	require.NoError(t, err)
	require.Equal(t, []byte("1"), v)
}

func TestOverlayDiscardLeavesBaseUntouched(t *testing.T) {
	ctx := context.Background()
	base := store.NewMemStoreService()
	require.NoError(t, base.OpenKVStore(ctx).Set([]byte("seed"), []byte("x")))
	before := base.Clone()

	overlay := store.NewOverlay(base)
	kv := overlay.OpenKVStore(ctx)
	require.NoError(t, kv.Set([]byte("a"), []byte("1")))
	require.NoError(t, kv.Delete([]byte("seed")))
	overlay.Discard()

	require.True(t, before.Equal(base))
}

func TestOverlayReadThrough(t *testing.T) {
	ctx := context.Background()
	base := store.NewMemStoreService()
	require.NoError(t, base.OpenKVStore(ctx).Set([]byte("seed"), []byte("x")))

	overlay := store.NewOverlay(base)
	kv := overlay.OpenKVStore(ctx)

	v, err := kv.Get([]byte("seed"))
	require.NoError(t, err)
	require.Equal(t, []byte("x"), v)
}
