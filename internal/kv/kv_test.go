package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBackendContract(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	_, err := b.Get(ctx, "categories")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Set(ctx, "categories", []byte(`[{"id":"shingles"}]`)))
	got, err := b.Get(ctx, "categories")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"shingles"}]`, string(got))

	require.NoError(t, b.Set(ctx, "categories", []byte(`[]`)))
	got, err = b.Get(ctx, "categories")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	// Values are stored as written, parseable or not.
	require.NoError(t, b.Set(ctx, "brands", []byte(`{not json`)))
	got, err = b.Get(ctx, "brands")
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(got))
}

func TestMemoryBackend(t *testing.T) {
	testBackendContract(t, NewMemory())
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()

	value := []byte(`{"a":1}`)
	require.NoError(t, b.Set(ctx, "k", value))
	value[0] = 'X'

	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	got[0] = 'Y'
	again, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(again))
}

func TestBadgerBackend(t *testing.T) {
	b, err := OpenBadger("")
	require.NoError(t, err)
	defer b.Close()

	testBackendContract(t, b)
}

func TestBadgerBackendPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	b, err := OpenBadger(dir)
	require.NoError(t, err)
	require.NoError(t, b.Set(ctx, "product-stocks", []byte(`{"landmark":120}`)))
	require.NoError(t, b.Close())

	b, err = OpenBadger(dir)
	require.NoError(t, err)
	defer b.Close()

	got, err := b.Get(ctx, "product-stocks")
	require.NoError(t, err)
	assert.JSONEq(t, `{"landmark":120}`, string(got))
}

func TestPrefixed(t *testing.T) {
	ctx := context.Background()
	inner := NewMemory()
	b := Prefixed(inner, "mbs_")

	require.NoError(t, b.Set(ctx, "categories", []byte(`[]`)))

	_, err := inner.Get(ctx, "categories")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := inner.Get(ctx, "mbs_categories")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	assert.Same(t, inner, Prefixed(inner, ""))
}
