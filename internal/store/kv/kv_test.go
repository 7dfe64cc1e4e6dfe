package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", []byte(`{"a":1}`)))
	got, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), got)

	// Stored value is isolated from caller mutation.
	got[0] = 'X'
	again, _, _ := m.Get(ctx, "k")
	assert.Equal(t, []byte(`{"a":1}`), again)
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	_, ok, err := f.Get(ctx, "plated:snapshot")
	require.NoError(t, err)
	assert.False(t, ok)

	payload := []byte(`{"recipes":[]}`)
	require.NoError(t, f.Set(ctx, "plated:snapshot", payload))
	got, ok, err := f.Get(ctx, "plated:snapshot")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, got)

	// Overwrite replaces, never appends.
	require.NoError(t, f.Set(ctx, "plated:snapshot", []byte(`{}`)))
	got, _, _ = f.Get(ctx, "plated:snapshot")
	assert.Equal(t, []byte(`{}`), got)
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	g, err := NewSQLite(filepath.Join(t.TempDir(), "plated.db"))
	require.NoError(t, err)
	defer func() { _ = g.Close() }()

	_, ok, err := g.Get(ctx, "snap")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, g.Set(ctx, "snap", []byte("v1")))
	require.NoError(t, g.Set(ctx, "snap", []byte("v2")))

	got, ok, err := g.Get(ctx, "snap")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v2"), got)
}
