// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStateFile(t *testing.T, dir string) *os.File {
	t.Helper()

	f, err := os.OpenFile(filepath.Join(dir, ".fastdl"), os.O_RDWR|os.O_CREATE, 0o644)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func TestStoreSetAndGet(t *testing.T) {
	t.Parallel()

	f := openStateFile(t, t.TempDir())
	store := NewStore(f)

	_, ok := store.TimeOf("maps/town.nav")
	assert.False(t, ok)

	require.NoError(t, store.SetTime("maps/town.nav", 0x68b1c2d3))

	got, ok := store.TimeOf("maps/town.nav")
	require.True(t, ok)
	assert.Equal(t, uint64(0x68b1c2d3), got)
	assert.Equal(t, 1, store.Len())
}

func TestStoreReload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	f := openStateFile(t, dir)
	store := NewStore(f)
	require.NoError(t, store.SetTime("maps/town.nav", 0x11))
	require.NoError(t, store.SetTime("addons/core.pbo", 0x22))
	require.NoError(t, f.Close())

	f2 := openStateFile(t, dir)
	reloaded := NewStore(f2)
	require.NoError(t, reloaded.Load())

	assert.Equal(t, 2, reloaded.Len())

	got, ok := reloaded.TimeOf("maps/town.nav")
	require.True(t, ok)
	assert.Equal(t, uint64(0x11), got)

	got, ok = reloaded.TimeOf("addons/core.pbo")
	require.True(t, ok)
	assert.Equal(t, uint64(0x22), got)
}

func TestStoreRewriteInPlace(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := openStateFile(t, dir)
	store := NewStore(f)

	require.NoError(t, store.SetTime("maps/town.nav", 0x11))
	require.NoError(t, store.SetTime("addons/core.pbo", 0x22))

	before, err := os.ReadFile(f.Name())
	require.NoError(t, err)

	require.NoError(t, store.SetTime("maps/town.nav", 0x33))

	after, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Len(t, after, len(before))

	f2 := openStateFile(t, dir)
	reloaded := NewStore(f2)
	require.NoError(t, reloaded.Load())

	got, ok := reloaded.TimeOf("maps/town.nav")
	require.True(t, ok)
	assert.Equal(t, uint64(0x33), got)

	got, ok = reloaded.TimeOf("addons/core.pbo")
	require.True(t, ok)
	assert.Equal(t, uint64(0x22), got)
}

func TestStoreRewriteAppendedEntrySameRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := openStateFile(t, dir)
	store := NewStore(f)

	require.NoError(t, store.SetTime("a.pbo", 0x01))
	require.NoError(t, store.SetTime("b.pbo", 0x02))
	require.NoError(t, store.SetTime("b.pbo", 0x03))

	f2 := openStateFile(t, dir)
	reloaded := NewStore(f2)
	require.NoError(t, reloaded.Load())

	got, ok := reloaded.TimeOf("a.pbo")
	require.True(t, ok)
	assert.Equal(t, uint64(0x01), got)

	got, ok = reloaded.TimeOf("b.pbo")
	require.True(t, ok)
	assert.Equal(t, uint64(0x03), got)
}

func TestStoreLoadSkipsBlankLines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".fastdl"),
		[]byte("00000011,a.pbo\n\n00000022,b.pbo\n"),
		0o644,
	))

	f := openStateFile(t, dir)
	store := NewStore(f)
	require.NoError(t, store.Load())
	assert.Equal(t, 2, store.Len())
}

func TestStoreLoadLastLineWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".fastdl"),
		[]byte("00000011,a.pbo\n00000022,a.pbo"),
		0o644,
	))

	f := openStateFile(t, dir)
	store := NewStore(f)
	require.NoError(t, store.Load())

	got, ok := store.TimeOf("a.pbo")
	require.True(t, ok)
	assert.Equal(t, uint64(0x22), got)
	assert.Equal(t, 1, store.Len())
}

func TestStoreLoadMalformed(t *testing.T) {
	t.Parallel()

	tests := []string{
		"no-comma-here\n",
		"zzzz,a.pbo\n",
	}
	for _, content := range tests {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".fastdl"), []byte(content), 0o644))

		f := openStateFile(t, dir)
		store := NewStore(f)

		err := store.Load()
		assert.ErrorIs(t, err, ErrMalformedEntry, "content %q", content)
	}
}
