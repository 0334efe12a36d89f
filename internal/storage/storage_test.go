package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")

	s, err := Open(path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	_, ok := s.Get("neurodemon_legal_accepted")
	assert.False(t, ok)
}

func TestSetPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")

	s, err := Open(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, s.Set("neurodemon_legal_accepted", "true"))
	require.NoError(t, s.Set("neurodemon_legal_version", "1.0"))

	reopened, err := Open(path, testLogger())
	require.NoError(t, err)

	v, ok := reopened.Get("neurodemon_legal_accepted")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	v, ok = reopened.Get("neurodemon_legal_version")
	assert.True(t, ok)
	assert.Equal(t, "1.0", v)
}

func TestSetOverwritesValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")

	s, err := Open(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "old"))
	require.NoError(t, s.Set("k", "new"))

	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Equal(t, 1, s.Len())
}

func TestOpenCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := Open(path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	// The store must stay usable after discarding the bad file.
	require.NoError(t, s.Set("k", "v"))

	reopened, err := Open(path, testLogger())
	require.NoError(t, err)
	v, ok := reopened.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")

	s, err := Open(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Delete("k"))

	_, ok := s.Get("k")
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	require.NoError(t, s.Delete("missing"))

	reopened, err := Open(path, testLogger())
	require.NoError(t, err)
	_, ok = reopened.Get("k")
	assert.False(t, ok)
}

func TestKeysSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")

	s, err := Open(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, s.Set("b", "2"))
	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("c", "3"))

	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())
}

func TestSetCreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "local.json")

	s, err := Open(path, testLogger())
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))

	_, err = os.Stat(path)
	require.NoError(t, err)
}
