package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, limit int) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "history.json"), limit)
	require.NoError(t, err)
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return s
}

func TestOpenStartsEmpty(t *testing.T) {
	t.Parallel()

	s := newStore(t, 0)
	assert.Empty(t, s.Recent("branch"))
	assert.Equal(t, DefaultLimit, s.limit)
}

func TestRecordOrdersNewestFirst(t *testing.T) {
	t.Parallel()

	s := newStore(t, 3)
	for _, v := range []string{"main", "develop", "main", "", "release", "hotfix"} {
		s.Record("branch", v)
	}

	assert.Equal(t, []string{"hotfix", "release", "main"}, s.Recent("branch"))
	entries := s.Entries("branch")
	require.Len(t, entries, 3)
	assert.Equal(t, 2, entries[2].Count)
	assert.True(t, entries[0].LastUsed.After(entries[1].LastUsed))

	assert.Empty(t, s.Recent("other"))
}

func TestRecordKeepsScopesApart(t *testing.T) {
	t.Parallel()

	s := newStore(t, 5)
	s.Record("a", "x")
	s.Record("b", "y")
	s.Clear("a")

	assert.Empty(t, s.Recent("a"))
	assert.Equal(t, []string{"y"}, s.Recent("b"))
}

func TestSaveAndReload(t *testing.T) {
	t.Parallel()

	s := newStore(t, 5)
	s.Record("branch", "main")
	s.Record("branch", "develop")
	require.NoError(t, s.Save())

	_, err := os.Stat(s.Path() + ".tmp")
	require.True(t, os.IsNotExist(err), "temporary file removed by rename")

	reopened, err := Open(s.Path(), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"develop", "main"}, reopened.Recent("branch"))
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	t.Run("corrupt file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "history.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := Open(path, 0)
		require.ErrorContains(t, err, "parse history")
	})

	t.Run("future version", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "history.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"9","scopes":{}}`), 0o644))
		_, err := Open(path, 0)
		require.ErrorContains(t, err, `unsupported version "9"`)
	})
}
