package sources

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tuierrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

func labels(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func TestStaticReturnsCopy(t *testing.T) {
	t.Parallel()

	src := NewStatic("fruits", Item{Label: "apple"}, Item{Label: "pear"})
	items, err := src.Items(context.Background())
	require.NoError(t, err)
	items[0].Label = "changed"

	again, err := src.Items(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"apple", "pear"}, labels(again))
}

func TestStaticHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewStatic("x").Items(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadStaticFile(t *testing.T) {
	t.Parallel()

	t.Run("labels and mappings", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "items.yaml")
		content := "- apple\n- label: Banana\n  value: banana\n  detail: yellow\n- label: Cherry\n  disabled: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		src, err := LoadStaticFile(path)
		require.NoError(t, err)
		items, err := src.Items(context.Background())
		require.NoError(t, err)

		want := []Item{
			{Label: "apple"},
			{Label: "Banana", Value: "banana", Detail: "yellow"},
			{Label: "Cherry", Disabled: true},
		}
		if diff := cmp.Diff(want, items); diff != "" {
			t.Fatalf("items mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("syntax error carries line", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "items.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- apple\n- [broken\n"), 0o644))

		_, err := LoadStaticFile(path)
		var parseErr *tuierrors.ParseError
		require.ErrorAs(t, err, &parseErr)
		require.Equal(t, path, parseErr.Path)
		require.Positive(t, parseErr.Line)
	})

	t.Run("missing label", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "items.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- value: x\n"), 0o644))

		_, err := LoadStaticFile(path)
		var validationErr *tuierrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, "items[0].label", validationErr.Field)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadStaticFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestItemKeyAndString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "main", Item{Label: "main"}.Key())
	assert.Equal(t, "refs/heads/main", Item{Label: "main", Value: "refs/heads/main"}.Key())
	assert.Equal(t, "main", Item{Label: "main"}.String())
	assert.Equal(t, "v1 (tag)", Item{Label: "v1", Detail: "tag"}.String())
}

func initGitRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello repo"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Tuikit",
			Email: "tuikit@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	for _, branch := range []string{"develop", "feature/search"} {
		ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(branch), hash)
		require.NoError(t, repo.Storer.SetReference(ref))
	}
	_, err = repo.CreateTag("v1.0.0", hash, nil)
	require.NoError(t, err)

	return dir
}

func TestGitRefs(t *testing.T) {
	t.Parallel()

	dir := initGitRepo(t)

	items, err := NewGitRefs(dir).Items(context.Background())
	require.NoError(t, err)
	want := []Item{
		{Label: "develop", Detail: DetailBranch},
		{Label: "feature/search", Detail: DetailBranch},
		{Label: "master", Detail: "current " + DetailBranch},
		{Label: "v1.0.0", Detail: DetailTag},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("refs mismatch (-want +got):\n%s", diff)
	}

	// Subdirectories resolve to the enclosing repository.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	items, err = NewGitRefs(filepath.Join(dir, "sub"), WithoutTags()).Items(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"develop", "feature/search", "master"}, labels(items))
}

func TestGitRefsNotARepository(t *testing.T) {
	t.Parallel()

	_, err := NewGitRefs(t.TempDir()).Items(context.Background())
	require.ErrorIs(t, err, git.ErrRepositoryNotExists)
}

type failingSource struct{}

func (failingSource) Name() string { return "broken" }

func (failingSource) Items(context.Context) ([]Item, error) {
	return nil, errors.New("boom")
}

func TestMulti(t *testing.T) {
	t.Parallel()

	t.Run("concatenates in order", func(t *testing.T) {
		t.Parallel()
		m := NewMulti(NewStatic("a", Item{Label: "one"}), NewStatic("b", Item{Label: "two"}, Item{Label: "three"}))
		items, err := m.Items(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"one", "two", "three"}, labels(items))
		require.Equal(t, "a+b", m.Name())
	})

	t.Run("wraps failures", func(t *testing.T) {
		t.Parallel()
		_, err := NewMulti(NewStatic("a"), failingSource{}).Items(context.Background())
		var sourceErr *tuierrors.SourceError
		require.ErrorAs(t, err, &sourceErr)
		require.Equal(t, "broken", sourceErr.Source)
		require.EqualError(t, err, "source broken: boom")
	})
}

func TestRank(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Label: "feature/main-menu"},
		{Label: "develop"},
		{Label: "main"},
		{Label: "maintenance"},
		{Label: "release"},
	}

	cases := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{name: "empty query keeps all", query: "", want: []string{"feature/main-menu", "develop", "main", "maintenance", "release"}},
		{name: "prefix before substring", query: "MAIN", want: []string{"main", "maintenance", "feature/main-menu"}},
		{name: "typo within distance", query: "devlop", want: []string{"develop"}},
		{name: "transposition", query: "mian", want: []string{"main"}},
		{name: "nothing close", query: "zzzz", want: []string{}},
		{name: "limit", query: "e", limit: 2, want: []string{"feature/main-menu", "develop"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, labels(Rank(items, tc.query, tc.limit)))
		})
	}
}

func TestBoost(t *testing.T) {
	t.Parallel()

	items := []Item{{Label: "a"}, {Label: "b"}, {Label: "c", Value: "see"}, {Label: "d"}}
	got := Boost(items, []string{"d", "see", "missing"})
	assert.Equal(t, []string{"d", "c", "a", "b"}, labels(got))
	assert.Equal(t, []string{"a", "b", "c", "d"}, labels(items), "input untouched")
	assert.Equal(t, items, Boost(items, nil))
}
