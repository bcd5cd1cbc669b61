package sources

import (
	"context"
	"fmt"
	"sort"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"golang.org/x/sync/errgroup"
)

// Ref details reported by GitRefs.
const (
	DetailBranch = "branch"
	DetailTag    = "tag"
)

// GitRefs lists the local branches and tags of a repository. Branches come
// first, each group sorted by name. The checked-out branch is marked current.
type GitRefs struct {
	path string
	tags bool
}

// GitOption configures a GitRefs source.
type GitOption func(*GitRefs)

// WithoutTags lists branches only.
func WithoutTags() GitOption {
	return func(g *GitRefs) { g.tags = false }
}

// NewGitRefs creates a source for the repository containing path.
func NewGitRefs(path string, opts ...GitOption) *GitRefs {
	g := &GitRefs{path: path, tags: true}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *GitRefs) Name() string {
	return "git:" + g.path
}

func (g *GitRefs) Items(ctx context.Context) ([]Item, error) {
	repo, err := git.PlainOpenWithOptions(g.path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", g.path, err)
	}

	current := ""
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		current = head.Name().Short()
	}

	var branches, tags []Item
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		iter, err := repo.Branches()
		if err != nil {
			return fmt.Errorf("list branches: %w", err)
		}
		branches, err = collectRefs(ctx, iter, func(name string) Item {
			detail := DetailBranch
			if name == current {
				detail = "current " + DetailBranch
			}
			return Item{Label: name, Detail: detail}
		})
		return err
	})
	if g.tags {
		group.Go(func() error {
			iter, err := repo.Tags()
			if err != nil {
				return fmt.Errorf("list tags: %w", err)
			}
			tags, err = collectRefs(ctx, iter, func(name string) Item {
				return Item{Label: name, Detail: DetailTag}
			})
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return append(branches, tags...), nil
}

func collectRefs(ctx context.Context, iter storer.ReferenceIter, item func(name string) Item) ([]Item, error) {
	defer iter.Close()
	var items []Item
	err := iter.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		items = append(items, item(ref.Name().Short()))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })
	return items, nil
}
