package sources

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	tuierrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

// Multi loads several sources concurrently and concatenates their items in
// source order. The first failure cancels the others.
type Multi struct {
	sources []Source
}

// NewMulti combines sources.
func NewMulti(sources ...Source) *Multi {
	return &Multi{sources: sources}
}

func (m *Multi) Name() string {
	names := make([]string, len(m.sources))
	for i, s := range m.sources {
		names[i] = s.Name()
	}
	return strings.Join(names, "+")
}

func (m *Multi) Items(ctx context.Context) ([]Item, error) {
	loaded := make([][]Item, len(m.sources))
	group, ctx := errgroup.WithContext(ctx)
	for i, source := range m.sources {
		i, source := i, source
		group.Go(func() error {
			items, err := source.Items(ctx)
			if err != nil {
				return tuierrors.NewSourceError(source.Name(), err)
			}
			loaded[i] = items
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var out []Item
	for _, items := range loaded {
		out = append(out, items...)
	}
	return out, nil
}
