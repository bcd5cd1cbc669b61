package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(n, active int) []ListboxOption {
	opts := make([]ListboxOption, n)
	for i := range opts {
		opts[i] = ListboxOption{Label: string(rune('a' + i)), Active: i == active}
	}
	return opts
}

func TestListboxWindowFollowsActive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		n, active  int
		rows       int
		start, end int
	}{
		{name: "fits", n: 3, active: 2, rows: 6, start: 0, end: 3},
		{name: "active in first page", n: 10, active: 2, rows: 4, start: 0, end: 4},
		{name: "active past first page", n: 10, active: 7, rows: 4, start: 4, end: 8},
		{name: "last option", n: 10, active: 9, rows: 4, start: 6, end: 10},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			start, end := NewListbox(options(tc.n, tc.active)...).WithMaxRows(tc.rows).Window()
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}

func TestListboxOptionAt(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	lb := NewListbox(options(10, 7)...).WithMaxRows(4)

	_, ok := lb.OptionAt(ctx, 0)
	require.False(t, ok, "top border")

	idx, ok := lb.OptionAt(ctx, 1)
	require.True(t, ok)
	require.Equal(t, 4, idx)

	idx, ok = lb.OptionAt(ctx, 4)
	require.True(t, ok)
	require.Equal(t, 7, idx)

	_, ok = lb.OptionAt(ctx, 5)
	require.False(t, ok, "bottom border")
}

func TestListboxRows(t *testing.T) {
	t.Parallel()

	lb := NewListbox(
		ListboxOption{Label: "abcdefghijkl", Active: true},
		ListboxOption{Label: "main", Selected: true},
	).WithWidth(12).WithVisualFocus(true)

	lines := plainLines(lb.View())
	require.Len(t, lines, 4)
	assert.Equal(t, "│   abcde… │", lines[1])
	assert.Equal(t, "│ ✓ main   │", lines[2])
}

func TestListboxEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewListbox().View())

	out := plain(NewListbox().WithEmptyText("No results").WithWidth(20).View())
	assert.Contains(t, out, "No results")
}
