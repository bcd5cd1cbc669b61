package gallery

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/history"
	"github.com/alexisbeaulieu97/tuikit/internal/sources"
)

// loadTimeout bounds one source load.
const loadTimeout = 10 * time.Second

// loadItemsCmd loads every item of src off the update loop.
func loadItemsCmd(ctx context.Context, src sources.Source, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, loadTimeout)
		defer cancel()

		start := time.Now()
		items, err := src.Items(ctx)
		return itemsLoadedMsg{seq: seq, items: items, err: err, duration: time.Since(start)}
	}
}

// saveHistoryCmd persists store.
func saveHistoryCmd(store *history.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return historySavedMsg{err: store.Save()}
	}
}
