package gallery

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tuikit/internal/history"
	"github.com/alexisbeaulieu97/tuikit/internal/i18n"
	"github.com/alexisbeaulieu97/tuikit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/tuikit/internal/ports"
	"github.com/alexisbeaulieu97/tuikit/internal/sources"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func plain(view string) string {
	return ansiPattern.ReplaceAllString(view, "")
}

// drive feeds msgs into m, then every message their commands produce, until
// nothing is left. It returns the final model and every message seen.
func drive(t *testing.T, m Model, msgs ...tea.Msg) (Model, []tea.Msg) {
	t.Helper()
	var seen []tea.Msg
	for len(msgs) > 0 {
		msg := msgs[0]
		msgs = msgs[1:]
		seen = append(seen, msg)
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}
		next, cmd := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
		msgs = append(msgs, expand(cmd)...)
	}
	return m, seen
}

func start(t *testing.T, m Model) Model {
	t.Helper()
	return Replay(m)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var fruit = []sources.Item{
	{Label: "Apple"},
	{Label: "Banana"},
	{Label: "Blueberry"},
	{Label: "Cherry"},
	{Label: "Durian", Disabled: true},
}

type failingSource struct{ err error }

func (f failingSource) Name() string { return "broken" }

func (f failingSource) Items(context.Context) ([]sources.Item, error) {
	return nil, f.err
}

func newModel(t *testing.T, src sources.Source, store *history.Store) Model {
	t.Helper()
	catalog, err := i18n.Load()
	require.NoError(t, err)
	return New(Options{
		Source:  src,
		History: store,
		Bundle:  catalog.Bundle("en"),
		Static:  true,
	})
}

func newStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "history.json"), 0)
	require.NoError(t, err)
	return store
}

func labels(items []sources.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func TestInitLoadsItems(t *testing.T) {
	t.Parallel()

	m := newModel(t, sources.NewStatic("fruit", fruit...), nil)
	assert.True(t, m.ComboBox().Focused())

	m = start(t, m)
	assert.Equal(t, fruit, m.Items())
	assert.False(t, m.loading)
	assert.False(t, m.ComboBox().Loading())
	assert.NoError(t, m.LoadErr())
	assert.Contains(t, plain(m.View()), "Nothing selected yet")
}

func TestInitReturnsLoadForCurrentSequence(t *testing.T) {
	t.Parallel()

	m := newModel(t, sources.NewStatic("fruit", fruit...), nil)
	require.True(t, m.loading)
	require.True(t, m.ComboBox().Loading())
	require.Equal(t, 1, m.loadSeq)

	var loaded []itemsLoadedMsg
	for _, msg := range expand(m.Init()) {
		if msg, ok := msg.(itemsLoadedMsg); ok {
			loaded = append(loaded, msg)
		}
	}
	require.Len(t, loaded, 1)
	assert.Equal(t, m.loadSeq, loaded[0].seq)
	assert.Equal(t, 1, m.loadSeq, "Init leaves the model untouched")

	m, _ = drive(t, m, loaded[0])
	assert.Equal(t, fruit, m.Items())
	assert.False(t, m.loading)
}

func TestInitWithoutSourceLoadsNothing(t *testing.T) {
	t.Parallel()

	m := newModel(t, nil, nil)
	assert.False(t, m.loading)
	assert.Nil(t, m.Init())
}

func TestTypingFiltersResults(t *testing.T) {
	t.Parallel()

	m := start(t, newModel(t, sources.NewStatic("fruit", fruit...), nil))
	m, _ = drive(t, m, runes("b"))

	require.True(t, m.ComboBox().Controller().IsOpen())
	assert.Equal(t, "b", m.ComboBox().Props().Value)
	assert.Equal(t, []string{"Banana", "Blueberry"}, labels(m.ComboBox().Props().Results))
	assert.Contains(t, plain(m.View()), "menu open")
}

func TestSelectingRecordsHistory(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	m := start(t, newModel(t, sources.NewStatic("fruit", fruit...), store))
	m, _ = drive(t, m, runes("b"))
	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Blueberry", selected.Label)
	assert.Equal(t, "Blueberry", m.ComboBox().Props().Value)
	assert.False(t, m.ComboBox().Controller().IsOpen())
	assert.Contains(t, plain(m.View()), "Selected: Blueberry")
	assert.Equal(t, []string{"Blueberry"}, store.Recent(ComboBoxID))

	reloaded, err := history.Open(store.Path(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Blueberry"}, reloaded.Recent(ComboBoxID))
}

func TestRecentPicksComeFirst(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	store.Record(ComboBoxID, "Cherry")
	m := start(t, newModel(t, sources.NewStatic("fruit", fruit...), store))

	// Opening with an empty query lists everything.
	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.True(t, m.ComboBox().Controller().IsOpen())
	assert.Equal(t, []string{"Cherry", "Apple", "Banana", "Blueberry", "Durian"},
		labels(m.ComboBox().Props().Results))
}

func TestDisabledItemsCannotBeSelected(t *testing.T) {
	t.Parallel()

	m := start(t, newModel(t, sources.NewStatic("fruit", fruit...), nil))
	m, _ = drive(t, m, runes("dur"), tea.KeyMsg{Type: tea.KeyEnter})

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestLoadFailureShowsAlert(t *testing.T) {
	t.Parallel()

	m := start(t, newModel(t, failingSource{err: errors.New("permission denied")}, nil))
	require.EqualError(t, m.LoadErr(), "permission denied")
	assert.Empty(t, m.Items())

	view := plain(m.View())
	assert.Contains(t, view, "Could not load results")
	assert.Contains(t, view, "permission denied")
}

func TestStaleLoadIsIgnored(t *testing.T) {
	t.Parallel()

	m := start(t, newModel(t, sources.NewStatic("fruit", fruit...), nil))
	m, _ = drive(t, m, itemsLoadedMsg{seq: m.loadSeq - 1, items: []sources.Item{{Label: "Stale"}}})
	assert.Equal(t, fruit, m.Items())
}

func TestReloadKeyStartsLoad(t *testing.T) {
	t.Parallel()

	m := start(t, newModel(t, sources.NewStatic("fruit", fruit...), nil))
	seq := m.loadSeq

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.True(t, m.ComboBox().Loading())
	assert.Equal(t, seq+1, m.loadSeq)
	assert.Contains(t, plain(m.View()), "Loading")

	m, _ = drive(t, m, expand(cmd)...)
	assert.False(t, m.loading)
	assert.Equal(t, fruit, m.Items())
}

func TestTabTogglesFocus(t *testing.T) {
	t.Parallel()

	m := start(t, newModel(t, sources.NewStatic("fruit", fruit...), nil))
	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.ComboBox().Focused())

	// Keys are ignored while blurred.
	m, _ = drive(t, m, runes("a"))
	assert.Empty(t, m.ComboBox().Props().Value)

	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.ComboBox().Focused())
}

func TestCtrlCQuits(t *testing.T) {
	t.Parallel()

	m := newModel(t, sources.NewStatic("fruit", fruit...), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMouseReachesComboBoxInsideCard(t *testing.T) {
	t.Parallel()

	m := start(t, newModel(t, sources.NewStatic("fruit", fruit...), nil))
	m, _ = drive(t, m, tea.WindowSizeMsg{Width: 50, Height: 30}, tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, m.ComboBox().Focused())

	x, y := m.card().ContentOrigin(m.renderContext())
	require.Positive(t, y)

	m, seen := drive(t, m, tea.MouseMsg{X: x + 1, Y: y + 1, Action: tea.MouseActionMotion})
	assert.True(t, m.hovered)
	assert.NotEmpty(t, seen)

	m, _ = drive(t, m, tea.MouseMsg{X: x + 1, Y: y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.ComboBox().Focused())

	m, _ = drive(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	assert.False(t, m.hovered)
}

func TestCardFollowsWindowWidth(t *testing.T) {
	t.Parallel()

	m := newModel(t, sources.NewStatic("fruit", fruit...), nil)
	assert.Equal(t, DefaultCardWidth, m.cardWidth())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = next.(Model)
	assert.Equal(t, 40, m.cardWidth())
	assert.LessOrEqual(t, lipgloss.Width(m.View()), 40)
}

func TestReplayAppliesInputs(t *testing.T) {
	t.Parallel()

	m := newModel(t, sources.NewStatic("fruit", fruit...), nil)
	m = Replay(m, runes("ch"), tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyCtrlC}, runes("x"))

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Cherry", selected.Label)
	// Input after quit is not applied.
	assert.Equal(t, "Cherry", m.ComboBox().Props().Value)
}

func TestWidgetEventsArePublished(t *testing.T) {
	t.Parallel()

	publisher := events.NewPublisher(nil)
	var seen []string
	var selected ports.Event
	for _, eventType := range []string{ports.EventResultsLoaded, ports.EventMenuOpened, ports.EventMenuClosed, ports.EventResultSelected} {
		publisher.Subscribe(eventType, func(_ context.Context, event ports.Event) error {
			seen = append(seen, event.Type)
			if event.Type == ports.EventResultSelected {
				selected = event
			}
			return nil
		})
	}

	catalog, err := i18n.Load()
	require.NoError(t, err)
	m := New(Options{
		Source: sources.NewStatic("fruit", fruit...),
		Bundle: catalog.Bundle("en"),
		Events: publisher,
		Static: true,
	})
	Replay(m, runes("app"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{
		ports.EventResultsLoaded,
		ports.EventMenuOpened,
		ports.EventResultSelected,
		ports.EventMenuClosed,
	}, seen)
	assert.Equal(t, ComboBoxID, selected.Widget)
	assert.Equal(t, "Apple", selected.Fields["value"])
}
