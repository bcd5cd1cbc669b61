// Package gallery is the interactive demo: a Card hosting a ComboBox whose
// results come from the configured sources. The model is the combobox owner:
// it keeps the value, answers result requests and records selections.
package gallery

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/combobox"
	"github.com/alexisbeaulieu97/tuikit/internal/history"
	"github.com/alexisbeaulieu97/tuikit/internal/i18n"
	"github.com/alexisbeaulieu97/tuikit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/tuikit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/tuikit/internal/ports"
	"github.com/alexisbeaulieu97/tuikit/internal/sources"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/widgets"
)

// ComboBoxID is the id of the gallery combobox and its history scope.
const ComboBoxID = "gallery-combobox"

// DefaultCardWidth is used until the terminal size is known.
const DefaultCardWidth = 60

// Options configures the gallery.
type Options struct {
	Context context.Context
	Source  sources.Source
	History *history.Store
	Bundle  *i18n.Bundle
	Theme   components.Theme
	Logger  ports.Logger
	Events  ports.EventPublisher
	Props   combobox.Props[sources.Item]
	Width   int
	MaxRows int
	Limit   int
	Static  bool // disables cursor blinking
}

type keyMap struct {
	Quit   key.Binding
	Reload key.Binding
	Focus  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Reload: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Focus:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "focus")),
	}
}

// Model is the gallery state.
type Model struct {
	ctx     context.Context
	source  sources.Source
	history *history.Store
	bundle  *i18n.Bundle
	theme   components.Theme
	logger  ports.Logger
	events  ports.EventPublisher
	keys    keyMap

	combo   *widgets.ComboBox[sources.Item]
	spinner spinner.Model

	items    []sources.Item
	loaded   bool
	loading  bool
	loadSeq  int
	loadErr  error
	query    string
	selected *sources.Item
	hovered  bool

	fixedWidth int
	limit      int
	width      int
	height     int
}

// New creates the gallery model. The combobox starts focused.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNoOpLogger()
	}
	publisher := opts.Events
	if publisher == nil {
		publisher = events.NewPublisher(log)
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = components.DefaultTheme()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = components.TypographyStyle(theme, components.TypographyVariantCaption)

	widgetOpts := []widgets.Option{widgets.WithTheme(theme)}
	if opts.MaxRows > 0 {
		widgetOpts = append(widgetOpts, widgets.WithMaxRows(opts.MaxRows))
	}
	if opts.Bundle != nil {
		widgetOpts = append(widgetOpts, widgets.WithMessages(opts.Bundle))
	}
	if opts.Static {
		widgetOpts = append(widgetOpts, widgets.WithStaticCursor())
	}

	m := Model{
		ctx:        ctx,
		source:     opts.Source,
		history:    opts.History,
		bundle:     opts.Bundle,
		theme:      theme,
		logger:     log.With("component", "gallery", "widget", ComboBoxID),
		events:     publisher,
		keys:       defaultKeyMap(),
		combo:      widgets.NewComboBox[sources.Item](ComboBoxID, widgetOpts...),
		spinner:    s,
		fixedWidth: opts.Width,
		limit:      opts.Limit,
	}

	props := opts.Props
	props.GetResultLabel = sources.Item.String
	props.GetResultValue = sources.Item.Key
	props.IsResultDisabled = func(item sources.Item) bool { return item.Disabled }
	combo := m.combo
	props.GetResultSelected = func(item sources.Item) bool {
		return item.Key() == combo.Props().Value
	}
	if props.HelperText == "" && m.history != nil {
		props.HelperText = m.text("gallery.helper")
	}
	m.combo.SetProps(props)
	m.combo.Focus()
	m.layout()
	m.beginLoad()
	return m
}

// Init returns the first source load queued by New.
func (m Model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	return m.loadCmd()
}

// ComboBox exposes the hosted widget.
func (m Model) ComboBox() *widgets.ComboBox[sources.Item] {
	return m.combo
}

// Selected returns the last selected item.
func (m Model) Selected() (sources.Item, bool) {
	if m.selected == nil {
		return sources.Item{}, false
	}
	return *m.selected, true
}

// Items returns the loaded items.
func (m Model) Items() []sources.Item {
	return m.items
}

// LoadErr returns the error of the last load, if it failed.
func (m Model) LoadErr() error {
	return m.loadErr
}

func (m Model) text(key string) string {
	return m.bundle.Message(key)
}

func (m Model) format(key string, args map[string]any) string {
	if m.bundle == nil {
		return key
	}
	return m.bundle.Format(key, args)
}

func (m Model) publish(eventType string, fields map[string]any) {
	if err := m.events.Publish(m.ctx, ports.Event{Type: eventType, Widget: ComboBoxID, Fields: fields}); err != nil {
		m.logger.Warn(m.ctx, "event not published", "event_type", eventType, "error", err)
	}
}

func (m *Model) startLoad() tea.Cmd {
	if !m.beginLoad() {
		return nil
	}
	return m.loadCmd()
}

// beginLoad marks a new load in flight. Only results carrying its sequence
// number are applied.
func (m *Model) beginLoad() bool {
	if m.source == nil {
		return false
	}
	m.loadSeq++
	m.loading = true
	m.combo.SetLoading(true)
	m.logger.Debug(m.ctx, "loading results", "source", m.source.Name(), "seq", m.loadSeq)
	return true
}

func (m Model) loadCmd() tea.Cmd {
	return tea.Batch(loadItemsCmd(m.ctx, m.source, m.loadSeq), m.spinner.Tick)
}

// results ranks the loaded items against the current query, recent picks
// first.
func (m Model) results() []sources.Item {
	items := m.items
	if m.history != nil {
		items = sources.Boost(items, m.history.Recent(ComboBoxID))
	}
	return sources.Rank(items, m.query, m.limit)
}

// cardWidth returns the outer card width for the current terminal.
func (m Model) cardWidth() int {
	width := DefaultCardWidth
	if m.fixedWidth > 0 {
		width = m.fixedWidth
	}
	if m.width > 0 && width > m.width {
		width = m.width
	}
	return width
}

// layout sizes the combobox to the card body and records where it is drawn
// so mouse events reach it.
func (m *Model) layout() {
	ctx := m.renderContext()
	card := m.card()
	m.combo.SetWidth(card.InnerWidth(ctx))
	x, y := card.ContentOrigin(ctx)
	m.combo.SetOrigin(x, y)
}

func (m Model) renderContext() components.RenderContext {
	return components.DefaultContext().WithTheme(m.theme)
}
