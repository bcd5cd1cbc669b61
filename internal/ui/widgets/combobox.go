// Package widgets holds the interactive bubbletea widgets. Each widget owns
// its controller and draws itself with the presentational components; owner
// notifications leave the widget as typed tea messages.
package widgets

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/combobox"
	"github.com/alexisbeaulieu97/tuikit/internal/ui"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/focus"
)

// MessageLoading is shown in place of the results while they are fetched.
const MessageLoading = "combobox.loading"

// DefaultWidth is the outer width used when none is configured.
const DefaultWidth = 40

// Option configures a ComboBox at construction.
type Option func(*options)

type options struct {
	width        int
	maxRows      int
	theme        components.Theme
	keys         KeyMap
	messages     combobox.Messages
	tracker      focus.Tracker
	staticCursor bool
}

// WithWidth sets the outer width in cells.
func WithWidth(width int) Option {
	return func(o *options) { o.width = width }
}

// WithMaxRows bounds the rows of the open menu.
func WithMaxRows(rows int) Option {
	return func(o *options) { o.maxRows = rows }
}

// WithTheme sets the theme used for drawing and hit testing.
func WithTheme(theme components.Theme) Option {
	return func(o *options) { o.theme = theme }
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(o *options) { o.keys = keys }
}

// WithMessages installs localized strings.
func WithMessages(messages combobox.Messages) Option {
	return func(o *options) { o.messages = messages }
}

// WithFocusTracker shares focus state with sibling widgets.
func WithFocusTracker(tracker focus.Tracker) Option {
	return func(o *options) { o.tracker = tracker }
}

// WithStaticCursor disables cursor blinking.
func WithStaticCursor() Option {
	return func(o *options) { o.staticCursor = true }
}

// outbox collects controller notifications during one Update. It is shared
// by pointer so the controller callbacks survive copies of the widget.
type outbox struct {
	msgs []tea.Msg
}

func (o *outbox) push(msg tea.Msg) {
	o.msgs = append(o.msgs, msg)
}

func (o *outbox) drain() tea.Cmd {
	if len(o.msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(o.msgs))
	for _, msg := range o.msgs {
		msg := msg
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	o.msgs = nil
	return tea.Sequence(cmds...)
}

// ComboBox is a text input with a menu of results the owner supplies. The
// owner keeps the value: it receives ValueMsg and answers with SetValue.
type ComboBox[T any] struct {
	id      string
	ctrl    *combobox.Controller[T]
	input   textinput.Model
	out     *outbox
	opts    options
	loading bool

	originX, originY int
	hovered          bool
	pressedRow       int

	// typed holds values reported from typing that the owner has not
	// echoed back yet, oldest first.
	typed []string
}

// maxTyped bounds typed for owners that never echo the value.
const maxTyped = 64

// NewComboBox creates a closed, unfocused combobox.
func NewComboBox[T any](id string, opts ...Option) *ComboBox[T] {
	o := options{
		width:   DefaultWidth,
		maxRows: components.DefaultListboxRows,
		theme:   components.DefaultTheme(),
		keys:    DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &ComboBox[T]{
		id:         id,
		out:        &outbox{},
		opts:       o,
		pressedRow: -1,
	}

	ctrlOpts := []combobox.Option[T]{
		combobox.WithIdentity[T](combobox.IdentityFromBase(id)),
		combobox.WithCallbacks(c.callbacks()),
	}
	if o.messages != nil {
		ctrlOpts = append(ctrlOpts, combobox.WithMessages[T](o.messages))
	}
	if o.tracker != nil {
		ctrlOpts = append(ctrlOpts, combobox.WithFocusTracker[T](o.tracker))
	}
	c.ctrl = combobox.New(ctrlOpts...)

	c.input = textinput.New()
	c.input.Prompt = ""
	if o.staticCursor {
		c.input.Cursor.SetMode(cursor.CursorStatic)
	}
	c.syncInput()
	return c
}

func (c *ComboBox[T]) callbacks() combobox.Callbacks[T] {
	id, out := c.id, c.out
	return combobox.Callbacks[T]{
		OnValue: func(value string) {
			out.push(ValueMsg{ID: id, Value: value})
		},
		OnResultSelect: func(result T) {
			out.push(ResultSelectMsg[T]{ID: id, Result: result})
		},
		OnRequestResults: func() {
			out.push(RequestResultsMsg{ID: id, Query: c.input.Value()})
		},
		OnMenuChange: func(open bool) {
			out.push(MenuChangeMsg{ID: id, Open: open})
		},
		OnFocus: func(value string) {
			out.push(FocusMsg{ID: id, Value: value})
		},
		OnBlur: func(value string) {
			out.push(BlurMsg{ID: id, Value: value})
		},
		OnOver: func() {
			out.push(OverMsg{ID: id})
		},
		OnOut: func() {
			out.push(OutMsg{ID: id})
		},
		OnValidate: func(valid *bool, message string) {
			out.push(ValidateMsg{ID: id, Valid: valid, Message: message})
		},
	}
}

// ID returns the widget id carried by every emitted message.
func (c *ComboBox[T]) ID() string {
	return c.id
}

// Controller exposes the interaction state for inspection.
func (c *ComboBox[T]) Controller() *combobox.Controller[T] {
	return c.ctrl
}

// Props returns the current owner properties.
func (c *ComboBox[T]) Props() combobox.Props[T] {
	return c.ctrl.Props()
}

// SetProps replaces the owner properties. Messages raised by the change are
// returned as a command.
func (c *ComboBox[T]) SetProps(p combobox.Props[T]) tea.Cmd {
	prev := c.ctrl.Props().Value
	c.ctrl.SetProps(p)
	if p.Value != prev {
		c.applyValue(p.Value)
	}
	return c.flush(nil)
}

// applyValue brings the input in line with a new owned value. An echo of a
// value the user typed leaves the input alone since it may already hold
// later keystrokes. Any other value replaces the input text.
func (c *ComboBox[T]) applyValue(value string) {
	for i, typed := range c.typed {
		if typed == value {
			c.typed = c.typed[i+1:]
			return
		}
	}
	c.typed = nil
	if c.input.Value() != value {
		c.input.SetValue(value)
		c.input.CursorEnd()
	}
}

// SetValue updates the owned value.
func (c *ComboBox[T]) SetValue(value string) tea.Cmd {
	p := c.ctrl.Props()
	p.Value = value
	return c.SetProps(p)
}

// SetResults replaces the results and ends the loading state.
func (c *ComboBox[T]) SetResults(results []T) tea.Cmd {
	c.loading = false
	p := c.ctrl.Props()
	p.Results = results
	return c.SetProps(p)
}

// SetValidity replaces the owner-supplied validity.
func (c *ComboBox[T]) SetValidity(valid combobox.Validity) tea.Cmd {
	p := c.ctrl.Props()
	p.Valid = valid
	return c.SetProps(p)
}

// SetLoading shows the loading row in the open menu.
func (c *ComboBox[T]) SetLoading(loading bool) {
	c.loading = loading
}

// Loading reports whether results are being fetched.
func (c *ComboBox[T]) Loading() bool {
	return c.loading
}

// SetWidth changes the outer width.
func (c *ComboBox[T]) SetWidth(width int) {
	c.opts.width = width
	c.syncInput()
}

// SetTheme changes the theme.
func (c *ComboBox[T]) SetTheme(theme components.Theme) {
	c.opts.theme = theme
	c.syncInput()
}

// SetOrigin records where the widget's top-left cell sits on screen so that
// mouse events can be mapped onto it.
func (c *ComboBox[T]) SetOrigin(x, y int) {
	c.originX, c.originY = x, y
}

// KeyMap returns the active bindings.
func (c *ComboBox[T]) KeyMap() KeyMap {
	return c.opts.keys
}

// Value returns the text currently in the input.
func (c *ComboBox[T]) Value() string {
	return c.input.Value()
}

// Focused reports whether the input holds focus.
func (c *ComboBox[T]) Focused() bool {
	return c.ctrl.Focused()
}

// Focus gives the input focus. Disabled comboboxes cannot be focused.
func (c *ComboBox[T]) Focus() tea.Cmd {
	if c.ctrl.Props().Disabled || c.ctrl.Focused() {
		return nil
	}
	c.ctrl.InputFocus()
	return c.flush(nil)
}

// Blur takes focus away from the input.
func (c *ComboBox[T]) Blur() tea.Cmd {
	if !c.ctrl.Focused() {
		return nil
	}
	c.ctrl.InputBlur()
	return c.flush(nil)
}

// Update handles key presses while focused and mouse events anywhere.
func (c *ComboBox[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !c.ctrl.Focused() {
			return nil
		}
		return c.flush(c.handleKey(msg))
	case tea.MouseMsg:
		c.handleMouse(msg)
		return c.flush(nil)
	}
	return nil
}

func (c *ComboBox[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if c.ctrl.KeyDown(c.opts.keys.Resolve(msg)) {
		return nil
	}
	p := c.ctrl.Props()
	if p.Disabled || p.ReadOnly {
		return nil
	}

	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if after := c.input.Value(); after != before {
		c.typed = append(c.typed, after)
		if len(c.typed) > maxTyped {
			c.typed = c.typed[len(c.typed)-maxTyped:]
		}
		c.ctrl.Input(after)
	}
	return cmd
}

// flush syncs the input with the controller and returns the queued messages
// followed by extra.
func (c *ComboBox[T]) flush(extra tea.Cmd) tea.Cmd {
	var focusCmd tea.Cmd
	switch focused := c.ctrl.Focused(); {
	case focused && !c.input.Focused():
		focusCmd = c.input.Focus()
	case !focused && c.input.Focused():
		c.input.Blur()
	}
	c.syncInput()
	return tea.Batch(c.out.drain(), extra, focusCmd)
}

// syncInput copies the placeholder into the text input and sizes it to the
// field. The text itself only changes through applyValue.
func (c *ComboBox[T]) syncInput() {
	c.input.Placeholder = c.ctrl.Props().Placeholder
	layout := c.field().Layout(c.context())
	c.input.Width = max(layout.ContentWidth-1, 1)
}

func (c *ComboBox[T]) context() components.RenderContext {
	ctx := components.DefaultContext().WithTheme(c.opts.theme)
	ctx.Constraints = components.WithWidth(c.opts.width)
	return ctx
}

// trailing returns the field icons: clear when there is something to clear,
// then the menu toggle.
func (c *ComboBox[T]) trailing() []components.IconName {
	p := c.ctrl.Props()
	var icons []components.IconName
	if p.Clearable && p.Value != "" && !p.Disabled && !p.ReadOnly {
		icons = append(icons, components.IconClear)
	}
	// The toggle always opens, so it keeps the expand glyph while open.
	return append(icons, components.IconExpand)
}

func (c *ComboBox[T]) field() *components.TextField {
	p := c.ctrl.Props()
	valid, _ := c.ctrl.Validity()
	return components.NewTextField().
		WithContent(c.input.View()).
		WithFocused(c.ctrl.Focused()).
		WithInvalid(valid != nil && !*valid).
		WithDisabled(p.Disabled).
		WithTrailing(c.trailing()...).
		WithWidth(c.opts.width)
}

func (c *ComboBox[T]) label() *components.Label {
	p := c.ctrl.Props()
	return components.NewLabel(p.Label).
		WithRequired(p.Required).
		WithDisabled(p.Disabled)
}

func (c *ComboBox[T]) listbox() *components.Listbox {
	rows := c.ctrl.Rows()
	options := make([]components.ListboxOption, len(rows))
	for i, row := range rows {
		options[i] = components.ListboxOption(row)
	}
	empty := c.ctrl.Message(combobox.MessageNoResults)
	if c.loading {
		empty = c.message(MessageLoading, "Loading…")
	}
	return components.NewListbox(options...).
		WithID(c.ctrl.Identity().Menu()).
		WithVisualFocus(c.ctrl.MenuHasVisualFocus()).
		WithMaxRows(c.opts.maxRows).
		WithEmptyText(empty).
		WithWidth(c.opts.width)
}

func (c *ComboBox[T]) message(key, fallback string) string {
	if c.opts.messages != nil {
		if msg := c.opts.messages.Message(key); msg != "" && msg != key {
			return msg
		}
	}
	return fallback
}

// View draws the widget with its own theme.
func (c *ComboBox[T]) View() string {
	return c.ViewWithContext(c.context())
}

// ViewWithContext draws the label, the field, and either the open menu or
// the helper line.
func (c *ComboBox[T]) ViewWithContext(ctx components.RenderContext) string {
	ctx = ctx.WithTheme(c.opts.theme)
	parts := make([]ui.Renderable, 0, 3)
	if c.ctrl.Props().Label != "" {
		parts = append(parts, c.label())
	}
	parts = append(parts, c.field())
	if c.ctrl.IsOpen() {
		parts = append(parts, c.listbox())
	} else {
		p := c.ctrl.Props()
		valid, message := c.ctrl.Validity()
		if p.HelperText != "" || message != "" {
			parts = append(parts, components.NewHelperText(p.HelperText).WithValidity(valid, message))
		}
	}

	rendered := make([]string, 0, len(parts))
	for _, part := range parts {
		rendered = append(rendered, components.Render(part, ctx))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

var _ ui.Renderable = (*ComboBox[string])(nil)
var _ components.ContextualRenderable = (*ComboBox[string])(nil)
