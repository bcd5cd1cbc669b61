package combobox

import (
	"github.com/alexisbeaulieu97/tuikit/internal/ui/focus"
)

// Messages looks up localized strings by key.
type Messages interface {
	Message(key string) string
}

// Message keys used by the controller and its presentation.
const (
	MessageRequired  = "combobox.required"
	MessageClear     = "combobox.clear"
	MessageOpen      = "combobox.open"
	MessageNoResults = "combobox.no_results"
)

var defaultMessages = map[string]string{
	MessageRequired:  "Please fill out this field.",
	MessageClear:     "clear combo box",
	MessageOpen:      "open combo box",
	MessageNoResults: "No results",
}

// Option configures a Controller at construction.
type Option[T any] func(*Controller[T])

// WithCallbacks installs the owner callbacks.
func WithCallbacks[T any](cb Callbacks[T]) Option[T] {
	return func(c *Controller[T]) {
		c.callbacks = cb
	}
}

// WithFocusTracker shares a focus tracker with other widgets.
func WithFocusTracker[T any](tracker focus.Tracker) Option[T] {
	return func(c *Controller[T]) {
		if tracker != nil {
			c.tracker = tracker
		}
	}
}

// WithMessages installs the message bundle used for validation messages.
func WithMessages[T any](messages Messages) Option[T] {
	return func(c *Controller[T]) {
		c.messages = messages
	}
}

// WithIdentity overrides the random identity.
func WithIdentity[T any](id Identity) Option[T] {
	return func(c *Controller[T]) {
		c.ids = id
	}
}

// edgeDetector remembers the last observed value of a flag and reports
// transitions.
type edgeDetector struct {
	last bool
}

func (e *edgeDetector) observe(now bool) bool {
	changed := now != e.last
	e.last = now
	return changed
}

// Controller is the ComboBox interaction state machine.
type Controller[T any] struct {
	props     Props[T]
	callbacks Callbacks[T]
	tracker   focus.Tracker
	messages  Messages
	ids       Identity

	open               bool
	wasOpen            edgeDetector
	activeIndex        int
	menuHasVisualFocus bool
	ignoreBlur         bool

	validatedValue string
	lastValidity   validityReport
}

// New creates a closed controller with empty props.
func New[T any](opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		ids: NewIdentity(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracker == nil {
		c.tracker = focus.NewManager()
	}
	return c
}

// SetProps replaces the owner properties. When the result set goes from
// non-empty to empty while the menu is open, the menu closes.
func (c *Controller[T]) SetProps(p Props[T]) {
	hadResults := len(c.props.Results) > 0
	c.props = p
	if hadResults && len(p.Results) == 0 && c.open {
		c.open = false
	}
	if p.Value != c.validatedValue {
		c.validate(p.Value)
	}
	c.settle()
}

// Props returns the current owner properties.
func (c *Controller[T]) Props() Props[T] {
	return c.props
}

// SetCallbacks replaces the owner callbacks.
func (c *Controller[T]) SetCallbacks(cb Callbacks[T]) {
	c.callbacks = cb
}

// Identity returns the element ids of this instance.
func (c *Controller[T]) Identity() Identity {
	return c.ids
}

// IsOpen reports whether the dropdown is open.
func (c *Controller[T]) IsOpen() bool {
	return c.open
}

// ActiveIndex returns the highlighted result position.
func (c *Controller[T]) ActiveIndex() int {
	return c.activeIndex
}

// MenuHasVisualFocus reports whether the active row should render as
// keyboard-active rather than hover-only.
func (c *Controller[T]) MenuHasVisualFocus() bool {
	return c.menuHasVisualFocus
}

// Focused reports whether the input holds logical focus.
func (c *Controller[T]) Focused() bool {
	return c.tracker.IsFocused(c.inputRegion())
}

// Validity returns the normalized owner-supplied validity.
func (c *Controller[T]) Validity() (*bool, string) {
	return c.props.Valid.Normalize()
}

// InputFocus handles the input gaining focus.
func (c *Controller[T]) InputFocus() {
	c.tracker.Focus(c.inputRegion())
	p := c.props
	if c.callbacks.OnFocus != nil {
		c.callbacks.OnFocus(p.Value)
	}
	if p.OpenOnFocus && c.editable() {
		c.openMenu()
	}
	c.settle()
}

// InputBlur handles the input losing focus. A blur that follows a mouse-down
// on a result row is swallowed once so the input keeps logical focus.
func (c *Controller[T]) InputBlur() {
	if c.ignoreBlur {
		c.ignoreBlur = false
		return
	}
	c.tracker.Blur(c.inputRegion())
	if c.callbacks.OnBlur != nil {
		c.callbacks.OnBlur(c.props.Value)
	}
	c.validate(c.props.Value)
	c.open = false
	c.settle()
}

// Input handles text typed into the input.
func (c *Controller[T]) Input(value string) {
	if c.callbacks.OnValue != nil {
		c.callbacks.OnValue(value)
	}
	c.validate(value)
	if c.editable() {
		c.openMenu()
	}
	c.settle()
}

// KeyDown routes a key press. It returns true when the host should suppress
// the key's default action, which is the case for Up and Down, for Escape
// when it closed the menu, and for Enter or Space when they selected a
// result.
func (c *Controller[T]) KeyDown(key Key) bool {
	defer c.settle()

	p := c.props

	switch key {
	case KeyUp:
		c.menuHasVisualFocus = true
		c.moveActiveIndex(-1)
		return true
	case KeyDown:
		c.menuHasVisualFocus = true
		if !c.open && c.editable() {
			c.openMenu()
		} else if c.open {
			c.moveActiveIndex(1)
		}
		return true
	case KeyEscape:
		if c.open {
			c.open = false
			return true
		}
	case KeyEnter, KeySpace:
		if c.open && len(p.Results) > 0 {
			if c.ResultDisabled(p.Results[c.activeIndex]) {
				return false
			}
			c.selectIndex(c.activeIndex)
			return true
		}
	case KeyHome:
		c.activeIndex = 0
	case KeyEnd:
		c.activeIndex = len(p.Results) - 1
	}
	return false
}

// ToggleClick handles a click on the menu toggle.
func (c *Controller[T]) ToggleClick() {
	if !c.editable() {
		return
	}
	c.focusInput()
	c.openMenu()
	c.settle()
}

// ClearClick handles a click on the clear control.
func (c *Controller[T]) ClearClick() {
	if !c.editable() {
		return
	}
	c.focusInput()
	if c.callbacks.OnValue != nil {
		c.callbacks.OnValue("")
	}
	c.settle()
}

// ResultMouseDown arms the one-shot blur suppression.
func (c *Controller[T]) ResultMouseDown() {
	c.ignoreBlur = true
}

// ResultHover moves the highlight to index and hands visual focus back to
// the pointer.
func (c *Controller[T]) ResultHover(index int) {
	c.menuHasVisualFocus = false
	if index >= 0 && index < len(c.props.Results) {
		c.activeIndex = index
	}
	c.settle()
}

// Select picks the result at index. Disabled or out-of-range results are
// ignored.
func (c *Controller[T]) Select(index int) {
	results := c.props.Results
	if index < 0 || index >= len(results) || c.ResultDisabled(results[index]) {
		return
	}
	c.selectIndex(index)
	c.settle()
}

// PointerEnter reports the pointer entering the widget.
func (c *Controller[T]) PointerEnter() {
	if c.callbacks.OnOver != nil {
		c.callbacks.OnOver()
	}
}

// PointerLeave reports the pointer leaving the widget.
func (c *Controller[T]) PointerLeave() {
	if c.callbacks.OnOut != nil {
		c.callbacks.OnOut()
	}
}

func (c *Controller[T]) selectIndex(index int) {
	result := c.props.Results[index]
	c.focusInput()
	c.open = false
	if c.callbacks.OnResultSelect != nil {
		c.callbacks.OnResultSelect(result)
	}
	if c.callbacks.OnValue != nil {
		c.callbacks.OnValue(c.ResultValue(result))
	}
}

func (c *Controller[T]) openMenu() {
	c.activeIndex = 0
	c.open = true
	if c.callbacks.OnRequestResults != nil {
		c.callbacks.OnRequestResults()
	}
}

func (c *Controller[T]) moveActiveIndex(delta int) {
	total := len(c.props.Results)
	if total == 0 {
		c.activeIndex = 0
		return
	}
	c.activeIndex = ((c.activeIndex+delta)%total + total) % total
}

// focusInput restores focus to the input without re-running open-on-focus.
func (c *Controller[T]) focusInput() {
	region := c.inputRegion()
	if c.tracker.IsFocused(region) {
		return
	}
	c.tracker.Focus(region)
	if c.callbacks.OnFocus != nil {
		c.callbacks.OnFocus(c.props.Value)
	}
}

// settle ends every state pass: it clamps the active index into the result
// range and fires OnMenuChange once per open/closed transition.
func (c *Controller[T]) settle() {
	total := len(c.props.Results)
	switch {
	case total == 0:
		c.activeIndex = 0
	case c.activeIndex >= total:
		c.activeIndex = total - 1
	case c.activeIndex < 0:
		c.activeIndex = 0
	}

	if c.wasOpen.observe(c.open) && c.callbacks.OnMenuChange != nil {
		c.callbacks.OnMenuChange(c.open)
	}
	if c.callbacks.Invalidate != nil {
		c.callbacks.Invalidate()
	}
}

func (c *Controller[T]) editable() bool {
	return !c.props.Disabled && !c.props.ReadOnly
}

func (c *Controller[T]) inputRegion() focus.Region {
	return focus.Region(c.ids.Input())
}

func (c *Controller[T]) message(key string) string {
	if c.messages != nil {
		if msg := c.messages.Message(key); msg != "" && msg != key {
			return msg
		}
	}
	return defaultMessages[key]
}
