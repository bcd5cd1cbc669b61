// Package combobox implements the interaction controller behind the ComboBox
// widget: menu lifecycle, active-result tracking, selection, focus and blur
// suppression, and validity reporting.
//
// The controller has no rendering dependency. A presentation layer feeds it
// events (keys, pointer actions, focus changes) and reads its state back when
// drawing. All methods must be called from a single goroutine, the way a
// bubbletea Update loop calls them.
package combobox

// Props are the owner-supplied properties of a combobox. The owner replaces
// them through SetProps; the controller never mutates them.
type Props[T any] struct {
	Value       string
	Results     []T
	Disabled    bool
	ReadOnly    bool
	Required    bool
	Clearable   bool
	OpenOnFocus bool
	Label       string
	HelperText  string
	Placeholder string
	Valid       Validity

	// GetResultLabel renders a result for display. Defaults to fmt.Sprint.
	GetResultLabel func(result T) string
	// GetResultValue derives the value reported on selection. Defaults to
	// GetResultLabel, then fmt.Sprint.
	GetResultValue func(result T) string
	// GetResultSelected reports whether a result matches the current value.
	// Defaults to comparing the result label with Value.
	GetResultSelected func(result T) bool
	// IsResultDisabled marks results that cannot be selected.
	IsResultDisabled func(result T) bool
	// CustomValidator validates a non-empty value.
	CustomValidator func(value string) (bool, string)
}

// Callbacks are the owner notifications. Any of them may be nil.
type Callbacks[T any] struct {
	OnValue          func(value string)
	OnResultSelect   func(result T)
	OnRequestResults func()
	OnMenuChange     func(open bool)
	OnBlur           func(value string)
	OnFocus          func(value string)
	OnOver           func()
	OnOut            func()
	OnValidate       func(valid *bool, message string)

	// Invalidate asks the host to re-render the widget.
	Invalidate func()
}
