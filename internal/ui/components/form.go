package components

import "github.com/charmbracelet/lipgloss"

// Label names a form control. Required controls get the theme's required
// marker; disabled labels are dimmed.
type Label struct {
	BaseComponent
	text     string
	required bool
	disabled bool
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	return &Label{BaseComponent: NewBaseComponent(), text: text}
}

func (l *Label) WithRequired(required bool) *Label {
	l.required = required
	return l
}

func (l *Label) WithDisabled(disabled bool) *Label {
	l.disabled = disabled
	return l
}

func (l *Label) View() string {
	return l.ViewWithContext(DefaultContext())
}

func (l *Label) ViewWithContext(ctx RenderContext) string {
	if l.text == "" {
		return ""
	}
	field := ctx.Theme.Field
	style := field.Label
	if l.disabled {
		style = field.LabelDisabled
	}
	out := l.ComputeStyle(ctx.Theme).Inherit(style).Render(l.text)
	if l.required {
		out += field.Required.Render(" " + ctx.Theme.Icons.Glyph(IconRequired))
	}
	return out
}

// HelperText is the line under a control. An invalid validity replaces the
// helper text with the validation message.
type HelperText struct {
	BaseComponent
	text    string
	valid   *bool
	message string
}

// NewHelperText creates a helper line.
func NewHelperText(text string) *HelperText {
	return &HelperText{BaseComponent: NewBaseComponent(), text: text}
}

// WithValidity sets the normalized validity pair.
func (h *HelperText) WithValidity(valid *bool, message string) *HelperText {
	h.valid = valid
	h.message = message
	return h
}

func (h *HelperText) View() string {
	return h.ViewWithContext(DefaultContext())
}

func (h *HelperText) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	base := h.ComputeStyle(theme)
	switch {
	case h.valid != nil && !*h.valid && h.message != "":
		return base.Inherit(theme.Field.Error).Render(theme.Icons.Glyph(IconError) + " " + h.message)
	case h.valid != nil && *h.valid && h.message != "":
		return base.Inherit(theme.Field.Valid).Render(h.message)
	case h.text != "":
		return base.Inherit(theme.Field.Helper).Render(h.text)
	default:
		return ""
	}
}

// Icon draws a themed glyph.
type Icon struct {
	BaseComponent
	name IconName
}

// NewIcon creates an icon.
func NewIcon(name IconName) *Icon {
	return &Icon{BaseComponent: NewBaseComponent(), name: name}
}

func (i *Icon) WithAppliers(appliers ...StyleFunc) *Icon {
	i.AddAppliers(appliers...)
	return i
}

func (i *Icon) Name() string {
	return string(i.name)
}

func (i *Icon) View() string {
	return i.ViewWithContext(DefaultContext())
}

func (i *Icon) ViewWithContext(ctx RenderContext) string {
	glyph := ctx.Theme.Icons.Glyph(i.name)
	return i.ComputeStyle(ctx.Theme).Render(glyph)
}

// Width returns the glyph width in cells.
func (i *Icon) Width(theme Theme) int {
	return lipgloss.Width(theme.Icons.Glyph(i.name))
}
