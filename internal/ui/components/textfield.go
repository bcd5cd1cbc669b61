package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TextField frames a single input line. It does not edit text itself: the
// host passes the already drawn input line (for example a bubbles textinput
// view) through WithContent.
type TextField struct {
	BaseComponent
	content     string
	placeholder string
	focused     bool
	invalid     bool
	disabled    bool
	trailing    []IconName
	width       int
}

// NewTextField creates an empty field.
func NewTextField() *TextField {
	return &TextField{BaseComponent: NewBaseComponent()}
}

func (f *TextField) WithContent(content string) *TextField {
	f.content = content
	return f
}

// WithPlaceholder sets text shown when the content is empty.
func (f *TextField) WithPlaceholder(placeholder string) *TextField {
	f.placeholder = placeholder
	return f
}

func (f *TextField) WithFocused(focused bool) *TextField {
	f.focused = focused
	return f
}

func (f *TextField) WithInvalid(invalid bool) *TextField {
	f.invalid = invalid
	return f
}

func (f *TextField) WithDisabled(disabled bool) *TextField {
	f.disabled = disabled
	return f
}

// WithTrailing sets the icons drawn at the right edge, in order.
func (f *TextField) WithTrailing(icons ...IconName) *TextField {
	f.trailing = icons
	return f
}

// WithWidth fixes the outer width in cells.
func (f *TextField) WithWidth(width int) *TextField {
	f.width = width
	return f
}

// State returns the frame state. Disabled wins over invalid, which wins
// over focus.
func (f *TextField) State() InputState {
	switch {
	case f.disabled:
		return InputStateDisabled
	case f.invalid:
		return InputStateInvalid
	case f.focused:
		return InputStateFocus
	default:
		return InputStateDefault
	}
}

// AffixSpan is the half-open column range [Start, End) of a trailing icon,
// relative to the field's left edge.
type AffixSpan struct {
	Icon  IconName
	Start int
	End   int
}

// FieldLayout describes where the parts of a rendered field sit.
type FieldLayout struct {
	Width        int
	Height       int
	ContentX     int
	ContentRow   int
	ContentWidth int
	Affixes      []AffixSpan
}

// Layout computes the geometry of the field as ViewWithContext draws it.
func (f *TextField) Layout(ctx RenderContext) FieldLayout {
	style := f.frameStyle(ctx.Theme)
	width := f.width
	if width <= 0 {
		width = ctx.AvailableWidth(30)
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	affixWidth := 0
	for _, icon := range f.trailing {
		affixWidth += 1 + lipgloss.Width(ctx.Theme.Icons.Glyph(icon))
	}
	contentWidth := inner - affixWidth
	if contentWidth < 1 {
		contentWidth = 1
	}

	x := style.GetBorderLeftSize() + style.GetPaddingLeft()
	layout := FieldLayout{
		Width:        width,
		Height:       1 + style.GetVerticalFrameSize(),
		ContentX:     x,
		ContentRow:   style.GetBorderTopSize() + style.GetPaddingTop(),
		ContentWidth: contentWidth,
	}
	col := x + contentWidth
	for _, icon := range f.trailing {
		w := lipgloss.Width(ctx.Theme.Icons.Glyph(icon))
		col++
		layout.Affixes = append(layout.Affixes, AffixSpan{Icon: icon, Start: col, End: col + w})
		col += w
	}
	return layout
}

// AffixAt returns the trailing icon under column x, if any.
func (f *TextField) AffixAt(ctx RenderContext, x int) (IconName, bool) {
	for _, span := range f.Layout(ctx).Affixes {
		if x >= span.Start && x < span.End {
			return span.Icon, true
		}
	}
	return "", false
}

func (f *TextField) frameStyle(theme Theme) lipgloss.Style {
	style := InputStyle(theme, f.State())
	if f.strategy != nil {
		style = f.strategy.Apply(style, theme)
	}
	return style
}

func (f *TextField) View() string {
	return f.ViewWithContext(DefaultContext())
}

func (f *TextField) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	layout := f.Layout(ctx)

	content := f.content
	if content == "" && f.placeholder != "" {
		content = theme.Input.Placeholder.Render(f.placeholder)
	}
	line := lipgloss.NewStyle().
		Width(layout.ContentWidth).
		MaxWidth(layout.ContentWidth).
		Render(content)

	var affixes strings.Builder
	for _, icon := range f.trailing {
		affixes.WriteString(" ")
		affixes.WriteString(theme.Input.Affix.Render(theme.Icons.Glyph(icon)))
	}

	style := f.frameStyle(theme)
	style = style.Width(layout.Width - style.GetHorizontalBorderSize())
	return style.Render(line + affixes.String())
}
