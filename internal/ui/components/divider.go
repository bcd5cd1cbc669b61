package components

import "strings"

// Divider draws a horizontal rule.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// HorizontalDivider creates a divider filling the available width.
func HorizontalDivider() *Divider {
	d := &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
	d.SetAppliers(Foreground(PaletteNeutral))
	return d
}

func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.AvailableWidth(40)
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}

// WithChar replaces the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth fixes the rule width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}
