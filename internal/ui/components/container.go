package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/ui"
)

// Container is a box around a vertical stack of children. Card builds on it.
type Container struct {
	BaseComponent
	layout  *Stack
	border  *lipgloss.Border
	padding Spacing
	margin  Spacing
	width   int
}

// NewContainer creates a borderless container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the box. With a fixed width, children receive the
// inner width as their constraint.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if c.border != nil {
		style = style.BorderStyle(*c.border)
	}
	style = c.padding.apply(style, lipgloss.Style.Padding)
	style = c.margin.apply(style, lipgloss.Style.Margin)

	width := c.width
	if width <= 0 && ctx.Constraints.MaxWidth > 0 {
		width = ctx.Constraints.MaxWidth
	}

	childCtx := ctx
	if width > 0 {
		inner := c.InnerWidth(width, ctx.Theme)
		childCtx = ctx.WithConstraints(WithMaxWidth(inner))
		childCtx.ParentWidth = inner
		// lipgloss widths include padding but exclude border and margin.
		style = style.Width(width - style.GetHorizontalBorderSize() - style.GetHorizontalMargins())
	}

	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(childCtx)
	}
	return style.Render(content)
}

// InnerWidth returns the content width left inside outer cells.
func (c *Container) InnerWidth(outer int, theme Theme) int {
	style := c.ComputeStyle(theme)
	if c.border != nil {
		style = style.BorderStyle(*c.border)
	}
	style = c.padding.apply(style, lipgloss.Style.Padding)
	style = c.margin.apply(style, lipgloss.Style.Margin)
	inner := outer - style.GetHorizontalFrameSize()
	if inner < 0 {
		return 0
	}
	return inner
}

// InnerOffset returns the column and row where content starts relative to
// the top-left corner of the rendered box.
func (c *Container) InnerOffset(theme Theme) (x, y int) {
	style := c.ComputeStyle(theme)
	if c.border != nil {
		style = style.BorderStyle(*c.border)
	}
	style = c.padding.apply(style, lipgloss.Style.Padding)
	style = c.margin.apply(style, lipgloss.Style.Margin)
	x = style.GetMarginLeft() + style.GetBorderLeftSize() + style.GetPaddingLeft()
	y = style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()
	return x, y
}

func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = &border
	return c
}

func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithWidth fixes the outer width in cells.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the children.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}
