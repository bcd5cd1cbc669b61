package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/ui"
)

// Card is a bordered presentational container with optional header, media,
// body, action row and footer sections, drawn top to bottom in that order
// with one blank line between sections.
type Card struct {
	BaseComponent
	title         string
	subtitle      string
	media         ui.Renderable
	body          []ui.Renderable
	actionButtons []*Button
	actionIcons   []IconName
	footer        ui.Renderable
	width         int
}

// NewCard creates a card whose body holds children.
func NewCard(children ...ui.Renderable) *Card {
	c := &Card{
		BaseComponent: NewBaseComponent(),
		body:          children,
	}
	c.SetAppliers(CardBaseStyle()...)
	return c
}

func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

func (c *Card) WithSubtitle(subtitle string) *Card {
	c.subtitle = subtitle
	return c
}

// WithMedia sets a banner drawn between the header and the body.
func (c *Card) WithMedia(media ui.Renderable) *Card {
	c.media = media
	return c
}

// WithActionButtons sets the buttons drawn on the left of the action row.
func (c *Card) WithActionButtons(buttons ...*Button) *Card {
	c.actionButtons = buttons
	return c
}

// WithActionIcons sets the icons drawn on the right of the action row.
func (c *Card) WithActionIcons(icons ...IconName) *Card {
	c.actionIcons = icons
	return c
}

// WithFooter sets content drawn under a divider at the bottom.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithWidth fixes the outer width in cells.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Add appends body children.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.body = append(c.body, children...)
	return c
}

func (c *Card) Title() string {
	return c.title
}

func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Card) ViewWithContext(ctx RenderContext) string {
	head, body, tail := c.sections()
	children := make([]ui.Renderable, 0, len(head)+len(tail)+1)
	children = append(children, head...)
	if body != nil {
		children = append(children, body)
	}
	children = append(children, tail...)
	return c.frame(children).ViewWithContext(ctx)
}

// ContentOrigin returns the column and row, relative to the card's top-left
// cell, where the first body child is drawn. Hosts use it to map pointer
// coordinates onto an interactive body child.
func (c *Card) ContentOrigin(ctx RenderContext) (x, y int) {
	head, _, _ := c.sections()
	box := c.frame(nil)
	x, y = box.InnerOffset(ctx.Theme)

	inner := ctx
	if width := c.outerWidth(ctx); width > 0 {
		w := box.InnerWidth(width, ctx.Theme)
		inner = ctx.WithConstraints(WithMaxWidth(w))
		inner.ParentWidth = w
	}
	for _, section := range head {
		y += lipgloss.Height(Render(section, inner)) + cardSectionGap
	}
	return x, y
}

// InnerWidth returns the width body children are laid out in, or 0 when
// neither the card nor ctx fixes a width.
func (c *Card) InnerWidth(ctx RenderContext) int {
	width := c.outerWidth(ctx)
	if width <= 0 {
		return 0
	}
	return c.frame(nil).InnerWidth(width, ctx.Theme)
}

const cardSectionGap = 1

func (c *Card) outerWidth(ctx RenderContext) int {
	if c.width > 0 {
		return c.width
	}
	if ctx.Constraints.MaxWidth > 0 {
		return ctx.Constraints.MaxWidth
	}
	return 0
}

func (c *Card) frame(children []ui.Renderable) *Container {
	box := NewContainer(children...).
		WithGap(cardSectionGap).
		WithWidth(c.width)
	box.SetStrategy(c.strategy)
	box.SetStyle(c.style)
	return box
}

// sections splits the card into the parts above the body, the body itself
// and the parts below it.
func (c *Card) sections() (head []ui.Renderable, body ui.Renderable, tail []ui.Renderable) {
	if c.title != "" || c.subtitle != "" {
		header := VStack()
		if c.title != "" {
			header.Add(TitleText(c.title))
		}
		if c.subtitle != "" {
			header.Add(SubtitleText(c.subtitle))
		}
		head = append(head, header)
	}
	if c.media != nil {
		head = append(head, c.media)
	}
	if len(c.body) > 0 {
		body = VStack(c.body...)
	}
	if len(c.actionButtons) > 0 || len(c.actionIcons) > 0 {
		tail = append(tail, &actionRow{buttons: c.actionButtons, icons: c.actionIcons})
	}
	if c.footer != nil {
		tail = append(tail, VStack(HorizontalDivider(), c.footer))
	}
	return head, body, tail
}

// actionRow draws buttons flush left and icons flush right.
type actionRow struct {
	buttons []*Button
	icons   []IconName
}

func (a *actionRow) View() string {
	return a.ViewWithContext(DefaultContext())
}

func (a *actionRow) ViewWithContext(ctx RenderContext) string {
	left := make([]string, 0, len(a.buttons))
	for _, button := range a.buttons {
		left = append(left, button.ViewWithContext(ctx))
	}
	right := make([]string, 0, len(a.icons))
	iconStyle := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Neutral.Base)
	for _, icon := range a.icons {
		right = append(right, iconStyle.Render(ctx.Theme.Icons.Glyph(icon)))
	}

	buttons := strings.Join(left, " ")
	icons := strings.Join(right, " ")
	width := ctx.AvailableWidth(0)
	gap := width - lipgloss.Width(buttons) - lipgloss.Width(icons)
	if gap < 1 {
		gap = 1
	}
	if buttons == "" || icons == "" {
		if icons != "" {
			return strings.Repeat(" ", max(gap, 0)) + icons
		}
		return buttons
	}
	return buttons + strings.Repeat(" ", gap) + icons
}
