package gallery

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/ui"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/widgets"
)

// Title is the card title.
const Title = "tuikit"

// View renders the gallery.
func (m Model) View() string {
	return m.card().ViewWithContext(m.renderContext())
}

// card assembles the gallery card. The combobox must stay the first body
// child: layout derives the widget origin from the card's content origin.
func (m Model) card() *components.Card {
	body := []ui.Renderable{m.combo, m.statusLine()}
	if m.loadErr != nil {
		body = append(body, components.ErrorAlert(m.loadErr.Error()).
			WithTitle(m.text("gallery.source_failed")))
	}

	card := components.NewCard(body...).
		WithTitle(Title).
		WithSubtitle(m.text("gallery.subtitle")).
		WithActionButtons(
			components.NewButton(m.text("gallery.reload")).WithVariant(components.ButtonVariantSecondary).WithDisabled(m.loading),
			components.NewButton(m.text("gallery.quit")).WithVariant(components.ButtonVariantMuted),
		).
		WithFooter(m.footer()).
		WithWidth(m.cardWidth())
	if m.hovered {
		card.WithAppliers(hoverBorder)
	}
	return card
}

func hoverBorder(style lipgloss.Style, theme components.Theme) lipgloss.Style {
	return style.BorderForeground(theme.Palette.Primary.Base)
}

func (m Model) statusLine() ui.Renderable {
	var text string
	switch {
	case m.loading:
		text = m.spinner.View() + " " + m.text(widgets.MessageLoading)
	case m.selected != nil:
		text = m.format("gallery.selected", map[string]any{"value": m.selected.String()})
	default:
		text = m.text("gallery.nothing_selected")
	}
	return components.CaptionText(text)
}

func (m Model) footer() ui.Renderable {
	badge := components.NewBadge(m.text("gallery.menu_closed"))
	if m.combo.Controller().IsOpen() {
		badge = components.NewBadge(m.text("gallery.menu_open")).WithVariant(components.BadgeVariantPrimary)
	}
	return components.HStack(badge, components.CaptionText(" "+m.text("gallery.help")))
}
