package components

import "github.com/alexisbeaulieu97/tuikit/internal/ui"

type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

var alertIcons = map[AlertVariant]IconName{
	AlertVariantInfo:    IconInfo,
	AlertVariantSuccess: IconSuccess,
	AlertVariantWarning: IconWarning,
	AlertVariantError:   IconError,
}

// Alert is a bordered notification line with an optional title.
type Alert struct {
	BaseComponent
	title   string
	message string
	variant AlertVariant
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

func (a *Alert) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	line := NewText(theme.Icons.Glyph(alertIcons[a.variant]) + " " + a.message)

	children := []ui.Renderable{line}
	if a.title != "" {
		children = []ui.Renderable{EmphasisText(a.title), line}
	}

	box := NewContainer(children...).
		WithBorder(theme.Borders.Normal).
		WithPadding(SymmetricSpacing(0, 1))
	if strategy := theme.Variants.Get(a.variant); strategy != nil {
		box.SetStrategy(strategy)
	}
	return box.ViewWithContext(ctx)
}

func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

func (a *Alert) Message() string {
	return a.message
}
