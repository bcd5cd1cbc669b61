package components

// BadgeVariant picks the palette slot of a Badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
)

// Badge is a short status tag.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a default badge.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	return style.Render(b.text)
}

func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

func (b *Badge) Text() string {
	return b.text
}
