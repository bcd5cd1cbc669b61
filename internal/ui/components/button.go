package components

// ButtonVariant picks the palette slot of a Button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantDanger
	ButtonVariantMuted
)

// Button is a visual button. Card action rows are made of these.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	active   bool
}

// NewButton creates a primary button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	if b.disabled {
		style = style.Faint(true)
	}
	if b.active {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(b.label)
}

func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive marks the button as the focused action.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

func (b *Button) Label() string {
	return b.label
}

func (b *Button) IsDisabled() bool {
	return b.disabled
}
