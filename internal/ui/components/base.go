package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/ui"
)

// StyleStrategy turns a base style into a themed one.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a single theme-aware style transformation.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies its funcs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply runs every func over base.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy builds a strategy from funcs.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// BaseComponent carries the raw style and the strategy of a component.
// Embed it to get SetStyle/SetAppliers/AddAppliers.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// NewBaseComponent returns an unstyled base.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle resolves the component style against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers replaces the strategy with appliers.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends appliers after the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// Spacing is padding or margin in top, right, bottom, left order.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing uses size on every side.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing uses vertical on top/bottom and horizontal on left/right.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether every side is zero.
func (s Spacing) IsZero() bool {
	return s == Spacing{}
}

func (s Spacing) apply(style lipgloss.Style, set func(lipgloss.Style, ...int) lipgloss.Style) lipgloss.Style {
	if s.IsZero() {
		return style
	}
	if s.Top == s.Bottom && s.Left == s.Right {
		return set(style, s.Top, s.Left)
	}
	return set(style, s.Top, s.Right, s.Bottom, s.Left)
}

// Constraints bound the size a component may draw at. A negative maximum
// means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithWidth pins the width.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: -1}
}

// WithMaxWidth caps the width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// HasWidth reports whether any width bound is set.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// Width returns the best known width, or fallback.
func (c Constraints) Width(fallback int) int {
	switch {
	case c.MaxWidth > 0:
		return c.MaxWidth
	case c.MinWidth > 0:
		return c.MinWidth
	default:
		return fallback
	}
}

// RenderContext carries the theme and layout bounds into a render pass.
// Components never read global theme state.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext uses the default theme without constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a copy using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a copy using c.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// AvailableWidth is the width a child may fill, or fallback when unknown.
func (r RenderContext) AvailableWidth(fallback int) int {
	if w := r.Constraints.Width(0); w > 0 {
		return w
	}
	if r.ParentWidth > 0 {
		return r.ParentWidth
	}
	return fallback
}

// ContextualRenderable is a component that accepts a render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws r with ctx when it supports contexts, or with View otherwise.
func Render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// CrossAxisAlignment aligns children across the stacking direction.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) position() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
