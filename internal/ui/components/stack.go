package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/ui"
)

// Direction is the stacking axis of a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack lays children out along one axis.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    CrossStart,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext draws the children. Horizontal stacks split the available
// width evenly between children; empty child views are skipped.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.Theme)

	childCtx := ctx
	if s.direction == DirectionHorizontal && ctx.Constraints.MaxWidth > 0 && len(s.children) > 0 {
		available := ctx.Constraints.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			c := ctx.Constraints
			c.MaxWidth = available / len(s.children)
			c.MinWidth = 0
			childCtx = ctx.WithConstraints(c)
		}
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := Render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return style.Render("")
	}

	if ctx.Constraints.MaxWidth > 0 {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}
	return style.Render(s.join(views))
}

func (s *Stack) join(views []string) string {
	pos := s.crossAlign.position()
	if s.gap > 0 {
		sep := strings.Repeat("\n", s.gap-1)
		if s.direction == DirectionHorizontal {
			sep = strings.Repeat(" ", s.gap)
		}
		spaced := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, sep)
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}
	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	return lipgloss.JoinVertical(pos, views...)
}

func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the blank cells between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
