package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tuikit/internal/combobox"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

// Hit names the part of a combobox under a cell.
type Hit int

const (
	HitOutside Hit = iota
	HitWidget
	HitField
	HitClear
	HitToggle
	HitOption
)

func (h Hit) String() string {
	switch h {
	case HitWidget:
		return "widget"
	case HitField:
		return "field"
	case HitClear:
		return "clear"
	case HitToggle:
		return "toggle"
	case HitOption:
		return "option"
	default:
		return "outside"
	}
}

// HitTest maps a cell relative to the widget's top-left corner onto the part
// drawn there. For HitOption the result index is returned as well.
func (c *ComboBox[T]) HitTest(x, y int) (Hit, int) {
	ctx := c.context()
	width := c.opts.width
	if x < 0 || y < 0 || x >= width || y >= lipgloss.Height(c.View()) {
		return HitOutside, 0
	}

	top := 0
	if c.ctrl.Props().Label != "" {
		top = lipgloss.Height(c.label().ViewWithContext(ctx))
	}
	field := c.field()
	layout := field.Layout(ctx)
	if y >= top && y < top+layout.Height {
		if icon, ok := field.AffixAt(ctx, x); ok {
			switch icon {
			case components.IconClear:
				return HitClear, 0
			case components.IconExpand:
				return HitToggle, 0
			}
		}
		return HitField, 0
	}

	if c.ctrl.IsOpen() {
		if index, ok := c.listbox().OptionAt(ctx, y-top-layout.Height); ok {
			return HitOption, index
		}
	}
	return HitWidget, 0
}

func (c *ComboBox[T]) handleMouse(msg tea.MouseMsg) {
	hit, index := c.HitTest(msg.X-c.originX, msg.Y-c.originY)

	if inside := hit != HitOutside; inside != c.hovered {
		c.hovered = inside
		if inside {
			c.ctrl.PointerEnter()
		} else {
			c.ctrl.PointerLeave()
		}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		c.handlePress(msg.Button, hit, index)
	case tea.MouseActionRelease:
		if c.pressedRow >= 0 {
			if hit == HitOption && index == c.pressedRow {
				c.ctrl.Select(index)
			}
			c.pressedRow = -1
		}
	case tea.MouseActionMotion:
		if hit == HitOption && (index != c.ctrl.ActiveIndex() || c.ctrl.MenuHasVisualFocus()) {
			c.ctrl.ResultHover(index)
		}
	}
}

func (c *ComboBox[T]) handlePress(button tea.MouseButton, hit Hit, index int) {
	switch button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if hit != HitOutside && c.ctrl.IsOpen() {
			k := combobox.KeyDown
			if button == tea.MouseButtonWheelUp {
				k = combobox.KeyUp
			}
			c.ctrl.KeyDown(k)
		}
		return
	case tea.MouseButtonLeft:
	default:
		return
	}

	switch hit {
	case HitToggle:
		c.ctrl.ToggleClick()
	case HitClear:
		c.ctrl.ClearClick()
	case HitOption:
		// The press moves focus off the input; the controller swallows
		// that blur so the release can still select.
		c.ctrl.ResultMouseDown()
		c.ctrl.InputBlur()
		c.pressedRow = index
	case HitField, HitWidget:
		if !c.ctrl.Focused() && !c.ctrl.Props().Disabled {
			c.ctrl.InputFocus()
		}
	case HitOutside:
		if c.ctrl.Focused() {
			c.ctrl.InputBlur()
		}
	}
}
