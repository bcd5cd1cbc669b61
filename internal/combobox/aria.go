package combobox

// Aria is the accessibility state a host exposes for the input. Terminal
// hosts use it for status lines and screen-reader friendly output.
type Aria struct {
	Role             string
	Expanded         bool
	HasPopup         string
	Controls         string
	ActiveDescendant string
	Required         bool
	Disabled         bool
	ReadOnly         bool
	Invalid          bool
}

// Aria returns the current accessibility state.
func (c *Controller[T]) Aria() Aria {
	p := c.props
	a := Aria{
		Role:     "combobox",
		Expanded: c.open,
		HasPopup: "listbox",
		Controls: c.ids.Menu(),
		Required: p.Required,
		Disabled: p.Disabled,
		ReadOnly: p.ReadOnly,
	}
	if c.open && len(p.Results) > 0 {
		a.ActiveDescendant = c.ids.Result(c.activeIndex)
	}
	if valid, _ := c.Validity(); valid != nil && !*valid {
		a.Invalid = true
	}
	return a
}
