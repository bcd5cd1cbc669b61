package combobox

import "fmt"

// ResultLabel returns the display label of result.
func (c *Controller[T]) ResultLabel(result T) string {
	if c.props.GetResultLabel != nil {
		return c.props.GetResultLabel(result)
	}
	return fmt.Sprint(result)
}

// ResultValue returns the value reported when result is selected. It falls
// back to the label when no value extractor is set.
func (c *Controller[T]) ResultValue(result T) string {
	if c.props.GetResultValue != nil {
		return c.props.GetResultValue(result)
	}
	return c.ResultLabel(result)
}

// ResultSelected reports whether result matches the current value.
func (c *Controller[T]) ResultSelected(result T) bool {
	if c.props.GetResultSelected != nil {
		return c.props.GetResultSelected(result)
	}
	return c.ResultLabel(result) == c.props.Value
}

// ResultDisabled reports whether result cannot be selected.
func (c *Controller[T]) ResultDisabled(result T) bool {
	if c.props.IsResultDisabled != nil {
		return c.props.IsResultDisabled(result)
	}
	return false
}

// Row is the resolved presentation state of one result.
type Row struct {
	ID       string
	Label    string
	Active   bool
	Selected bool
	Disabled bool
}

// Rows resolves every current result for drawing.
func (c *Controller[T]) Rows() []Row {
	rows := make([]Row, len(c.props.Results))
	for i, result := range c.props.Results {
		rows[i] = Row{
			ID:       c.ids.Result(i),
			Label:    c.ResultLabel(result),
			Active:   i == c.activeIndex,
			Selected: c.ResultSelected(result),
			Disabled: c.ResultDisabled(result),
		}
	}
	return rows
}

// Message resolves a localized message key, falling back to English.
func (c *Controller[T]) Message(key string) string {
	return c.message(key)
}
