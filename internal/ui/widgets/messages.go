package widgets

// Messages emitted by a ComboBox. Each carries the id of the emitting widget
// so one owner can host several comboboxes.

// ValueMsg reports a new value: typed text, a cleared field or the value of
// a selected result.
type ValueMsg struct {
	ID    string
	Value string
}

// ResultSelectMsg reports the result picked from the menu.
type ResultSelectMsg[T any] struct {
	ID     string
	Result T
}

// RequestResultsMsg asks the owner for results matching Query. The menu is
// already open when it arrives.
type RequestResultsMsg struct {
	ID    string
	Query string
}

// MenuChangeMsg reports an open/closed transition of the menu.
type MenuChangeMsg struct {
	ID   string
	Open bool
}

// FocusMsg reports the input gaining focus.
type FocusMsg struct {
	ID    string
	Value string
}

// BlurMsg reports the input losing focus.
type BlurMsg struct {
	ID    string
	Value string
}

// OverMsg reports the pointer entering the widget.
type OverMsg struct {
	ID string
}

// OutMsg reports the pointer leaving the widget.
type OutMsg struct {
	ID string
}

// ValidateMsg reports a change of the field's own validity. A nil Valid
// means the field is neutral.
type ValidateMsg struct {
	ID      string
	Valid   *bool
	Message string
}
