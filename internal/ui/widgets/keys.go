package widgets

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/combobox"
)

// KeyMap binds terminal keys to combobox navigation keys.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Close  key.Binding
	Select key.Binding
	Space  key.Binding
	Home   key.Binding
	End    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next / open")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Space:  key.NewBinding(key.WithKeys(" ", "space")),
		Home:   key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:    key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
	}
}

// ShortHelp lists the bindings worth showing in a help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close}
}

// Resolve maps a key press to a controller key.
func (k KeyMap) Resolve(msg tea.KeyMsg) combobox.Key {
	switch {
	case key.Matches(msg, k.Up):
		return combobox.KeyUp
	case key.Matches(msg, k.Down):
		return combobox.KeyDown
	case key.Matches(msg, k.Close):
		return combobox.KeyEscape
	case key.Matches(msg, k.Select):
		return combobox.KeyEnter
	case key.Matches(msg, k.Space):
		return combobox.KeySpace
	case key.Matches(msg, k.Home):
		return combobox.KeyHome
	case key.Matches(msg, k.End):
		return combobox.KeyEnd
	default:
		return combobox.KeyOther
	}
}
