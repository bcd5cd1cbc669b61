package combobox

// Key is a key code the controller understands. Hosts translate their own key
// events into a Key; anything unrecognized maps to KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEscape
	KeyEnter
	KeySpace
	KeyHome
	KeyEnd
)

var keyNames = map[Key]string{
	KeyOther:  "other",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyEscape: "esc",
	KeyEnter:  "enter",
	KeySpace:  "space",
	KeyHome:   "home",
	KeyEnd:    "end",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "other"
}

// ParseKey maps a key name, as produced by a terminal key event, to a Key.
func ParseKey(name string) Key {
	switch name {
	case "up", "ctrl+p":
		return KeyUp
	case "down", "ctrl+n":
		return KeyDown
	case "esc":
		return KeyEscape
	case "enter":
		return KeyEnter
	case " ", "space":
		return KeySpace
	case "home":
		return KeyHome
	case "end":
		return KeyEnd
	default:
		return KeyOther
	}
}
