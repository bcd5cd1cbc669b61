package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ListboxOption is one drawn row.
type ListboxOption struct {
	ID       string
	Label    string
	Active   bool
	Selected bool
	Disabled bool
}

// Listbox draws a bordered, scrolling list of options. The active row is
// highlighted as keyboard-active when the list has visual focus and as
// hovered otherwise.
type Listbox struct {
	BaseComponent
	id          string
	options     []ListboxOption
	visualFocus bool
	maxRows     int
	emptyText   string
	width       int
}

// DefaultListboxRows is the number of rows drawn before scrolling.
const DefaultListboxRows = 6

// NewListbox creates an empty listbox.
func NewListbox(options ...ListboxOption) *Listbox {
	return &Listbox{
		BaseComponent: NewBaseComponent(),
		options:       options,
		maxRows:       DefaultListboxRows,
	}
}

// WithID sets the element id of the list.
func (l *Listbox) WithID(id string) *Listbox {
	l.id = id
	return l
}

func (l *Listbox) ID() string {
	return l.id
}

func (l *Listbox) WithOptions(options ...ListboxOption) *Listbox {
	l.options = options
	return l
}

func (l *Listbox) WithVisualFocus(visualFocus bool) *Listbox {
	l.visualFocus = visualFocus
	return l
}

// WithMaxRows bounds the visible rows; values below one keep the default.
func (l *Listbox) WithMaxRows(rows int) *Listbox {
	if rows > 0 {
		l.maxRows = rows
	}
	return l
}

// WithEmptyText sets the row drawn when there are no options.
func (l *Listbox) WithEmptyText(text string) *Listbox {
	l.emptyText = text
	return l
}

// WithWidth fixes the outer width in cells.
func (l *Listbox) WithWidth(width int) *Listbox {
	l.width = width
	return l
}

// Window returns the half-open range of option indexes currently drawn. The
// window scrolls just enough to keep the active option visible.
func (l *Listbox) Window() (start, end int) {
	n := len(l.options)
	if n <= l.maxRows {
		return 0, n
	}
	active := 0
	for i, opt := range l.options {
		if opt.Active {
			active = i
			break
		}
	}
	start = active - l.maxRows + 1
	if start < 0 {
		start = 0
	}
	return start, start + l.maxRows
}

// OptionAt maps a row relative to the listbox top edge to an option index.
func (l *Listbox) OptionAt(ctx RenderContext, row int) (int, bool) {
	frame := l.frameStyle(ctx.Theme)
	start, end := l.Window()
	index := start + row - frame.GetBorderTopSize() - frame.GetPaddingTop()
	if index < start || index >= end {
		return 0, false
	}
	return index, true
}

func (l *Listbox) frameStyle(theme Theme) lipgloss.Style {
	style := theme.Listbox.Frame
	if l.strategy != nil {
		style = l.strategy.Apply(style, theme)
	}
	return style
}

func (l *Listbox) View() string {
	return l.ViewWithContext(DefaultContext())
}

func (l *Listbox) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	frame := l.frameStyle(theme)

	width := l.width
	if width <= 0 {
		width = ctx.AvailableWidth(30)
	}
	inner := width - frame.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	if len(l.options) == 0 {
		text := l.emptyText
		if text == "" {
			return ""
		}
		return frame.Render(l.row(theme.Listbox.Empty, "  "+text, inner))
	}

	start, end := l.Window()
	rows := make([]string, 0, end-start)
	for _, opt := range l.options[start:end] {
		rows = append(rows, l.row(l.optionStyle(theme, opt), l.prefix(theme, opt)+opt.Label, inner))
	}
	return frame.Render(strings.Join(rows, "\n"))
}

func (l *Listbox) prefix(theme Theme, opt ListboxOption) string {
	if opt.Selected {
		return theme.Icons.Glyph(IconCheck) + " "
	}
	return "  "
}

func (l *Listbox) optionStyle(theme Theme, opt ListboxOption) lipgloss.Style {
	styles := theme.Listbox
	switch {
	case opt.Active && l.visualFocus:
		return styles.Active
	case opt.Active:
		return styles.Hovered
	case opt.Disabled:
		return styles.Disabled
	case opt.Selected:
		return styles.Selected
	default:
		return styles.Option
	}
}

// row truncates text to the inner width and pads it so highlights span the
// whole row.
func (l *Listbox) row(style lipgloss.Style, text string, inner int) string {
	avail := inner - style.GetHorizontalPadding()
	if avail < 1 {
		avail = 1
	}
	text = runewidth.Truncate(text, avail, "…")
	text = runewidth.FillRight(text, avail)
	return style.Render(text)
}

// Options returns the drawn options.
func (l *Listbox) Options() []ListboxOption {
	return l.options
}
