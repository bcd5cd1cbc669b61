package gallery

import (
	"reflect"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var cmdSliceType = reflect.TypeOf([]tea.Cmd(nil))

// Replay runs m without a terminal: it starts the model, then feeds msgs one
// by one. Every command is executed synchronously and its messages are
// applied before the next input. Spinner ticks are dropped and a quit ends
// the replay.
func Replay(m Model, msgs ...tea.Msg) Model {
	m, quit := settle(m, expand(m.Init()))
	for _, msg := range msgs {
		if quit {
			break
		}
		m, quit = settle(m, []tea.Msg{msg})
	}
	return m
}

func settle(m Model, queue []tea.Msg) (Model, bool) {
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		if _, ok := msg.(tea.QuitMsg); ok {
			return m, true
		}
		next, cmd := m.Update(msg)
		m = next.(Model)
		queue = append(queue, expand(cmd)...)
	}
	return m, false
}

// expand runs cmd and flattens batches and sequences into their messages.
func expand(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil, spinner.TickMsg:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, expand(c)...)
		}
		return out
	}
	// tea.Sequence wraps its commands in an unexported slice type.
	if v := reflect.ValueOf(msg); v.Type().ConvertibleTo(cmdSliceType) {
		var out []tea.Msg
		for _, c := range v.Convert(cmdSliceType).Interface().([]tea.Cmd) {
			out = append(out, expand(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
