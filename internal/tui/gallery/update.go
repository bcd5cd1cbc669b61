package gallery

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tuikit/internal/combobox"
	"github.com/alexisbeaulieu97/tuikit/internal/ports"
	"github.com/alexisbeaulieu97/tuikit/internal/sources"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/widgets"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m, m.combo.Update(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case itemsLoadedMsg:
		return m.handleItemsLoaded(msg)

	case historySavedMsg:
		if msg.err != nil {
			m.logger.Warn(m.ctx, "history not saved", "error", msg.err)
		}
		return m, nil

	// Combobox notifications
	case widgets.RequestResultsMsg:
		m.query = msg.Query
		if !m.loaded {
			if m.loading {
				return m, nil
			}
			return m, m.startLoad()
		}
		return m, m.combo.SetResults(m.results())

	case widgets.ValueMsg:
		m.query = msg.Value
		return m, m.combo.SetValue(msg.Value)

	case widgets.ResultSelectMsg[sources.Item]:
		item := msg.Result
		m.selected = &item
		m.publish(ports.EventResultSelected, map[string]any{"value": item.Key(), "label": item.Label})
		if m.history == nil {
			return m, nil
		}
		m.history.Record(ComboBoxID, item.Key())
		return m, saveHistoryCmd(m.history)

	case widgets.ValidateMsg:
		if msg.Valid != nil && !*msg.Valid {
			m.logger.Debug(m.ctx, "value invalid", "message", msg.Message)
		}
		return m, m.combo.SetValidity(combobox.Validity{Valid: msg.Valid, Message: msg.Message})

	case widgets.MenuChangeMsg:
		if msg.Open {
			m.publish(ports.EventMenuOpened, nil)
		} else {
			m.publish(ports.EventMenuClosed, nil)
		}
		return m, nil

	case widgets.FocusMsg:
		m.publish(ports.EventFocus, map[string]any{"value": msg.Value})
		return m, nil

	case widgets.BlurMsg:
		m.publish(ports.EventBlur, map[string]any{"value": msg.Value})
		return m, nil

	case widgets.OverMsg:
		m.hovered = true
		return m, nil

	case widgets.OutMsg:
		m.hovered = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reload):
		m.loaded = false
		m.loadErr = nil
		return m, m.startLoad()

	case key.Matches(msg, m.keys.Focus):
		if m.combo.Focused() {
			return m, m.combo.Blur()
		}
		return m, m.combo.Focus()
	}

	return m, m.combo.Update(msg)
}

func (m Model) handleItemsLoaded(msg itemsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.loadSeq {
		return m, nil
	}
	m.loading = false

	if msg.err != nil {
		m.loadErr = msg.err
		m.logger.Error(m.ctx, "source failed", "source", m.source.Name(), "error", msg.err)
		m.publish(ports.EventResultsFailed, map[string]any{"source": m.source.Name()})
		return m, m.combo.SetResults(nil)
	}

	m.items = msg.items
	m.loaded = true
	m.loadErr = nil
	m.logger.Info(m.ctx, "results loaded",
		"source", m.source.Name(),
		"count", len(msg.items),
		"duration_ms", msg.duration.Milliseconds(),
	)
	m.publish(ports.EventResultsLoaded, map[string]any{"source": m.source.Name(), "count": len(msg.items)})
	return m, m.combo.SetResults(m.results())
}
