// Package focus provides the focus-tracking capability shared by interactive
// widgets. Widgets never query the terminal for focus; they ask a Tracker
// about the named region they own.
package focus

// Region names a focusable part of a widget, such as a combobox input.
type Region string

// Tracker answers and mutates focus state keyed by region.
type Tracker interface {
	Focus(region Region)
	Blur(region Region)
	IsFocused(region Region) bool
}

// Manager tracks a single focused region among an ordered set of regions.
// It does not handle Tab navigation by itself; callers decide when to move
// focus with Next, Prev or Focus.
type Manager struct {
	regions []Region
	current int // index into regions, -1 when nothing is focused
}

// NewManager creates a Manager with the given regions registered in order.
func NewManager(regions ...Region) *Manager {
	m := &Manager{current: -1}
	for _, r := range regions {
		m.Register(r)
	}
	return m
}

// Register appends a region to the traversal order. Registering an existing
// region is a no-op.
func (m *Manager) Register(region Region) {
	if m.indexOf(region) >= 0 {
		return
	}
	m.regions = append(m.regions, region)
}

// Unregister removes a region, blurring it first when it holds focus.
func (m *Manager) Unregister(region Region) {
	idx := m.indexOf(region)
	if idx < 0 {
		return
	}
	m.regions = append(m.regions[:idx], m.regions[idx+1:]...)
	switch {
	case m.current == idx:
		m.current = -1
	case m.current > idx:
		m.current--
	}
}

// Focus moves focus to region, registering it when unknown.
func (m *Manager) Focus(region Region) {
	m.Register(region)
	m.current = m.indexOf(region)
}

// Blur drops focus when region currently holds it.
func (m *Manager) Blur(region Region) {
	if m.current >= 0 && m.regions[m.current] == region {
		m.current = -1
	}
}

// IsFocused reports whether region holds focus.
func (m *Manager) IsFocused(region Region) bool {
	return m.current >= 0 && m.regions[m.current] == region
}

// Current returns the focused region, if any.
func (m *Manager) Current() (Region, bool) {
	if m.current < 0 {
		return "", false
	}
	return m.regions[m.current], true
}

// Next focuses the region after the current one, wrapping around.
func (m *Manager) Next() (Region, bool) {
	return m.step(1)
}

// Prev focuses the region before the current one, wrapping around.
func (m *Manager) Prev() (Region, bool) {
	return m.step(-1)
}

func (m *Manager) step(delta int) (Region, bool) {
	n := len(m.regions)
	if n == 0 {
		return "", false
	}
	if m.current < 0 {
		if delta > 0 {
			m.current = 0
		} else {
			m.current = n - 1
		}
	} else {
		m.current = (m.current + delta + n) % n
	}
	return m.regions[m.current], true
}

func (m *Manager) indexOf(region Region) int {
	for i, r := range m.regions {
		if r == region {
			return i
		}
	}
	return -1
}

var _ Tracker = (*Manager)(nil)
