// Package ui holds the contracts shared by every drawable piece of the
// library.
package ui

// Renderable is anything that draws itself to terminal text.
type Renderable interface {
	View() string
}
