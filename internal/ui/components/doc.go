// Package components is a theme-aware component library for terminal
// interfaces, drawn with lipgloss.
//
// A Theme is immutable styling data passed explicitly through a
// RenderContext; nothing reads global state:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := card.ViewWithContext(ctx)
//
// View uses the default theme.
//
// Layout pieces are Stack and Container. Presentational pieces are Text,
// Divider, Button, Badge, Alert and Card. The form pieces Label, HelperText,
// Icon, TextField and Listbox are the building blocks of interactive widgets
// such as the combobox; they hold no interaction state of their own and draw
// whatever state they are given.
//
// Styling composes through StyleFunc appliers:
//
//	card := components.NewCard().WithAppliers(
//		components.Background(components.PaletteSurface),
//		components.Border(components.BorderVariantDouble),
//	)
package components
