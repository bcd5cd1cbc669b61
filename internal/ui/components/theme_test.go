package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	t.Parallel()

	for _, name := range ThemeNames() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			theme, ok := ThemeByName(name)
			require.True(t, ok)
			assert.Equal(t, name, theme.Name)
			assert.NotNil(t, theme.Variants)
			assert.NotEmpty(t, theme.Icons)
		})
	}

	_, ok := ThemeByName("solarized")
	require.False(t, ok)
}

func TestThemeNamesSorted(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"dark", "default", "light"}, ThemeNames())
}

func TestPinnedThemesIgnoreBackground(t *testing.T) {
	t.Parallel()

	light := LightTheme().Palette.Surface.Base
	assert.Equal(t, light.Light, light.Dark)

	dark := DarkTheme().Palette.Surface.Base
	assert.Equal(t, dark.Light, dark.Dark)
	assert.NotEqual(t, light.Light, dark.Dark)
}

func TestNormalizeFillsDefaults(t *testing.T) {
	t.Parallel()

	theme := Theme{}.Normalize()
	require.NotNil(t, theme.Variants)
	require.Equal(t, "✕", theme.Icons.Glyph(IconClear))
	require.Equal(t, 2, spacingLookup(theme.Spacing.Padding, SpacingSizeMedium))
	require.Equal(t, 2, spacingLookup(theme.Spacing.Padding, SpacingSize(99)))
}

func TestIconSetUnknownGlyph(t *testing.T) {
	t.Parallel()
	require.Equal(t, "?", IconSet{}.Glyph(IconSearch))
}

func TestInputStyleStates(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, theme.Borders.Thick, InputStyle(theme, InputStateFocus).GetBorderStyle())
	assert.Equal(t, theme.Borders.Rounded, InputStyle(theme, InputStateDefault).GetBorderStyle())
	assert.True(t, InputStyle(theme, InputStateDisabled).GetFaint())
}

func TestAddAppliersKeepsExistingStrategy(t *testing.T) {
	t.Parallel()

	text := NewText("x")
	text.SetStrategy(NewCompositeStrategy(func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Bold(true) }))
	text.AddAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Italic(true) })

	style := text.ComputeStyle(DefaultTheme())
	require.True(t, style.GetBold())
	require.True(t, style.GetItalic())
}
