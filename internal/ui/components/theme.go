package components

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour group:
//
//   - Base: background or brand colour
//   - OnBase: text drawn on Base
//   - Muted: a quieter Base for borders and accents
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette holds the semantic colour slots components draw with.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteSlot selects one ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// BorderSet groups the borders a theme offers.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// SpacingSize is a step on the theme spacing scale.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores the padding and margin scales in terminal cells.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
		SpacingSizeExtraLarge: 4,
	}
}

type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCaption
	TypographyVariantEmphasis
	TypographyVariantCode
)

// TypographyScale contains the text presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Caption  lipgloss.Style
	Emphasis lipgloss.Style
	Code     lipgloss.Style
}

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
	InputStateInvalid
	InputStateDisabled
)

// InputStyles describe the text field frame per state plus its inner parts.
type InputStyles struct {
	Default     lipgloss.Style
	Focus       lipgloss.Style
	Invalid     lipgloss.Style
	Disabled    lipgloss.Style
	Placeholder lipgloss.Style
	Affix       lipgloss.Style
}

// ListboxStyles describe the dropdown menu and its rows.
type ListboxStyles struct {
	Frame    lipgloss.Style
	Option   lipgloss.Style
	Active   lipgloss.Style
	Hovered  lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Empty    lipgloss.Style
}

// FieldStyles describe the label and helper lines around an input.
type FieldStyles struct {
	Label         lipgloss.Style
	LabelDisabled lipgloss.Style
	Required      lipgloss.Style
	Helper        lipgloss.Style
	Error         lipgloss.Style
	Valid         lipgloss.Style
}

type IconName string

const (
	IconClear    IconName = "clear"
	IconExpand   IconName = "expand"
	IconCollapse IconName = "collapse"
	IconCheck    IconName = "check"
	IconRequired IconName = "required"
	IconError    IconName = "error"
	IconWarning  IconName = "warning"
	IconInfo     IconName = "info"
	IconSuccess  IconName = "success"
	IconSearch   IconName = "search"
	IconRecent   IconName = "recent"
)

// IconSet maps icon names to glyphs.
type IconSet map[IconName]string

// Glyph returns the glyph for name, or "?" when the set lacks it.
func (s IconSet) Glyph(name IconName) string {
	if glyph, ok := s[name]; ok {
		return glyph
	}
	return "?"
}

func unicodeIcons() IconSet {
	return IconSet{
		IconClear:    "✕",
		IconExpand:   "▾",
		IconCollapse: "▴",
		IconCheck:    "✓",
		IconRequired: "*",
		IconError:    "✗",
		IconWarning:  "⚠",
		IconInfo:     "ℹ",
		IconSuccess:  "✓",
		IconSearch:   "⌕",
		IconRecent:   "↺",
	}
}

// VariantRegistry maps component variants to styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register maps variant to strategy.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for variant, or nil.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of styling data. Build one with DefaultTheme,
// LightTheme, DarkTheme or ThemeByName and pass it through RenderContext.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Listbox    ListboxStyles
	Field      FieldStyles
	Icons      IconSet
	Variants   *VariantRegistry
}

// Normalize fills in the parts a partially specified theme leaves zero.
func (t Theme) Normalize() Theme {
	if t.Spacing.Padding == (spacingTable{}) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if t.Spacing.Margin == (spacingTable{}) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	if t.Icons == nil {
		t.Icons = unicodeIcons()
	}
	if t.Variants == nil {
		t.Variants = defaultVariants()
	}
	return t
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func defaultPalette() Palette {
	return Palette{
		Primary:   ColourSet{Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8"), Contrast: ac("#facc15", "#ca8a04")},
		Secondary: ColourSet{Base: ac("#a855f7", "#c084fc"), OnBase: ac("#f8fafc", "#1f2937"), Muted: ac("#7c3aed", "#6b21a8"), Contrast: ac("#f472b6", "#f472b6")},
		Surface:   ColourSet{Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#e2e8f0", "#1f2937"), Contrast: ac("#3b82f6", "#60a5fa")},
		Success:   ColourSet{Base: ac("#22c55e", "#4ade80"), OnBase: ac("#052e16", "#022c22"), Muted: ac("#16a34a", "#15803d"), Contrast: ac("#f8fafc", "#f8fafc")},
		Warning:   ColourSet{Base: ac("#eab308", "#facc15"), OnBase: ac("#422006", "#422006"), Muted: ac("#ca8a04", "#a16207"), Contrast: ac("#111827", "#111827")},
		Danger:    ColourSet{Base: ac("#ef4444", "#f87171"), OnBase: ac("#7f1d1d", "#450a0a"), Muted: ac("#dc2626", "#b91c1c"), Contrast: ac("#f8fafc", "#f8fafc")},
		Info:      ColourSet{Base: ac("#06b6d4", "#22d3ee"), OnBase: ac("#083344", "#04121a"), Muted: ac("#0891b2", "#0e7490"), Contrast: ac("#f8fafc", "#f8fafc")},
		Neutral:   ColourSet{Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#475569", "#334155"), Contrast: ac("#f8fafc", "#f8fafc")},
	}
}

// pinned resolves every adaptive colour of set to one side.
func pinned(set ColourSet, dark bool) ColourSet {
	pick := func(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
		if dark {
			return ac(c.Dark, c.Dark)
		}
		return ac(c.Light, c.Light)
	}
	return ColourSet{Base: pick(set.Base), OnBase: pick(set.OnBase), Muted: pick(set.Muted), Contrast: pick(set.Contrast)}
}

func pinnedPalette(p Palette, dark bool) Palette {
	return Palette{
		Primary:   pinned(p.Primary, dark),
		Secondary: pinned(p.Secondary, dark),
		Surface:   pinned(p.Surface, dark),
		Success:   pinned(p.Success, dark),
		Warning:   pinned(p.Warning, dark),
		Danger:    pinned(p.Danger, dark),
		Info:      pinned(p.Info, dark),
		Neutral:   pinned(p.Neutral, dark),
	}
}

// newTheme derives every component style from palette.
func newTheme(name string, palette Palette) Theme {
	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	text := lipgloss.NewStyle().Foreground(palette.Surface.OnBase)
	typography := TypographyScale{
		Base:     text,
		Title:    text.Bold(true).Foreground(palette.Primary.Base),
		Subtitle: text.Foreground(palette.Secondary.Muted).Faint(true),
		Body:     text,
		Caption:  text.Foreground(palette.Neutral.Base),
		Emphasis: text.Bold(true),
		Code:     text.Foreground(palette.Secondary.Base).Background(palette.Surface.Muted).Padding(0, 1),
	}

	frame := lipgloss.NewStyle().
		BorderStyle(borders.Rounded).
		Padding(0, 1).
		Foreground(palette.Surface.OnBase)
	input := InputStyles{
		Default:     frame.BorderForeground(palette.Neutral.Muted),
		Focus:       frame.BorderStyle(borders.Thick).BorderForeground(palette.Primary.Base),
		Invalid:     frame.BorderForeground(palette.Danger.Base),
		Disabled:    frame.BorderForeground(palette.Neutral.Muted).Faint(true),
		Placeholder: lipgloss.NewStyle().Foreground(palette.Neutral.Base).Faint(true),
		Affix:       lipgloss.NewStyle().Foreground(palette.Neutral.Base),
	}

	option := lipgloss.NewStyle().Foreground(palette.Surface.OnBase).Padding(0, 1)
	listbox := ListboxStyles{
		Frame:    lipgloss.NewStyle().BorderStyle(borders.Normal).BorderForeground(palette.Neutral.Muted),
		Option:   option,
		Active:   option.Background(palette.Primary.Base).Foreground(palette.Primary.OnBase).Bold(true),
		Hovered:  option.Background(palette.Surface.Muted),
		Selected: option.Foreground(palette.Primary.Base).Bold(true),
		Disabled: option.Foreground(palette.Neutral.Base).Faint(true),
		Empty:    option.Foreground(palette.Neutral.Base).Italic(true),
	}

	field := FieldStyles{
		Label:         text.Bold(true),
		LabelDisabled: text.Faint(true),
		Required:      lipgloss.NewStyle().Foreground(palette.Danger.Base),
		Helper:        lipgloss.NewStyle().Foreground(palette.Neutral.Base),
		Error:         lipgloss.NewStyle().Foreground(palette.Danger.Base),
		Valid:         lipgloss.NewStyle().Foreground(palette.Success.Base),
	}

	theme := Theme{
		Name:       name,
		Palette:    palette,
		Borders:    borders,
		Typography: typography,
		Input:      input,
		Listbox:    listbox,
		Field:      field,
		Icons:      unicodeIcons(),
		Variants:   defaultVariants(),
	}
	return theme.Normalize()
}

// DefaultTheme adapts to the terminal background.
func DefaultTheme() Theme {
	return newTheme("default", defaultPalette())
}

// LightTheme uses the light colours regardless of the terminal background.
func LightTheme() Theme {
	return newTheme("light", pinnedPalette(defaultPalette(), false))
}

// DarkTheme uses darker surfaces and the dark colours regardless of the
// terminal background.
func DarkTheme() Theme {
	palette := defaultPalette()
	palette.Surface = ColourSet{Base: ac("#111827", "#0b1120"), OnBase: ac("#f9fafb", "#e5e7eb"), Muted: ac("#1f2937", "#111827"), Contrast: ac("#3b82f6", "#60a5fa")}
	palette.Neutral = ColourSet{Base: ac("#475569", "#334155"), OnBase: ac("#e5e7eb", "#cbd5f5"), Muted: ac("#374151", "#1f2937"), Contrast: ac("#f8fafc", "#f8fafc")}
	return newTheme("dark", pinnedPalette(palette, true))
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"light":   LightTheme,
	"dark":    DarkTheme,
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	build, ok := themes[name]
	if !ok {
		return Theme{}, false
	}
	return build(), true
}

// ThemeNames lists the built-in themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func defaultVariants() *VariantRegistry {
	registry := NewVariantRegistry()
	for variant, slot := range map[ButtonVariant]PaletteSlot{
		ButtonVariantPrimary:   PalettePrimary,
		ButtonVariantSecondary: PaletteSecondary,
		ButtonVariantDanger:    PaletteDanger,
		ButtonVariantMuted:     PaletteNeutral,
	} {
		registry.Register(variant, NewCompositeStrategy(Background(slot), PaddingX(SpacingSizeSmall)))
	}
	for variant, slot := range map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault: PaletteNeutral,
		BadgeVariantPrimary: PalettePrimary,
		BadgeVariantSuccess: PaletteSuccess,
		BadgeVariantWarning: PaletteWarning,
		BadgeVariantError:   PaletteDanger,
	} {
		registry.Register(variant, NewCompositeStrategy(Background(slot), PaddingX(SpacingSizeSmall)))
	}
	for variant, slot := range map[AlertVariant]PaletteSlot{
		AlertVariantSuccess: PaletteSuccess,
		AlertVariantWarning: PaletteWarning,
		AlertVariantError:   PaletteDanger,
		AlertVariantInfo:    PaletteInfo,
	} {
		registry.Register(variant, NewCompositeStrategy(Foreground(slot), BorderColour(slot)))
	}
	return registry
}

// BorderForVariant returns the theme border for variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantCode:
		return typo.Code
	default:
		return typo.Base
	}
}

// InputStyle returns the field frame for state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	switch state {
	case InputStateFocus:
		return theme.Input.Focus
	case InputStateInvalid:
		return theme.Input.Invalid
	case InputStateDisabled:
		return theme.Input.Disabled
	default:
		return theme.Input.Default
	}
}

// Background sets a slot background with its matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground sets a slot colour as text colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour tints an existing border with a slot colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(spacingLookup(theme.Spacing.Margin, size))
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// CardBaseStyle is the default Card look.
func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
		Padding(SpacingSizeSmall),
	}
}
