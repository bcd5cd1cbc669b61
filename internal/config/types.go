// Package config loads the gallery configuration from YAML or TOML files.
package config

import "github.com/alexisbeaulieu97/tuikit/internal/sources"

// Source types.
const (
	SourceStatic = "static"
	SourceFile   = "file"
	SourceGit    = "git"
)

// Config is the root configuration document.
type Config struct {
	Theme    string         `yaml:"theme" toml:"theme" validate:"theme_name"`
	Locale   string         `yaml:"locale" toml:"locale" validate:"omitempty,bcp47_language_tag"`
	Width    int            `yaml:"width" toml:"width" validate:"gte=0,lte=240"`
	Log      LogConfig      `yaml:"log" toml:"log"`
	History  HistoryConfig  `yaml:"history" toml:"history"`
	ComboBox ComboBoxConfig `yaml:"combobox" toml:"combobox"`
	Sources  []SourceConfig `yaml:"sources" toml:"sources" validate:"required,min=1,dive"`
}

// LogConfig selects the logging backend.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" toml:"format" validate:"oneof=text json"`
	File   string `yaml:"file" toml:"file"`
}

// HistoryConfig controls recent-selection persistence.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Path    string `yaml:"path" toml:"path"`
	Limit   int    `yaml:"limit" toml:"limit" validate:"gte=0,lte=100"`
}

// ComboBoxConfig holds the presentation properties of the gallery combobox.
type ComboBoxConfig struct {
	Label       string `yaml:"label" toml:"label"`
	HelperText  string `yaml:"helper_text" toml:"helper_text"`
	Placeholder string `yaml:"placeholder" toml:"placeholder"`
	Required    bool   `yaml:"required" toml:"required"`
	Clearable   bool   `yaml:"clearable" toml:"clearable"`
	OpenOnFocus bool   `yaml:"open_on_focus" toml:"open_on_focus"`
	MaxRows     int    `yaml:"max_rows" toml:"max_rows" validate:"gte=0,lte=20"`
	Limit       int    `yaml:"limit" toml:"limit" validate:"gte=0"`
}

// SourceConfig describes one result source.
type SourceConfig struct {
	Name     string         `yaml:"name" toml:"name" validate:"required"`
	Type     string         `yaml:"type" toml:"type" validate:"required,oneof=static file git"`
	Items    []sources.Item `yaml:"items" toml:"items" validate:"required_if=Type static,dive"`
	Path     string         `yaml:"path" toml:"path" validate:"required_unless=Type static"`
	SkipTags bool           `yaml:"skip_tags" toml:"skip_tags"`
}
