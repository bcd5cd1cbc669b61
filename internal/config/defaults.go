package config

import "github.com/alexisbeaulieu97/tuikit/internal/sources"

// Default returns the configuration used when no file is given: a static
// list of fruit and the default theme.
func Default() *Config {
	cfg := &Config{
		ComboBox: ComboBoxConfig{
			Label:       "Fruit",
			HelperText:  "Type to filter, arrows to move",
			Placeholder: "Search…",
			Clearable:   true,
		},
		History: HistoryConfig{Enabled: true},
		Sources: []SourceConfig{{
			Name: "fruit",
			Type: SourceStatic,
			Items: []sources.Item{
				{Label: "Apple"}, {Label: "Apricot"}, {Label: "Banana"},
				{Label: "Blackberry"}, {Label: "Blueberry"}, {Label: "Cherry"},
				{Label: "Durian", Disabled: true}, {Label: "Grape"}, {Label: "Kiwi"},
				{Label: "Lemon"}, {Label: "Mango"}, {Label: "Orange"},
				{Label: "Peach"}, {Label: "Pear"}, {Label: "Plum"},
			},
		}},
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.ComboBox.MaxRows == 0 {
		cfg.ComboBox.MaxRows = 6
	}
}
