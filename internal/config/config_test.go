package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tuikit/internal/sources"
	tuierrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const yamlConfig = `theme: dark
locale: fr-CA
log:
  level: debug
combobox:
  label: Branch
  required: true
sources:
  - name: branches
    type: git
    path: .
    skip_tags: true
  - name: extra
    type: static
    items:
      - main
      - label: Trunk
        value: trunk
`

const tomlConfig = `theme = "light"
width = 60

[combobox]
label = "Fruit"
clearable = true

[[sources]]
name = "fruit"
type = "static"

[[sources.items]]
label = "Apple"

[[sources.items]]
label = "Pear"
disabled = true
`

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeFile(t, "gallery.yaml", yamlConfig))
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "fr-CA", cfg.Locale)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "default applied")
	assert.Equal(t, 6, cfg.ComboBox.MaxRows, "default applied")
	assert.True(t, cfg.ComboBox.Required)
	require.Len(t, cfg.Sources, 2)
	assert.True(t, cfg.Sources[0].SkipTags)
	assert.Equal(t, []sources.Item{{Label: "main"}, {Label: "Trunk", Value: "trunk"}}, cfg.Sources[1].Items)
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeFile(t, "gallery.toml", tomlConfig))
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 60, cfg.Width)
	assert.True(t, cfg.ComboBox.Clearable)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, []sources.Item{{Label: "Apple"}, {Label: "Pear", Disabled: true}}, cfg.Sources[0].Items)
}

func TestLoadParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		file    string
		content string
		line    int // -1 checks only that a line was found
	}{
		{name: "yaml syntax", file: "c.yaml", content: "theme: dark\nsources: [\n", line: -1},
		{name: "yaml unknown key", file: "c.yml", content: "theme: dark\ncolour: red\n", line: 2},
		{name: "toml syntax", file: "c.toml", content: "theme = \"dark\"\nwidth = = 3\n", line: -1},
		{name: "toml unknown key", file: "c.toml", content: "theme = \"dark\"\ncolour = \"red\"\n", line: -1},
		{name: "unsupported extension", file: "c.json", content: "{}"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, tc.file, tc.content)
			_, err := Load(path)
			var parseErr *tuierrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, path, parseErr.Path)
			switch {
			case tc.line > 0:
				assert.Equal(t, tc.line, parseErr.Line)
			case tc.line < 0:
				assert.Positive(t, parseErr.Line)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "unknown theme", mutate: func(c *Config) { c.Theme = "neon" }, field: "theme"},
		{name: "bad locale", mutate: func(c *Config) { c.Locale = "not a tag" }, field: "locale"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "trace" }, field: "log.level"},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, field: "log.format"},
		{name: "no sources", mutate: func(c *Config) { c.Sources = nil }, field: "sources"},
		{name: "bad source type", mutate: func(c *Config) { c.Sources[0].Type = "http" }, field: "sources[0].type"},
		{name: "static without items", mutate: func(c *Config) { c.Sources[0].Items = nil }, field: "sources[0].items"},
		{name: "item without label", mutate: func(c *Config) { c.Sources[0].Items[1].Label = "" }, field: "sources[0].items[1].label"},
		{name: "git without path", mutate: func(c *Config) {
			c.Sources = append(c.Sources, SourceConfig{Name: "refs", Type: SourceGit})
		}, field: "sources[1].path"},
		{name: "duplicate source", mutate: func(c *Config) {
			c.Sources = append(c.Sources, SourceConfig{Name: "fruit", Type: SourceFile, Path: "x.yaml"})
		}, field: "sources[1].name"},
		{name: "too many rows", mutate: func(c *Config) { c.ComboBox.MaxRows = 50 }, field: "combobox.max_rows"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(cfg)
			err := Validate(cfg)
			var validationErr *tuierrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}

	t.Run("default is valid", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, Validate(Default()))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		require.Error(t, Validate(nil))
	})

	t.Run("theme message lists known themes", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		cfg.Theme = "neon"
		require.ErrorContains(t, Validate(cfg), `unknown theme "neon" (known: dark, default, light)`)
	})
}

func TestOpenSources(t *testing.T) {
	t.Parallel()

	t.Run("single static", func(t *testing.T) {
		t.Parallel()
		src, err := Default().OpenSources()
		require.NoError(t, err)
		items, err := src.Items(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Apple", items[0].Label)
		assert.Equal(t, "fruit", src.Name())
	})

	t.Run("file and static combined", func(t *testing.T) {
		t.Parallel()
		file := writeFile(t, "items.yaml", "- Zucchini\n")
		cfg := Default()
		cfg.Sources = append(cfg.Sources, SourceConfig{Name: "veg", Type: SourceFile, Path: file})
		src, err := cfg.OpenSources()
		require.NoError(t, err)
		items, err := src.Items(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Zucchini", items[len(items)-1].Label)
	})

	t.Run("broken file", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		cfg.Sources[0] = SourceConfig{Name: "veg", Type: SourceFile, Path: filepath.Join(t.TempDir(), "none.yaml")}
		_, err := cfg.OpenSources()
		require.ErrorContains(t, err, "open source veg")
	})
}
