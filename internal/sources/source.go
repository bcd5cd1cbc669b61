// Package sources provides result providers for comboboxes. A Source loads
// items once; the owner ranks them against the typed query with Rank.
package sources

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	tuierrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

// Item is one selectable result.
type Item struct {
	Label    string `yaml:"label" toml:"label" validate:"required"`
	Value    string `yaml:"value,omitempty" toml:"value,omitempty"`
	Detail   string `yaml:"detail,omitempty" toml:"detail,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty" toml:"disabled,omitempty"`
}

// Key returns the value reported on selection, which defaults to the label.
func (i Item) Key() string {
	if i.Value != "" {
		return i.Value
	}
	return i.Label
}

func (i Item) String() string {
	if i.Detail == "" {
		return i.Label
	}
	return i.Label + " (" + i.Detail + ")"
}

// UnmarshalYAML accepts either a bare label or a mapping.
func (i *Item) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		i.Label = node.Value
		return nil
	}
	type plain Item
	return node.Decode((*plain)(i))
}

// Source loads items.
type Source interface {
	Name() string
	Items(ctx context.Context) ([]Item, error)
}

// Static serves a fixed list.
type Static struct {
	name  string
	items []Item
}

// NewStatic creates a source over items.
func NewStatic(name string, items ...Item) *Static {
	return &Static{name: name, items: items}
}

func (s *Static) Name() string {
	return s.name
}

// Items returns a copy of the list.
func (s *Static) Items(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// LoadStaticFile reads a YAML list of items. Entries are labels or
// label/value/detail mappings.
func LoadStaticFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, tuierrors.NewParseError(path, yamlLine(err), err)
	}
	for idx, item := range items {
		if item.Label == "" {
			return nil, tuierrors.NewValidationError(fmt.Sprintf("items[%d].label", idx), "label is required", nil)
		}
	}
	return NewStatic(path, items...), nil
}
