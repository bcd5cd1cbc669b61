package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/tuikit/internal/sources"
)

// Open builds the source described by s.
func (s SourceConfig) Open() (sources.Source, error) {
	switch s.Type {
	case SourceStatic:
		return sources.NewStatic(s.Name, s.Items...), nil
	case SourceFile:
		return sources.LoadStaticFile(s.Path)
	case SourceGit:
		var opts []sources.GitOption
		if s.SkipTags {
			opts = append(opts, sources.WithoutTags())
		}
		return sources.NewGitRefs(s.Path, opts...), nil
	default:
		return nil, fmt.Errorf("unknown source type %q", s.Type)
	}
}

// OpenSources builds every configured source, combined in order.
func (c *Config) OpenSources() (sources.Source, error) {
	opened := make([]sources.Source, 0, len(c.Sources))
	for _, sc := range c.Sources {
		src, err := sc.Open()
		if err != nil {
			return nil, fmt.Errorf("open source %s: %w", sc.Name, err)
		}
		opened = append(opened, src)
	}
	if len(opened) == 1 {
		return opened[0], nil
	}
	return sources.NewMulti(opened...), nil
}
