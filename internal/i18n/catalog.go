// Package i18n provides message bundles for the widgets. Catalogs are YAML
// files named after a BCP 47 tag; nested keys are flattened into dotted
// paths such as "combobox.required".
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	tuierrors "github.com/alexisbeaulieu97/tuikit/pkg/errors"
)

//go:embed locales/*.yaml
var embedded embed.FS

// DefaultLocale is used when negotiation fails and as the fallback for
// missing keys.
const DefaultLocale = "en"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Catalog holds every loaded locale.
type Catalog struct {
	bundles map[language.Tag]*Bundle
	tags    []language.Tag
	matcher language.Matcher
}

// Load reads the catalogs shipped with the library.
func Load() (*Catalog, error) {
	return LoadFS(embedded, "locales")
}

// LoadFS reads every *.yaml file of dir in fsys. The catalog for
// DefaultLocale must be present.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	sort.Strings(files)

	c := &Catalog{bundles: make(map[language.Tag]*Bundle)}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".yaml")
		tag, err := language.Parse(name)
		if err != nil {
			return nil, tuierrors.NewParseError(file, 0, fmt.Errorf("catalog name is not a language tag: %w", err))
		}

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", file, err)
		}
		messages, err := parseCatalog(data)
		if err != nil {
			return nil, tuierrors.NewParseError(file, extractLine(err), err)
		}

		c.bundles[tag] = &Bundle{tag: tag, messages: messages}
		c.tags = append(c.tags, tag)
	}

	fallback, ok := c.bundles[language.Make(DefaultLocale)]
	if !ok {
		return nil, fmt.Errorf("catalog %q not found in %s", DefaultLocale, dir)
	}
	for tag, bundle := range c.bundles {
		if tag != fallback.tag {
			bundle.fallback = fallback
		}
	}

	// The matcher prefers its first tag when nothing matches.
	ordered := make([]language.Tag, 0, len(c.tags))
	ordered = append(ordered, fallback.tag)
	for _, tag := range c.tags {
		if tag != fallback.tag {
			ordered = append(ordered, tag)
		}
	}
	c.tags = ordered
	c.matcher = language.NewMatcher(ordered)
	return c, nil
}

// Bundle negotiates the best bundle for the requested locales, such as
// "fr-CA" or an Accept-Language style list "de-CH, fr;q=0.8".
func (c *Catalog) Bundle(requested ...string) *Bundle {
	var prefs []language.Tag
	for _, r := range requested {
		tags, _, err := language.ParseAcceptLanguage(r)
		if err != nil {
			continue
		}
		prefs = append(prefs, tags...)
	}
	_, index, _ := c.matcher.Match(prefs...)
	return c.bundles[c.tags[index]]
}

// Locales lists the loaded locales, the default first.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.tags))
	for i, tag := range c.tags {
		out[i] = tag.String()
	}
	return out
}

// Bundle is the message set of one locale.
type Bundle struct {
	tag      language.Tag
	messages map[string]string
	fallback *Bundle
}

// Locale returns the bundle's language tag.
func (b *Bundle) Locale() string {
	return b.tag.String()
}

// Message returns the text for key, falling back to the default locale and
// then to the key itself.
func (b *Bundle) Message(key string) string {
	if b == nil {
		return key
	}
	if msg, ok := b.messages[key]; ok {
		return msg
	}
	if b.fallback != nil {
		return b.fallback.Message(key)
	}
	return key
}

// Format returns Message(key) with {name} placeholders replaced by args.
func (b *Bundle) Format(key string, args map[string]any) string {
	msg := b.Message(key)
	if len(args) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Keys returns the keys defined by this bundle alone, sorted.
func (b *Bundle) Keys() []string {
	keys := make([]string, 0, len(b.messages))
	for key := range b.messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func parseCatalog(data []byte) (map[string]string, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	messages := make(map[string]string)
	if err := flatten("", root, messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			if err := flatten(full, v, out); err != nil {
				return err
			}
		case string:
			out[full] = v
		case nil:
			return fmt.Errorf("key %q has no message", full)
		default:
			out[full] = fmt.Sprint(v)
		}
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
