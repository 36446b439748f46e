// Package i18n resolves dotted translation keys such as "apps.about.title"
// against the embedded English and French catalogs.
package i18n

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"tahaos/pkg/settings"
)

//go:embed locales/en.yaml
var englishData []byte

//go:embed locales/fr.yaml
var frenchData []byte

// Catalog is a nested tree of translations.
type Catalog map[string]any

// Parse decodes a YAML catalog.
func Parse(data []byte) (Catalog, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if tree == nil {
		tree = map[string]any{}
	}
	return Catalog(tree), nil
}

// Lookup walks key segment by segment. It reports false when a segment is
// missing or the key names a subtree rather than a string.
func (c Catalog) Lookup(key string) (string, bool) {
	var node any = c
	for _, part := range strings.Split(key, ".") {
		var m map[string]any
		switch n := node.(type) {
		case Catalog:
			m = n
		case map[string]any:
			m = n
		default:
			return "", false
		}
		next, ok := m[part]
		if !ok {
			return "", false
		}
		node = next
	}
	s, ok := node.(string)
	return s, ok
}

var (
	loadOnce sync.Once
	catalogs map[settings.Language]Catalog
)

func load() {
	catalogs = map[settings.Language]Catalog{
		settings.LanguageEnglish: mustParse(englishData),
		settings.LanguageFrench:  mustParse(frenchData),
	}
}

func mustParse(data []byte) Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return c
}

// T returns the translation of key in lang, or key itself when there is
// none.
func T(lang settings.Language, key string) string {
	loadOnce.Do(load)
	if s, ok := catalogs[lang].Lookup(key); ok {
		return s
	}
	return key
}

