// Package i18n provides the translation lookup used when drawing text:
// a source string is mapped to its translation in the target language,
// and mapped to itself when no translation exists.
//
// Translations are stored in a golang.org/x/text message catalog and can be
// loaded from Qt Linguist .ts files or from TOML tables.
package i18n

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator resolves a source string to the string to display.
type Translator interface {
	Translate(source string) string
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(string) string

func (f TranslatorFunc) Translate(source string) string { return f(source) }

// Identity returns its input unchanged.
var Identity Translator = TranslatorFunc(func(s string) string { return s })

// Catalog stores translations for several languages.
// It is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	builder *catalog.Builder
	langs   []language.Tag
	keys    map[language.Tag]map[string]struct{}
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		builder: catalog.NewBuilder(),
		keys:    make(map[language.Tag]map[string]struct{}),
	}
}

// Set registers the translation of `source` in language `tag`.
func (c *Catalog) Set(tag language.Tag, source, translation string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// the printer formats messages, so verbs must be escaped
	if err := c.builder.SetString(tag, source, strings.ReplaceAll(translation, "%", "%%")); err != nil {
		return fmt.Errorf("registering translation of %q: %w", source, err)
	}
	keys, ok := c.keys[tag]
	if !ok {
		keys = make(map[string]struct{})
		c.keys[tag] = keys
		c.langs = append(c.langs, tag)
	}
	keys[source] = struct{}{}
	return nil
}

// Languages returns the languages with at least one translation,
// in registration order.
func (c *Catalog) Languages() []language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]language.Tag(nil), c.langs...)
}

// Len returns the number of translations registered for `tag`.
func (c *Catalog) Len(tag language.Tag) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys[tag])
}

// Translator returns the lookup for the catalog language best matching
// `tag`. When no language matches, Identity is returned.
// Translations added to the catalog later are visible to the returned value.
func (c *Catalog) Translator(tag language.Tag) Translator {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.langs) == 0 {
		return Identity
	}
	_, idx, conf := language.NewMatcher(c.langs).Match(tag)
	if conf == language.No {
		return Identity
	}
	supported := c.langs[idx]
	return &catalogTranslator{
		catalog: c,
		tag:     supported,
		printer: message.NewPrinter(supported, message.Catalog(c.builder)),
	}
}

type catalogTranslator struct {
	catalog *Catalog
	tag     language.Tag
	printer *message.Printer
}

func (t *catalogTranslator) Translate(source string) string {
	t.catalog.mu.RLock()
	_, ok := t.catalog.keys[t.tag][source]
	t.catalog.mu.RUnlock()
	if !ok {
		return source
	}
	return t.printer.Sprintf(source)
}
