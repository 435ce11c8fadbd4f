package i18n

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// tomlTable is a flat translation table:
//
//	language = "fr"
//
//	[messages]
//	"Depth" = "Profondeur"
type tomlTable struct {
	Language string            `toml:"language"`
	Messages map[string]string `toml:"messages"`
}

// ReadTOML reads a TOML translation table and adds it to `c`.
// The language of the table is used unless `tag` is not language.Und.
func (c *Catalog) ReadTOML(r io.Reader, tag language.Tag) (language.Tag, int, error) {
	var table tomlTable
	if _, err := toml.NewDecoder(r).Decode(&table); err != nil {
		return tag, 0, fmt.Errorf("invalid translation table: %w", err)
	}
	if tag == language.Und {
		if table.Language == "" {
			return tag, 0, fmt.Errorf("invalid translation table: missing language")
		}
		var err error
		tag, err = ParseLanguage(table.Language)
		if err != nil {
			return tag, 0, fmt.Errorf("invalid translation table: %w", err)
		}
	}

	sources := make([]string, 0, len(table.Messages))
	for source := range table.Messages {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	for i, source := range sources {
		if err := c.Set(tag, source, table.Messages[source]); err != nil {
			return tag, i, err
		}
	}
	return tag, len(sources), nil
}

// ReadTOMLFile is like ReadTOML for a file on disk.
func (c *Catalog) ReadTOMLFile(path string, tag language.Tag) (language.Tag, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return tag, 0, err
	}
	defer f.Close()
	return c.ReadTOML(f, tag)
}
