package i18n

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/language"
)

// tsFile mirrors the subset of the Qt Linguist format we use.
type tsFile struct {
	XMLName  xml.Name `xml:"TS"`
	Language string   `xml:"language,attr"`
	Contexts []struct {
		Name     string `xml:"name"`
		Messages []struct {
			Source      string `xml:"source"`
			Translation struct {
				Type  string `xml:"type,attr"`
				Value string `xml:",chardata"`
			} `xml:"translation"`
		} `xml:"message"`
	} `xml:"context"`
}

// ParseLanguage accepts both BCP 47 tags ("fr-FR") and
// POSIX locale names ("fr_FR", "fr_FR.UTF-8").
func ParseLanguage(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return language.Parse(strings.ReplaceAll(s, "_", "-"))
}

// ReadTS reads a Qt Linguist translation file and adds its finished
// translations to `c`. The contexts of the file are merged.
// The language of the file is used unless `tag` is not language.Und.
// It returns the language of the translations and how many were added.
func (c *Catalog) ReadTS(r io.Reader, tag language.Tag) (language.Tag, int, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	var file tsFile
	if err := decoder.Decode(&file); err != nil {
		return tag, 0, fmt.Errorf("invalid ts file: %w", err)
	}
	if tag == language.Und {
		if file.Language == "" {
			return tag, 0, errors.New("invalid ts file: missing language attribute")
		}
		var err error
		tag, err = ParseLanguage(file.Language)
		if err != nil {
			return tag, 0, fmt.Errorf("invalid ts file: %w", err)
		}
	}
	added := 0
	for _, ctx := range file.Contexts {
		for _, msg := range ctx.Messages {
			switch msg.Translation.Type {
			case "unfinished", "obsolete", "vanished":
				continue
			}
			if msg.Translation.Value == "" {
				continue
			}
			if err := c.Set(tag, msg.Source, msg.Translation.Value); err != nil {
				return tag, added, err
			}
			added++
		}
	}
	return tag, added, nil
}

// ReadTSFile is like ReadTS for a file on disk.
func (c *Catalog) ReadTSFile(path string, tag language.Tag) (language.Tag, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return tag, 0, err
	}
	defer f.Close()
	return c.ReadTS(f, tag)
}
