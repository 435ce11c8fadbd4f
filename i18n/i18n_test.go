package i18n

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestIdentity(t *testing.T) {
	if got := Identity.Translate("Hello %d"); got != "Hello %d" {
		t.Errorf("unexpected %q", got)
	}
}

func TestCatalog(t *testing.T) {
	cat := NewCatalog()
	if tr := cat.Translator(language.French); tr.Translate("Depth") != "Depth" {
		t.Error("empty catalog should not translate")
	}

	for src, dst := range map[string]string{
		"Depth":      "Profondeur",
		"Rays: 100%": "Rayons : 100 %",
	} {
		if err := cat.Set(language.French, src, dst); err != nil {
			t.Fatal(err)
		}
	}
	if err := cat.Set(language.German, "Depth", "Tiefe"); err != nil {
		t.Fatal(err)
	}

	fr := cat.Translator(language.MustParse("fr-CA"))
	for src, want := range map[string]string{
		"Depth":      "Profondeur",
		"Rays: 100%": "Rayons : 100 %",
		"Unknown %s": "Unknown %s",
	} {
		if got := fr.Translate(src); got != want {
			t.Errorf("Translate(%q): expected %q, got %q", src, want, got)
		}
	}

	if got := cat.Translator(language.German).Translate("Depth"); got != "Tiefe" {
		t.Errorf("unexpected german translation %q", got)
	}
	if got := cat.Translator(language.Japanese).Translate("Depth"); got != "Depth" {
		t.Errorf("unsupported language should not translate, got %q", got)
	}
	if n := cat.Len(language.French); n != 2 {
		t.Errorf("expected 2 french translations, got %d", n)
	}
	if langs := cat.Languages(); len(langs) != 2 || langs[0] != language.French {
		t.Errorf("unexpected languages %v", langs)
	}
}

func TestParseLanguage(t *testing.T) {
	for in, want := range map[string]string{
		"fr":          "fr",
		"fr_FR":       "fr-FR",
		"de_DE.UTF-8": "de-DE",
		"pt-BR":       "pt-BR",
	} {
		tag, err := ParseLanguage(in)
		if err != nil || tag.String() != want {
			t.Errorf("ParseLanguage(%q): expected %s, got %s %v", in, want, tag, err)
		}
	}
	if _, err := ParseLanguage("not a language"); err == nil {
		t.Error("expected error for invalid language")
	}
}

const tsLatin1 = `<?xml version="1.0" encoding="ISO-8859-1"?>
<!DOCTYPE TS>
<TS version="2.1" language="fr_FR">
<context>
    <name>main</name>
    <message>
        <source>Duration</source>
        <translation>Dur` + "\xe9" + `e</translation>
    </message>
    <message>
        <source>Pending</source>
        <translation type="unfinished">En attente</translation>
    </message>
</context>
<context>
    <name>draw</name>
    <message>
        <source>Walls</source>
        <translation>Murs</translation>
    </message>
    <message>
        <source>Empty</source>
        <translation></translation>
    </message>
</context>
</TS>
`

func TestReadTS(t *testing.T) {
	cat := NewCatalog()
	tag, n, err := cat.ReadTS(strings.NewReader(tsLatin1), language.Und)
	if err != nil {
		t.Fatal(err)
	}
	if tag.String() != "fr-FR" || n != 2 {
		t.Errorf("expected 2 fr-FR translations, got %d %s", n, tag)
	}
	tr := cat.Translator(language.French)
	for src, want := range map[string]string{
		"Duration": "Durée",
		"Walls":    "Murs",
		"Pending":  "Pending",
		"Empty":    "Empty",
	} {
		if got := tr.Translate(src); got != want {
			t.Errorf("Translate(%q): expected %q, got %q", src, want, got)
		}
	}
}

func TestReadTSInvalid(t *testing.T) {
	cat := NewCatalog()
	if _, _, err := cat.ReadTS(strings.NewReader("<TS><context>"), language.Und); err == nil {
		t.Error("expected error for truncated file")
	}
	if _, _, err := cat.ReadTS(strings.NewReader("<TS></TS>"), language.Und); err == nil {
		t.Error("expected error for missing language")
	}
	if _, n, err := cat.ReadTS(strings.NewReader("<TS></TS>"), language.Italian); err != nil || n != 0 {
		t.Errorf("explicit language should be accepted: %d %v", n, err)
	}
}

func TestReadTOML(t *testing.T) {
	const table = `
language = "de"

[messages]
"Depth" = "Tiefe"
"Walls" = "Wände"
`
	cat := NewCatalog()
	tag, n, err := cat.ReadTOML(strings.NewReader(table), language.Und)
	if err != nil {
		t.Fatal(err)
	}
	if tag != language.German || n != 2 {
		t.Errorf("expected 2 german translations, got %d %s", n, tag)
	}
	if got := cat.Translator(language.German).Translate("Walls"); got != "Wände" {
		t.Errorf("unexpected translation %q", got)
	}

	if _, _, err := cat.ReadTOML(strings.NewReader(`[messages]`), language.Und); err == nil {
		t.Error("expected error for missing language")
	}
	if _, _, err := cat.ReadTOML(strings.NewReader(`language = `), language.Und); err == nil {
		t.Error("expected error for invalid toml")
	}
}
