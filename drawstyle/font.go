package drawstyle

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FontStyle is the slant of a font.
type FontStyle uint8

const (
	StyleNormal FontStyle = iota
	StyleItalic
	StyleOblique
)

func (s FontStyle) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	default:
		return "<unknown FontStyle>"
	}
}

// Usual font weights.
const (
	WeightNormal = 400
	WeightBold   = 700
)

// Font is the parsed form of a CSS font shorthand such as
// "20px sans-serif" or "italic bold 12pt monospace".
type Font struct {
	Style  FontStyle
	Weight int
	Size   float64 // in pixels
	Family string  // first family of the list, unquoted
}

// String returns the shorthand notation of the font, which ParseFont accepts.
func (f Font) String() string {
	var chunks []string
	if f.Style != StyleNormal {
		chunks = append(chunks, f.Style.String())
	}
	switch f.Weight {
	case WeightNormal, 0:
	case WeightBold:
		chunks = append(chunks, "bold")
	default:
		chunks = append(chunks, strconv.Itoa(f.Weight))
	}
	chunks = append(chunks, strconv.FormatFloat(f.Size, 'g', -1, 64)+"px", f.Family)
	return strings.Join(chunks, " ")
}

// IsBold returns true for weights of at least 600.
func (f Font) IsBold() bool { return f.Weight >= 600 }

// ParseFont parses a CSS font shorthand: optional style, variant and weight
// keywords, then a mandatory size (px or pt, optionally followed by
// "/line-height"), then the family list.
func ParseFont(s string) (Font, error) {
	out := Font{Style: StyleNormal, Weight: WeightNormal}
	fields := strings.Fields(s)
	i := 0
	for ; i < len(fields); i++ {
		tok := strings.ToLower(fields[i])
		switch tok {
		case "normal", "small-caps":
			continue
		case "italic":
			out.Style = StyleItalic
			continue
		case "oblique":
			out.Style = StyleOblique
			continue
		case "bold", "bolder":
			out.Weight = WeightBold
			continue
		case "lighter":
			out.Weight = 300
			continue
		}
		if w, err := strconv.Atoi(tok); err == nil && w >= 100 && w <= 900 && w%100 == 0 {
			out.Weight = w
			continue
		}
		break
	}
	if i >= len(fields) {
		return Font{}, fmt.Errorf("%w: missing size in %q", ErrInvalidFont, s)
	}
	size, err := parseFontSize(fields[i])
	if err != nil {
		return Font{}, fmt.Errorf("%w: %q: %v", ErrInvalidFont, s, err)
	}
	out.Size = size

	families := strings.TrimSpace(strings.Join(fields[i+1:], " "))
	if families == "" {
		return Font{}, fmt.Errorf("%w: missing family in %q", ErrInvalidFont, s)
	}
	first := strings.TrimSpace(strings.Split(families, ",")[0])
	out.Family = strings.Trim(first, `"'`)
	return out, nil
}

// MustParseFont is like ParseFont but panics on error.
func MustParseFont(s string) Font {
	f, err := ParseFont(s)
	if err != nil {
		panic(err)
	}
	return f
}

func parseFontSize(tok string) (float64, error) {
	if idx := strings.IndexByte(tok, '/'); idx >= 0 {
		tok = tok[:idx] // line height is ignored
	}
	tok = strings.ToLower(tok)
	points := false
	switch {
	case strings.HasSuffix(tok, "px"):
		tok = strings.TrimSuffix(tok, "px")
	case strings.HasSuffix(tok, "pt"):
		tok = strings.TrimSuffix(tok, "pt")
		points = true
	default:
		return 0, fmt.Errorf("unsupported size unit in %q", tok)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid size %g", v)
	}
	if v <= 0 {
		return 0, fmt.Errorf("non positive size %g", v)
	}
	if points {
		return v * 4 / 3, nil // 1pt = 4/3 px
	}
	return v, nil
}
