package drawstyle

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color: a named color, "transparent" or "none",
// a #rgb, #rgba, #rrggbb or #rrggbbaa hex value, or one of the
// rgb(), rgba(), hsl() and hsla() functional notations.
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return nil, fmt.Errorf("%w: empty string", ErrInvalidColor)
	case v == "transparent" || v == "none":
		return Transparent, nil
	case v[0] == '#':
		return parseHex(v[1:])
	case strings.HasPrefix(v, "rgb"):
		args, err := functionArgs(v, "rgba", "rgb")
		if err != nil {
			return nil, err
		}
		return parseRGB(args)
	case strings.HasPrefix(v, "hsl"):
		args, err := functionArgs(v, "hsla", "hsl")
		if err != nil {
			return nil, err
		}
		return parseHSL(args)
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics on error.
// It is meant for package level variables.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatColor returns the #rrggbbaa notation of c.
func FormatColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func parseHex(h string) (color.Color, error) {
	var digits [8]uint8
	switch len(h) {
	case 3, 4:
		for i := 0; i < len(h); i++ {
			d, err := strconv.ParseUint(h[i:i+1], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidColor, err)
			}
			digits[i] = uint8(d * 17)
		}
		if len(h) == 3 {
			digits[3] = 0xff
		}
	case 6, 8:
		for i := 0; i < len(h); i += 2 {
			d, err := strconv.ParseUint(h[i:i+2], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidColor, err)
			}
			digits[i/2] = uint8(d)
		}
		if len(h) == 6 {
			digits[3] = 0xff
		}
	default:
		return nil, fmt.Errorf("%w: bad hex length in #%s", ErrInvalidColor, h)
	}
	return color.NRGBA{R: digits[0], G: digits[1], B: digits[2], A: digits[3]}, nil
}

// functionArgs returns the comma (or space) separated arguments
// of a notation like rgb(1, 2, 3).
func functionArgs(v string, names ...string) ([]string, error) {
	for _, name := range names {
		if !strings.HasPrefix(v, name+"(") {
			continue
		}
		if !strings.HasSuffix(v, ")") {
			return nil, fmt.Errorf("%w: missing closing parenthesis in %q", ErrInvalidColor, v)
		}
		inner := v[len(name)+1 : len(v)-1]
		inner = strings.ReplaceAll(inner, "/", " ")
		fields := strings.FieldsFunc(inner, func(r rune) bool { return r == ',' || r == ' ' })
		return fields, nil
	}
	return nil, fmt.Errorf("%w: unknown notation %q", ErrInvalidColor, v)
}

// readChannel reads an integer (0-255) or a percentage.
func readChannel(s string) (uint8, error) {
	var (
		f   float64
		err error
	)
	if strings.HasSuffix(s, "%") {
		f, err = strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		f = f * 255 / 100
	} else {
		f, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return uint8(math.Round(clamp(f, 0, 255))), nil
}

// readAlpha reads a fraction (0-1) or a percentage.
func readAlpha(s string) (uint8, error) {
	var (
		f   float64
		err error
	)
	if strings.HasSuffix(s, "%") {
		f, err = strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		f /= 100
	} else {
		f, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return uint8(math.Round(clamp(f, 0, 1) * 255)), nil
}

func parseRGB(args []string) (color.Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("%w: rgb expects 3 or 4 values, got %d", ErrInvalidColor, len(args))
	}
	var out [4]uint8
	out[3] = 0xff
	for i := 0; i < 3; i++ {
		c, err := readChannel(args[i])
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	if len(args) == 4 {
		a, err := readAlpha(args[3])
		if err != nil {
			return nil, err
		}
		out[3] = a
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}

func parseHSL(args []string) (color.Color, error) {
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("%w: hsl expects 3 or 4 values, got %d", ErrInvalidColor, len(args))
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	var sl [2]float64
	for i, a := range args[1:3] {
		f, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidColor, err)
		}
		sl[i] = clamp(f/100, 0, 1)
	}
	var alpha uint8 = 0xff
	if len(args) == 4 {
		if alpha, err = readAlpha(args[3]); err != nil {
			return nil, err
		}
	}
	r, g, b := hslToRGB(math.Mod(math.Mod(h, 360)+360, 360)/360, sl[0], sl[1])
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	conv := func(t float64) uint8 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		var v float64
		switch {
		case t < 1./6:
			v = p + (q-p)*6*t
		case t < 1./2:
			v = q
		case t < 2./3:
			v = p + (q-p)*(2./3-t)*6
		default:
			v = p
		}
		return uint8(math.Round(v * 255))
	}
	return conv(h + 1./3), conv(h), conv(h - 1./3)
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
