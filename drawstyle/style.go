// Package drawstyle describes the ambient style of a drawing context:
// stroke and fill colors, line width and font.
//
// Styles are plain values: copying a Style snapshots it, which is
// how contexts implement their save/restore stack.
package drawstyle

import (
	"errors"
	"image/color"
)

var (
	// ErrInvalidColor is returned when a color string can't be parsed.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidFont is returned when a font string can't be parsed.
	ErrInvalidFont = errors.New("invalid font")
)

// Transparent is the fully transparent color, used for "transparent" and "none".
var Transparent = color.NRGBA{}

// Style is the ambient paint state of a drawing context.
type Style struct {
	StrokeColor color.Color
	FillColor   color.Color
	LineWidth   float64
	Font        Font
}

// Default is the initial style of a fresh context: black paints,
// a one pixel line and a 10px sans-serif font.
var Default = Style{
	StrokeColor: color.NRGBA{A: 0xff},
	FillColor:   color.NRGBA{A: 0xff},
	LineWidth:   1,
	Font:        Font{Style: StyleNormal, Weight: WeightNormal, Size: 10, Family: "sans-serif"},
}

// Equal reports whether s and o describe the same paint state.
// Colors are compared by their premultiplied RGBA values.
func (s Style) Equal(o Style) bool {
	return SameColor(s.StrokeColor, o.StrokeColor) &&
		SameColor(s.FillColor, o.FillColor) &&
		s.LineWidth == o.LineWidth &&
		s.Font == o.Font
}

// SameColor compares two colors by value. Two nil colors are equal.
func SameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// IsTransparent returns true for nil or fully transparent colors,
// which paint nothing.
func IsTransparent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a == 0
}
