package drawstyle

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in   string
		want color.NRGBA
	}{
		{"red", color.NRGBA{255, 0, 0, 255}},
		{"  SteelBlue ", color.NRGBA{70, 130, 180, 255}},
		{"transparent", color.NRGBA{}},
		{"none", color.NRGBA{}},
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"#f008", color.NRGBA{255, 0, 0, 0x88}},
		{"#00ff00", color.NRGBA{0, 255, 0, 255}},
		{"#0000ff80", color.NRGBA{0, 0, 255, 0x80}},
		{"rgb(1, 2, 3)", color.NRGBA{1, 2, 3, 255}},
		{"rgba(10,20,30,0.5)", color.NRGBA{10, 20, 30, 128}},
		{"rgb(100%, 0%, 50%)", color.NRGBA{255, 0, 128, 255}},
		{"rgb(300, -4, 0)", color.NRGBA{255, 0, 0, 255}},
		{"hsl(120, 100%, 50%)", color.NRGBA{0, 255, 0, 255}},
		{"hsla(0, 100%, 50%, 0)", color.NRGBA{255, 0, 0, 0}},
	} {
		c, err := ParseColor(test.in)
		if err != nil {
			t.Errorf("ParseColor(%q): unexpected error %s", test.in, err)
			continue
		}
		if !SameColor(c, test.want) {
			t.Errorf("ParseColor(%q): expected %v, got %v", test.in, test.want, c)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "reddish", "#12", "#ggg", "rgb(1,2)", "rgb(1,2,3", "rgb(a,b,c)", "hsl(x,1%,1%)", "cmyk(1,2,3,4)"} {
		_, err := ParseColor(in)
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q): expected ErrInvalidColor, got %v", in, err)
		}
	}
}

func TestFormatColor(t *testing.T) {
	if got := FormatColor(MustParseColor("rgba(255, 0, 16, 1)")); got != "#ff0010ff" {
		t.Errorf("unexpected format %s", got)
	}
	if got := FormatColor(nil); got != "none" {
		t.Errorf("unexpected format %s", got)
	}
}

func TestStyleEqual(t *testing.T) {
	s := Default
	o := Default
	o.StrokeColor = color.RGBA{A: 255} // same value, other type
	if !s.Equal(o) {
		t.Error("styles with equal colors should be equal")
	}
	o.LineWidth = 2
	if s.Equal(o) {
		t.Error("styles with different line widths should differ")
	}
	if !IsTransparent(nil) || !IsTransparent(Transparent) || IsTransparent(color.Black) {
		t.Error("unexpected transparency")
	}
}
