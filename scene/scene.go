// Package scene describes a list of shape draw calls in TOML,
// and replays them on a drawing context.
//
//	width = 200
//	height = 100
//	background = "white"
//
//	[[shape]]
//	kind = "rect_center"
//	x = 100
//	y = 50
//	w = 40
//	h = 20
//	color = "gold"
//	border_color = "black"
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/benoitkugler/shapedraw/canvas"
	"github.com/benoitkugler/shapedraw/drawstyle"
	"github.com/benoitkugler/shapedraw/shapes"
)

// Kind is the helper a Shape is drawn with.
type Kind string

const (
	KindLine       Kind = "line"
	KindCircle     Kind = "circle"
	KindRect       Kind = "rect"
	KindRectCenter Kind = "rect_center"
	KindText       Kind = "text"
)

// ErrInvalidScene wraps every validation failure.
var ErrInvalidScene = errors.New("invalid scene")

// Scene is a canvas description and the shapes to draw on it.
type Scene struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`

	// Profile is the name of a shapes profile, "standard" if empty.
	Profile string `toml:"profile"`
	// Language selects the translations used for texts.
	Language string `toml:"language"`
	// Translations are .ts or .toml files, relative to the scene file.
	Translations []string `toml:"translations"`

	Shapes []Shape `toml:"shape"`

	dir string // directory of the scene file, for relative paths
}

// Shape is one draw call. Optional fields are pointers so that
// the helper defaults apply when they are omitted.
type Shape struct {
	Kind Kind `toml:"kind"`

	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	X2     float64 `toml:"x2"`
	Y2     float64 `toml:"y2"`
	W      float64 `toml:"w"`
	H      float64 `toml:"h"`
	Radius float64 `toml:"radius"`
	Text   string  `toml:"text"`

	Color       string `toml:"color"`
	BorderColor string `toml:"border_color"`

	Fill      *bool    `toml:"fill"`
	LineWidth *float64 `toml:"line_width"`
	Border    *bool    `toml:"border"`
	Font      string   `toml:"font"`
	Align     string   `toml:"align"`
}

// Decode reads and validates a scene. Unknown keys are rejected.
func Decode(r io.Reader) (*Scene, error) {
	var sc Scene
	md, err := toml.NewDecoder(r).Decode(&sc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScene, strings.Join(keys, ", "))
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads the scene file at `path`.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.dir = filepath.Dir(path)
	return sc, nil
}

// TranslationPaths returns the translation files, resolved
// relatively to the scene file.
func (sc *Scene) TranslationPaths() []string {
	out := make([]string, len(sc.Translations))
	for i, p := range sc.Translations {
		if !filepath.IsAbs(p) && sc.dir != "" {
			p = filepath.Join(sc.dir, p)
		}
		out[i] = p
	}
	return out
}

// Validate checks the scene dimensions and every shape.
func (sc *Scene) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("%w: non positive size %dx%d", ErrInvalidScene, sc.Width, sc.Height)
	}
	if sc.Background != "" {
		if _, err := drawstyle.ParseColor(sc.Background); err != nil {
			return fmt.Errorf("%w: background: %v", ErrInvalidScene, err)
		}
	}
	if sc.Profile != "" {
		if _, err := shapes.ProfileByName(sc.Profile); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidScene, err)
		}
	}
	for i, s := range sc.Shapes {
		if err := s.validate(); err != nil {
			return fmt.Errorf("%w: shape %d: %v", ErrInvalidScene, i, err)
		}
	}
	return nil
}

func (s Shape) validate() error {
	switch s.Kind {
	case KindLine, KindCircle, KindRect, KindRectCenter, KindText:
	case "":
		return errors.New("missing kind")
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
	if s.Kind == KindCircle && s.Radius <= 0 {
		return fmt.Errorf("non positive radius %g", s.Radius)
	}
	if _, err := parseAlign(s.Align); err != nil {
		return err
	}
	for _, c := range [...]string{s.Color, s.BorderColor} {
		if c == "" {
			continue
		}
		if _, err := drawstyle.ParseColor(c); err != nil {
			return err
		}
	}
	if s.Font != "" {
		if _, err := drawstyle.ParseFont(s.Font); err != nil {
			return err
		}
	}
	return nil
}

func parseAlign(s string) (shapes.Align, error) {
	switch strings.ToLower(s) {
	case "", "left", "start":
		return shapes.AlignLeft, nil
	case "center":
		return shapes.AlignCenter, nil
	case "right", "end":
		return shapes.AlignRight, nil
	default:
		return 0, fmt.Errorf("unknown text alignment %q", s)
	}
}

func (s Shape) options() []shapes.Option {
	var opts []shapes.Option
	if s.Fill != nil {
		opts = append(opts, shapes.Fill(*s.Fill))
	}
	if s.LineWidth != nil {
		opts = append(opts, shapes.LineWidth(*s.LineWidth))
	}
	if s.Border != nil {
		opts = append(opts, shapes.Border(*s.Border))
	}
	if s.Font != "" {
		opts = append(opts, shapes.Font(s.Font))
	}
	if align, _ := parseAlign(s.Align); align != shapes.AlignLeft {
		opts = append(opts, shapes.TextAlign(align))
	}
	return opts
}

// Draw replays the shapes of the scene, in order. The background is
// not painted: it is the job of whoever creates the surface.
func (sc *Scene) Draw(d *shapes.Drawer, ctx *canvas.Context) {
	for _, s := range sc.Shapes {
		color := s.Color
		if color == "" {
			color = "black"
		}
		switch s.Kind {
		case KindLine:
			d.Line(ctx, s.X, s.Y, s.X2, s.Y2, color, s.options()...)
		case KindCircle:
			d.Circle(ctx, s.X, s.Y, s.Radius, color)
		case KindRect:
			d.Rect(ctx, s.X, s.Y, s.W, s.H, color, s.options()...)
		case KindRectCenter:
			border := s.BorderColor
			if border == "" {
				border = color
			}
			d.RectCenter(ctx, s.X, s.Y, s.W, s.H, color, border, s.options()...)
		case KindText:
			d.Text(ctx, s.Text, s.X, s.Y, color, s.options()...)
		}
	}
}
