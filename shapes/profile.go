package shapes

import (
	"fmt"
	"sort"
	"strings"
)

// CircleStroke selects the stroke color set by Circle.
type CircleStroke uint8

const (
	// CircleStrokeMatch sets the stroke color to the disc color.
	CircleStrokeMatch CircleStroke = iota
	// CircleStrokeNone sets the stroke color to transparent.
	CircleStrokeNone
)

func (c CircleStroke) String() string {
	switch c {
	case CircleStrokeMatch:
		return "match"
	case CircleStrokeNone:
		return "none"
	default:
		return "<unknown CircleStroke>"
	}
}

// BorderMode decides how the border of a rectangle is painted.
type BorderMode uint8

const (
	// BorderStroke strokes the border with the shape color and line width.
	BorderStroke BorderMode = iota
	// BorderThin resets the line width to 1 and still strokes the border.
	BorderThin
	// BorderNone paints no border.
	BorderNone
)

func (b BorderMode) String() string {
	switch b {
	case BorderStroke:
		return "stroke"
	case BorderThin:
		return "thin"
	case BorderNone:
		return "none"
	default:
		return "<unknown BorderMode>"
	}
}

// Profile configures the behavior of a Drawer.
type Profile struct {
	Name string

	// Scoped helpers save the context style before drawing
	// and restore it afterwards. Unscoped helpers leave the
	// style they set on the context.
	Scoped bool

	// CircleStroke is the stroke color set by Circle.
	CircleStroke CircleStroke

	// NoBorder is what a rectangle drawn with Border(false) gets.
	NoBorder BorderMode
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (scoped=%t, circle stroke=%s, no border=%s)", p.Name, p.Scoped, p.CircleStroke, p.NoBorder)
}

// Predefined profiles. Standard is the recommended one; the others
// reproduce the behavior the helpers had in each visualizer.
var (
	Standard = Profile{Name: "standard", Scoped: true, CircleStroke: CircleStrokeMatch, NoBorder: BorderNone}

	QuadTree     = Profile{Name: "quadtree", Scoped: true, CircleStroke: CircleStrokeMatch, NoBorder: BorderThin}
	Raycasting   = Profile{Name: "raycasting", Scoped: true, CircleStroke: CircleStrokeMatch, NoBorder: BorderThin}
	RayCasting2D = Profile{Name: "raycasting2d", Scoped: false, CircleStroke: CircleStrokeNone, NoBorder: BorderNone}
)

var profiles = map[string]Profile{
	Standard.Name:     Standard,
	QuadTree.Name:     QuadTree,
	Raycasting.Name:   Raycasting,
	RayCasting2D.Name: RayCasting2D,
}

// ProfileByName returns the predefined profile with the given
// (case insensitive) name.
func ProfileByName(name string) (Profile, error) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (expected one of %s)", name, strings.Join(ProfileNames(), ", "))
	}
	return p, nil
}

// ProfileNames returns the sorted names of the predefined profiles.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
