package canvasraster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"github.com/benoitkugler/shapedraw/canvas"
	"github.com/benoitkugler/shapedraw/drawstyle"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFonts is the cache used by renderers created without one.
var DefaultFonts = NewFontCache()

// the Go fonts embedded in x/image, indexed by [mono][bold][italic]
var goFonts = [2][2][2][]byte{
	{
		{goregular.TTF, goitalic.TTF},
		{gobold.TTF, gobolditalic.TTF},
	},
	{
		{gomono.TTF, gomonoitalic.TTF},
		{gomonobold.TTF, gomonobolditalic.TTF},
	},
}

type faceKey struct {
	mono, bold, italic bool
	size               float64
}

// FontCache maps CSS fonts to font faces, built from the Go fonts.
// Monospace families use Go Mono, every other family uses Go Regular.
// It is safe for concurrent use.
type FontCache struct {
	mu    sync.Mutex
	fonts map[[3]bool]*opentype.Font
	faces map[faceKey]font.Face
}

func NewFontCache() *FontCache {
	return &FontCache{
		fonts: make(map[[3]bool]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

func isMonospace(family string) bool {
	switch f := strings.ToLower(family); {
	case f == "monospace", strings.Contains(f, "mono"), strings.HasPrefix(f, "courier"):
		return true
	default:
		return false
	}
}

// Face returns the face matching `f`, loading it on first use.
func (fc *FontCache) Face(f drawstyle.Font) (font.Face, error) {
	key := faceKey{
		mono:   isMonospace(f.Family),
		bold:   f.IsBold(),
		italic: f.Style != drawstyle.StyleNormal,
		size:   f.Size,
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if face, ok := fc.faces[key]; ok {
		return face, nil
	}
	variant := [3]bool{key.mono, key.bold, key.italic}
	otf, ok := fc.fonts[variant]
	if !ok {
		var err error
		otf, err = opentype.Parse(goFonts[b2i(key.mono)][b2i(key.bold)][b2i(key.italic)])
		if err != nil {
			return nil, fmt.Errorf("parsing embedded font: %w", err)
		}
		fc.fonts[variant] = otf
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72, // so that Size is in pixels
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face for %s: %w", f, err)
	}
	fc.faces[key] = face
	return face, nil
}

// DrawString draws `s` onto `dst`, the baseline starting at (x, y).
func (fc *FontCache) DrawString(dst draw.Image, f drawstyle.Font, s string, x, y float64, c color.Color) {
	face, err := fc.Face(f)
	if err != nil {
		canvas.Logger().Warn("can't draw text", "font", f.String(), "err", err)
		return
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	fc.mu.Lock() // faces are not safe for concurrent use
	defer fc.mu.Unlock()
	d.DrawString(s)
}

// MeasureString returns the advance width of `s`, in pixels.
func (fc *FontCache) MeasureString(f drawstyle.Font, s string) (float64, error) {
	face, err := fc.Face(f)
	if err != nil {
		return 0, err
	}
	fc.mu.Lock()
	defer fc.mu.Unlock()
	adv := font.MeasureString(face, s)
	return float64(adv) / 64, nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
