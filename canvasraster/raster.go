// Implements a raster backend for drawing contexts,
// by wrapping rasterx.
package canvasraster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/benoitkugler/shapedraw/canvas"
	"github.com/benoitkugler/shapedraw/drawstyle"
	"github.com/srwiley/rasterx"
)

var _ canvas.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dst    draw.Image
	fonts  *FontCache
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer painting into `dst`.
// If fonts is nil, the shared DefaultFonts cache is used.
func NewRenderer(dst draw.Image, fonts *FontCache) *Renderer {
	if fonts == nil {
		fonts = DefaultFonts
	}
	b := dst.Bounds()
	w, h := b.Max.X, b.Max.Y
	scanner := rasterx.NewScannerGV(w, h, dst, b)
	return &Renderer{
		dst:    dst,
		fonts:  fonts,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
	}
}

// NewContext returns a drawing context painting into `dst`,
// with the default font cache.
func NewContext(dst draw.Image) *canvas.Context {
	return canvas.New(NewRenderer(dst, nil))
}

// NewImage returns a width x height image filled with `background`.
// A nil background leaves the image transparent.
func NewImage(width, height int, background color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	return img
}

// Image returns the destination of the renderer.
func (rd *Renderer) Image() draw.Image { return rd.dst }

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f canvas.Filler, s canvas.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

// FillText draws the glyphs with golang.org/x/image/font, which
// handles its own anti-aliasing.
func (rd *Renderer) FillText(font drawstyle.Font, s string, x, y float64, c color.Color) {
	rd.fonts.DrawString(rd.dst, font, s, x, y, c)
}

// filler and stroker adapt the rasterx painters,
// whose SetColor accepts either a color or a gradient function.
// Colors are passed as is, so that translucent paints blend.
type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(c color.Color) {
	f.Filler.SetColor(c)
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(c color.Color) {
	s.Dasher.SetColor(c)
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		canvas.Miter: rasterx.Miter,
		canvas.Round: rasterx.Round,
		canvas.Bevel: rasterx.Bevel,
	}

	capToFunc = [...]rasterx.CapFunc{
		canvas.ButtCap:   rasterx.ButtCap,
		canvas.SquareCap: rasterx.SquareCap,
		canvas.RoundCap:  rasterx.RoundCap,
	}
)

func (s stroker) SetStrokeOptions(options canvas.StrokeOptions) {
	lineCap := capToFunc[options.LineCap]
	s.Dasher.SetStroke(
		options.LineWidth, options.MiterLimit, lineCap, lineCap,
		rasterx.FlatGap, joinToJoin[options.LineJoin],
		options.Dash.Dash, options.Dash.DashOffset,
	)
}

func (rd *Renderer) MeasureText(font drawstyle.Font, s string) (float64, error) {
	return rd.fonts.MeasureString(font, s)
}
