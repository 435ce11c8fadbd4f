package shapes

import (
	"math"

	"github.com/benoitkugler/shapedraw/canvas"
	"github.com/benoitkugler/shapedraw/drawstyle"
	"github.com/benoitkugler/shapedraw/i18n"
)

// Drawer draws shapes following a Profile, resolving
// texts with a Translator.
type Drawer struct {
	Profile    Profile
	Translator i18n.Translator
}

// New returns a drawer. A nil translator means i18n.Identity.
func New(profile Profile, tr i18n.Translator) *Drawer {
	if tr == nil {
		tr = i18n.Identity
	}
	return &Drawer{Profile: profile, Translator: tr}
}

// Default uses the Standard profile without translation.
var Default = New(Standard, nil)

// scoped runs fn, bracketed by Save and Restore for scoped profiles.
// The path is always left empty.
func (d *Drawer) scoped(ctx *canvas.Context, fn func()) {
	if d.Profile.Scoped {
		ctx.Save()
		defer ctx.Restore()
	}
	ctx.BeginPath()
	defer ctx.BeginPath()
	fn()
}

// Apply sets `style` on the context, runs fn and restores the previous
// style, whatever fn does to it.
func Apply(ctx *canvas.Context, style drawstyle.Style, fn func(ctx *canvas.Context)) {
	ctx.Save()
	defer ctx.Restore()
	ctx.SetStyle(style)
	fn(ctx)
}

// Line strokes the segment from (x1, y1) to (x2, y2).
// Only LineWidth applies.
func (d *Drawer) Line(ctx *canvas.Context, x1, y1, x2, y2 float64, color string, opts ...Option) {
	o := resolve(opts)
	d.scoped(ctx, func() {
		ctx.SetLineWidth(o.lineWidth)
		ctx.SetStrokeStyle(color)
		ctx.MoveTo(x1, y1)
		ctx.LineTo(x2, y2)
		ctx.ClosePath()
		ctx.Stroke()
	})
}

// Circle fills the disc of center (x, y).
func (d *Drawer) Circle(ctx *canvas.Context, x, y, radius float64, color string) {
	d.scoped(ctx, func() {
		switch d.Profile.CircleStroke {
		case CircleStrokeNone:
			ctx.SetStrokeColor(drawstyle.Transparent)
		default:
			ctx.SetStrokeStyle(color)
		}
		ctx.SetFillStyle(color)
		ctx.Arc(x, y, radius, 0, 2*math.Pi, false)
		ctx.Fill()
	})
}

// Rect draws the rectangle with top-left corner (x, y), filled
// and bordered with `color`. Fill, LineWidth and Border apply.
func (d *Drawer) Rect(ctx *canvas.Context, x, y, w, h float64, color string, opts ...Option) {
	o := resolve(opts)
	d.scoped(ctx, func() {
		d.rect(ctx, x, y, w, h, color, color, o)
	})
}

// RectCenter is like Rect, with (x, y) the center of the rectangle
// and distinct fill and border colors.
func (d *Drawer) RectCenter(ctx *canvas.Context, x, y, w, h float64, fillColor, borderColor string, opts ...Option) {
	o := resolve(opts)
	d.scoped(ctx, func() {
		d.rect(ctx, x-w/2, y-h/2, w, h, fillColor, borderColor, o)
	})
}

func (d *Drawer) rect(ctx *canvas.Context, x, y, w, h float64, fillColor, borderColor string, o options) {
	ctx.SetLineWidth(o.lineWidth)
	ctx.SetStrokeStyle(borderColor)
	ctx.Rect(x, y, w, h)

	if o.fill {
		ctx.SetFillStyle(fillColor)
		ctx.Fill()
	}

	mode := BorderStroke
	if !o.border {
		mode = d.Profile.NoBorder
	}
	switch mode {
	case BorderStroke:
		ctx.Stroke()
	case BorderThin:
		ctx.SetLineWidth(1)
		ctx.Stroke()
	case BorderNone:
	}
}

// Text fills the translation of `text`, the baseline starting at (x, y).
// Font and TextAlign apply.
func (d *Drawer) Text(ctx *canvas.Context, text string, x, y float64, color string, opts ...Option) {
	o := resolve(opts)
	resolved := d.Translator.Translate(text)
	d.scoped(ctx, func() {
		ctx.SetFont(o.font)
		ctx.SetFillStyle(color)
		if o.align != AlignLeft {
			if width, ok := ctx.MeasureText(resolved); ok {
				if o.align == AlignCenter {
					x -= width / 2
				} else {
					x -= width
				}
			}
		}
		ctx.FillText(resolved, x, y)
	})
}

// Line draws with Default.
func Line(ctx *canvas.Context, x1, y1, x2, y2 float64, color string, opts ...Option) {
	Default.Line(ctx, x1, y1, x2, y2, color, opts...)
}

// Circle draws with Default.
func Circle(ctx *canvas.Context, x, y, radius float64, color string) {
	Default.Circle(ctx, x, y, radius, color)
}

// Rect draws with Default.
func Rect(ctx *canvas.Context, x, y, w, h float64, color string, opts ...Option) {
	Default.Rect(ctx, x, y, w, h, color, opts...)
}

// RectCenter draws with Default.
func RectCenter(ctx *canvas.Context, x, y, w, h float64, fillColor, borderColor string, opts ...Option) {
	Default.RectCenter(ctx, x, y, w, h, fillColor, borderColor, opts...)
}

// Text draws with Default.
func Text(ctx *canvas.Context, text string, x, y float64, color string, opts ...Option) {
	Default.Text(ctx, text, x, y, color, opts...)
}
