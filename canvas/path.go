package canvas

import (
	"github.com/benoitkugler/shapedraw/drawpath"
	"github.com/benoitkugler/shapedraw/drawstyle"
)

// Path returns a copy of the current path.
func (c *Context) Path() drawpath.Path { return c.path.Copy() }

// BeginPath discards the current path.
func (c *Context) BeginPath() { c.path.Clear() }

// MoveTo starts a new sub-path at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.path.Start(drawpath.ToFixedP(x, y))
}

// LineTo adds a segment to (x, y). Without current point,
// it behaves as MoveTo.
func (c *Context) LineTo(x, y float64) {
	if _, ok := c.path.CurrentPoint(); !ok {
		c.MoveTo(x, y)
		return
	}
	c.path.Line(drawpath.ToFixedP(x, y))
}

// QuadraticCurveTo adds a quadratic bezier curve to (x, y).
func (c *Context) QuadraticCurveTo(cpx, cpy, x, y float64) {
	c.ensureStart(cpx, cpy)
	c.path.QuadBezier(drawpath.ToFixedP(cpx, cpy), drawpath.ToFixedP(x, y))
}

// BezierCurveTo adds a cubic bezier curve to (x, y).
func (c *Context) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	c.ensureStart(cp1x, cp1y)
	c.path.CubeBezier(drawpath.ToFixedP(cp1x, cp1y), drawpath.ToFixedP(cp2x, cp2y), drawpath.ToFixedP(x, y))
}

func (c *Context) ensureStart(x, y float64) {
	if _, ok := c.path.CurrentPoint(); !ok {
		c.MoveTo(x, y)
	}
}

// ClosePath joins the current point to the start of the sub-path.
// It does nothing on an empty path.
func (c *Context) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	c.path.Stop(true)
}

// Rect adds a closed rectangle sub-path with top-left corner (x, y).
func (c *Context) Rect(x, y, w, h float64) {
	c.path.AddRect(x, y, w, h)
}

// Arc adds a circular arc centered on (x, y). Angles are in radians;
// a sweep of 2π or more draws the full circle.
func (c *Context) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	c.path.AddArc(x, y, radius, startAngle, endAngle, anticlockwise)
}

// Fill paints the interior of the current path with the fill color,
// using the non-zero winding rule. The path is kept.
func (c *Context) Fill() {
	c.fillPath(c.path)
}

// Stroke outlines the current path with the stroke color and line
// settings. The path is kept.
func (c *Context) Stroke() {
	if len(c.path) == 0 || drawstyle.IsTransparent(c.current.style.StrokeColor) {
		return
	}
	_, stroker := c.driver.SetupDrawers(false, true)
	if stroker == nil {
		return
	}
	stroker.Clear()
	stroker.SetStrokeOptions(c.strokeOptions())
	c.path.AddTo(stroker)
	stroker.SetColor(c.current.style.StrokeColor)
	stroker.Draw()
}

// FillRect paints a rectangle with the fill color, leaving
// the current path untouched.
func (c *Context) FillRect(x, y, w, h float64) {
	var p drawpath.Path
	p.AddRect(x, y, w, h)
	c.fillPath(p)
}

// StrokeRect outlines a rectangle with the stroke settings, leaving
// the current path untouched.
func (c *Context) StrokeRect(x, y, w, h float64) {
	saved := c.path
	c.path = nil
	c.path.AddRect(x, y, w, h)
	c.Stroke()
	c.path = saved
}

// FillText paints `text` with the fill color and font, the baseline
// starting at (x, y).
func (c *Context) FillText(text string, x, y float64) {
	if text == "" || drawstyle.IsTransparent(c.current.style.FillColor) {
		return
	}
	c.driver.FillText(c.current.style.Font, text, x, y, c.current.style.FillColor)
}

func (c *Context) fillPath(p drawpath.Path) {
	if len(p) == 0 || drawstyle.IsTransparent(c.current.style.FillColor) {
		return
	}
	filler, _ := c.driver.SetupDrawers(true, false)
	if filler == nil {
		return
	}
	filler.Clear()
	filler.SetWinding(true)
	p.AddTo(filler)
	filler.SetColor(c.current.style.FillColor)
	filler.Draw()
}
