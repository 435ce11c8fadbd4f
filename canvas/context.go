// Package canvas implements an immediate mode drawing context,
// modeled on the HTML canvas 2D API: an ambient style, a current path,
// and a stack of saved styles.
//
// The context itself does no pixel work: painting operations are
// forwarded to a Driver, such as the rasterizer of package canvasraster.
// A Context is not safe for concurrent use.
package canvas

import (
	"image/color"
	"math"

	"github.com/benoitkugler/shapedraw/drawpath"
	"github.com/benoitkugler/shapedraw/drawstyle"
)

// state is what Save and Restore snapshot.
type state struct {
	style    drawstyle.Style
	lineJoin JoinMode
	lineCap  CapMode
	dash     DashOptions
}

// Context is the drawing context handed to the shape helpers.
type Context struct {
	driver Driver

	current state
	stack   []state
	path    drawpath.Path
}

// New returns a context drawing into `driver`, with the default style.
func New(driver Driver) *Context {
	return &Context{
		driver:  driver,
		current: state{style: drawstyle.Default},
	}
}

// Driver returns the backend of the context.
func (c *Context) Driver() Driver { return c.driver }

// Style returns a snapshot of the ambient style.
func (c *Context) Style() drawstyle.Style { return c.current.style }

// SetStyle replaces the ambient style. Nil colors and invalid
// line widths in `s` are ignored, keeping the current values.
func (c *Context) SetStyle(s drawstyle.Style) {
	if s.StrokeColor != nil {
		c.current.style.StrokeColor = s.StrokeColor
	}
	if s.FillColor != nil {
		c.current.style.FillColor = s.FillColor
	}
	c.SetLineWidth(s.LineWidth)
	if s.Font.Size > 0 && s.Font.Family != "" {
		c.current.style.Font = s.Font
	}
}

// Save pushes the current style on the stack.
func (c *Context) Save() {
	saved := c.current
	saved.dash.Dash = append([]float64(nil), c.current.dash.Dash...)
	c.stack = append(c.stack, saved)
}

// Restore pops the last saved style. It is a no-op
// when the stack is empty.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		Logger().Debug("restore without matching save")
		return
	}
	c.current = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// SaveDepth returns the number of saved, not yet restored, states.
func (c *Context) SaveDepth() int { return len(c.stack) }

// SetStrokeStyle parses `s` as a color and uses it for strokes.
// As for an HTML canvas, an invalid color is ignored.
func (c *Context) SetStrokeStyle(s string) {
	col, err := drawstyle.ParseColor(s)
	if err != nil {
		Logger().Debug("ignoring stroke style", "value", s, "err", err)
		return
	}
	c.current.style.StrokeColor = col
}

// SetFillStyle parses `s` as a color and uses it for fills.
// As for an HTML canvas, an invalid color is ignored.
func (c *Context) SetFillStyle(s string) {
	col, err := drawstyle.ParseColor(s)
	if err != nil {
		Logger().Debug("ignoring fill style", "value", s, "err", err)
		return
	}
	c.current.style.FillColor = col
}

// SetStrokeColor sets the stroke color. Nil is ignored.
func (c *Context) SetStrokeColor(col color.Color) {
	if col != nil {
		c.current.style.StrokeColor = col
	}
}

// SetFillColor sets the fill color. Nil is ignored.
func (c *Context) SetFillColor(col color.Color) {
	if col != nil {
		c.current.style.FillColor = col
	}
}

// SetLineWidth sets the stroke width. Zero, negative,
// infinite and NaN values are ignored.
func (c *Context) SetLineWidth(w float64) {
	if w <= 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		return
	}
	c.current.style.LineWidth = w
}

// SetFont parses `s` as a CSS font shorthand. An invalid font is ignored.
func (c *Context) SetFont(s string) {
	f, err := drawstyle.ParseFont(s)
	if err != nil {
		Logger().Debug("ignoring font", "value", s, "err", err)
		return
	}
	c.current.style.Font = f
}

// SetLineJoin sets how stroke segments are joined.
func (c *Context) SetLineJoin(j JoinMode) { c.current.lineJoin = j }

// SetLineCap sets how stroke ends are drawn.
func (c *Context) SetLineCap(cp CapMode) { c.current.lineCap = cp }

// SetLineDash sets the dash pattern used by strokes. An empty
// pattern means solid lines. Patterns with an odd number of values
// are repeated, as in the canvas API.
func (c *Context) SetLineDash(dash []float64, offset float64) {
	for _, d := range dash {
		if d < 0 || math.IsInf(d, 0) || math.IsNaN(d) {
			return
		}
	}
	pattern := append([]float64(nil), dash...)
	if len(pattern)%2 == 1 {
		pattern = append(pattern, pattern...)
	}
	c.current.dash = DashOptions{Dash: pattern, DashOffset: offset}
}

func (c *Context) strokeOptions() StrokeOptions {
	opts := defaultStrokeOptions(c.current.style.LineWidth)
	opts.LineJoin = c.current.lineJoin
	opts.LineCap = c.current.lineCap
	opts.Dash = c.current.dash
	return opts
}

// TextMeasurer is implemented by drivers able to measure text.
type TextMeasurer interface {
	MeasureText(font drawstyle.Font, s string) (float64, error)
}

// MeasureText returns the advance width of `text` with the current font.
// ok is false when the driver can't measure text.
func (c *Context) MeasureText(text string) (width float64, ok bool) {
	m, isMeasurer := c.driver.(TextMeasurer)
	if !isMeasurer {
		return 0, false
	}
	w, err := m.MeasureText(c.current.style.Font, text)
	if err != nil {
		Logger().Debug("can't measure text", "text", text, "err", err)
		return 0, false
	}
	return w, true
}
