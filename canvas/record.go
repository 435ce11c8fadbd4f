package canvas

import (
	"fmt"
	"image/color"

	"github.com/benoitkugler/shapedraw/drawpath"
	"github.com/benoitkugler/shapedraw/drawstyle"
	"golang.org/x/image/math/fixed"
)

var _ Driver = (*Recorder)(nil) // assert interface conformance

// OpKind identifies a recorded paint operation.
type OpKind uint8

const (
	OpFill OpKind = iota
	OpStroke
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpText:
		return "text"
	default:
		return "<unknown OpKind>"
	}
}

// PaintOp is one paint operation received by a Recorder.
type PaintOp struct {
	Kind    OpKind
	Path    drawpath.Path // empty for text
	Color   color.Color
	Stroke  StrokeOptions // only for OpStroke
	Winding bool          // only for OpFill

	Text string         // only for OpText
	Font drawstyle.Font // only for OpText
	X, Y float64        // only for OpText
}

func (op PaintOp) String() string {
	switch op.Kind {
	case OpText:
		return fmt.Sprintf("text %q at (%g, %g) font=%q color=%s", op.Text, op.X, op.Y, op.Font, drawstyle.FormatColor(op.Color))
	case OpStroke:
		return fmt.Sprintf("stroke %s width=%g color=%s", op.Path, float64(op.Stroke.LineWidth)/64, drawstyle.FormatColor(op.Color))
	default:
		return fmt.Sprintf("fill %s color=%s", op.Path, drawstyle.FormatColor(op.Color))
	}
}

// Recorder is a Driver which records paint operations
// instead of rasterizing them. It is useful to inspect what
// a sequence of draw calls produces.
type Recorder struct {
	Ops []PaintOp
}

func (r *Recorder) SetupDrawers(willFill, willStroke bool) (f Filler, s Stroker) {
	if willFill {
		f = &recordingDrawer{rec: r, op: PaintOp{Kind: OpFill}}
	}
	if willStroke {
		s = &recordingDrawer{rec: r, op: PaintOp{Kind: OpStroke}}
	}
	return f, s
}

func (r *Recorder) FillText(font drawstyle.Font, s string, x, y float64, c color.Color) {
	r.Ops = append(r.Ops, PaintOp{Kind: OpText, Text: s, Font: font, X: x, Y: y, Color: c})
}

// Reset discards the recorded operations.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// recordingDrawer accumulates a path and appends it
// to the recorder on Draw.
type recordingDrawer struct {
	rec *Recorder
	op  PaintOp
}

func (d *recordingDrawer) Clear() { d.op.Path = nil }

func (d *recordingDrawer) Start(a fixed.Point26_6) { d.op.Path.Start(a) }

func (d *recordingDrawer) Line(b fixed.Point26_6) { d.op.Path.Line(b) }

func (d *recordingDrawer) QuadBezier(b, c fixed.Point26_6) { d.op.Path.QuadBezier(b, c) }

func (d *recordingDrawer) CubeBezier(b, c, e fixed.Point26_6) { d.op.Path.CubeBezier(b, c, e) }

func (d *recordingDrawer) Stop(closeLoop bool) { d.op.Path.Stop(closeLoop) }

func (d *recordingDrawer) SetColor(c color.Color) { d.op.Color = c }

func (d *recordingDrawer) SetWinding(useNonZeroWinding bool) { d.op.Winding = useNonZeroWinding }

func (d *recordingDrawer) SetStrokeOptions(options StrokeOptions) { d.op.Stroke = options }

func (d *recordingDrawer) Draw() {
	op := d.op
	op.Path = op.Path.Copy()
	d.rec.Ops = append(d.rec.Ops, op)
}
