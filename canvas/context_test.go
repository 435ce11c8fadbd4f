package canvas

import (
	"image/color"
	"math"
	"testing"

	"github.com/benoitkugler/shapedraw/drawpath"
	"github.com/benoitkugler/shapedraw/drawstyle"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func TestSaveRestore(t *testing.T) {
	ctx := New(new(Recorder))
	before := ctx.Style()

	ctx.Save()
	ctx.SetStrokeStyle("red")
	ctx.SetFillStyle("#00ff00")
	ctx.SetLineWidth(5)
	ctx.SetFont("bold 30px monospace")
	ctx.SetLineDash([]float64{2, 3}, 1)

	if s := ctx.Style(); s.LineWidth != 5 || !drawstyle.SameColor(s.StrokeColor, red) || !s.Font.IsBold() {
		t.Fatalf("style not applied: %+v", s)
	}

	ctx.Restore()
	if !ctx.Style().Equal(before) {
		t.Errorf("expected %+v after restore, got %+v", before, ctx.Style())
	}
	if ctx.SaveDepth() != 0 {
		t.Errorf("unexpected save depth %d", ctx.SaveDepth())
	}

	ctx.Restore() // no matching save
	if !ctx.Style().Equal(before) {
		t.Error("unbalanced restore should be a no-op")
	}
}

func TestInvalidValuesIgnored(t *testing.T) {
	ctx := New(new(Recorder))
	ctx.SetStrokeStyle("blue")
	ctx.SetLineWidth(3)
	before := ctx.Style()

	ctx.SetStrokeStyle("not a color")
	ctx.SetFillStyle("")
	ctx.SetLineWidth(0)
	ctx.SetLineWidth(-2)
	ctx.SetLineWidth(math.NaN())
	ctx.SetLineWidth(math.Inf(1))
	ctx.SetFont("huge")
	ctx.SetFont("nanpx serif")
	ctx.SetFont("infpx serif")
	ctx.SetStrokeColor(nil)

	if !ctx.Style().Equal(before) {
		t.Errorf("invalid values should be ignored: expected %+v, got %+v", before, ctx.Style())
	}
}

func TestSetStyle(t *testing.T) {
	ctx := New(new(Recorder))
	ctx.SetStyle(drawstyle.Style{FillColor: red})
	s := ctx.Style()
	if !drawstyle.SameColor(s.FillColor, red) {
		t.Errorf("fill color not applied")
	}
	if !drawstyle.SameColor(s.StrokeColor, drawstyle.Default.StrokeColor) || s.LineWidth != 1 || s.Font != drawstyle.Default.Font {
		t.Errorf("zero fields should be ignored, got %+v", s)
	}
}

func TestPathOperations(t *testing.T) {
	rec := new(Recorder)
	ctx := New(rec)

	ctx.LineTo(10, 10) // no current point: acts as MoveTo
	ctx.LineTo(20, 10)
	ctx.ClosePath()
	if got, want := ctx.Path().String(), "M10.000,10.000 L20.000,10.000 Z"; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	ctx.Stroke()
	ctx.Fill()
	if len(rec.Ops) != 2 || rec.Ops[0].Kind != OpStroke || rec.Ops[1].Kind != OpFill {
		t.Fatalf("unexpected operations %v", rec.Ops)
	}
	if len(ctx.Path()) == 0 {
		t.Error("painting should keep the path")
	}
	if !rec.Ops[1].Winding {
		t.Error("fill should use the non-zero rule")
	}
	if w := rec.Ops[0].Stroke.LineWidth; w != 64 {
		t.Errorf("unexpected line width %v", w)
	}

	ctx.BeginPath()
	if len(ctx.Path()) != 0 {
		t.Error("BeginPath should discard the path")
	}
	ctx.ClosePath()
	if len(ctx.Path()) != 0 {
		t.Error("ClosePath on an empty path should do nothing")
	}
}

func TestRectShortcuts(t *testing.T) {
	rec := new(Recorder)
	ctx := New(rec)
	ctx.MoveTo(1, 1)

	ctx.SetFillStyle("red")
	ctx.FillRect(0, 0, 4, 2)
	ctx.StrokeRect(0, 0, 4, 2)

	if len(rec.Ops) != 2 {
		t.Fatalf("expected 2 operations, got %v", rec.Ops)
	}
	for _, op := range rec.Ops {
		if got := op.Path.String(); got != "M0.000,0.000 L4.000,0.000 L4.000,2.000 L0.000,2.000 Z" {
			t.Errorf("unexpected path %s", got)
		}
	}
	if got := ctx.Path().String(); got != "M1.000,1.000" {
		t.Errorf("rect shortcuts should keep the current path, got %s", got)
	}
}

func TestTransparentPaintSkipped(t *testing.T) {
	rec := new(Recorder)
	ctx := New(rec)
	ctx.SetFillStyle("transparent")
	ctx.SetStrokeStyle("none")
	ctx.Rect(0, 0, 10, 10)
	ctx.Fill()
	ctx.Stroke()
	ctx.FillText("hidden", 0, 0)
	if len(rec.Ops) != 0 {
		t.Errorf("transparent paints should be skipped, got %v", rec.Ops)
	}
}

func TestFillText(t *testing.T) {
	rec := new(Recorder)
	ctx := New(rec)
	ctx.SetFont("20px sans-serif")
	ctx.SetFillStyle("red")
	ctx.FillText("hello", 3, 4)
	ctx.FillText("", 3, 4)

	if len(rec.Ops) != 1 {
		t.Fatalf("expected one text, got %v", rec.Ops)
	}
	op := rec.Ops[0]
	if op.Kind != OpText || op.Text != "hello" || op.X != 3 || op.Y != 4 || op.Font.Size != 20 {
		t.Errorf("unexpected text operation %v", op)
	}
	if _, ok := ctx.MeasureText("hello"); ok {
		t.Error("the recorder can't measure text")
	}
}

func TestArc(t *testing.T) {
	ctx := New(new(Recorder))
	ctx.Arc(0, 0, 10, 0, 2*math.Pi, false)
	p := ctx.Path()
	start, _ := p[0].(drawpath.MoveTo)
	end, _ := p.CurrentPoint()
	if x, _ := drawpath.FromFixedP(end); math.Abs(x-10) > 0.05 || start.X != 640 {
		t.Errorf("full arc should start and end at (10, 0): %s", p)
	}
}

func TestLineDash(t *testing.T) {
	rec := new(Recorder)
	ctx := New(rec)
	ctx.SetLineDash([]float64{4}, 0)
	ctx.SetLineDash([]float64{-1}, 0) // ignored
	ctx.MoveTo(0, 0)
	ctx.LineTo(10, 0)
	ctx.Stroke()
	if got := rec.Ops[0].Stroke.Dash.Dash; len(got) != 2 || got[0] != 4 || got[1] != 4 {
		t.Errorf("odd patterns should be repeated, got %v", got)
	}
}
