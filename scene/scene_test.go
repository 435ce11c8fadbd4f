package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/shapedraw/canvas"
	"github.com/benoitkugler/shapedraw/shapes"
)

const quadTreeScene = `
width = 200
height = 100
background = "white"
profile = "quadtree"
language = "fr"
translations = ["fr.ts"]

[[shape]]
kind = "rect"
x = 0
y = 0
w = 100
h = 100
color = "#333"
fill = false
line_width = 2

[[shape]]
kind = "rect_center"
x = 50
y = 50
w = 10
h = 10
color = "gold"
border_color = "black"
border = false

[[shape]]
kind = "circle"
x = 25
y = 25
radius = 3
color = "red"

[[shape]]
kind = "line"
x = 0
y = 50
x2 = 100
y2 = 50
color = "gray"

[[shape]]
kind = "text"
text = "Depth"
x = 120
y = 20
font = "bold 12px monospace"
align = "center"
`

func TestDecode(t *testing.T) {
	sc, err := Decode(strings.NewReader(quadTreeScene))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Width != 200 || sc.Height != 100 || sc.Profile != "quadtree" || len(sc.Shapes) != 5 {
		t.Errorf("unexpected scene %+v", sc)
	}
	rect := sc.Shapes[0]
	if rect.Kind != KindRect || rect.Fill == nil || *rect.Fill || rect.LineWidth == nil || *rect.LineWidth != 2 {
		t.Errorf("unexpected rect %+v", rect)
	}
	if line := sc.Shapes[3]; line.X2 != 100 || line.Y2 != 50 {
		t.Errorf("unexpected line %+v", line)
	}
	if got := sc.TranslationPaths(); len(got) != 1 || got[0] != "fr.ts" {
		t.Errorf("unexpected translation paths %v", got)
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, src := range []string{
		`width = 10`,
		`width = 10
height = 10
unknown = 1`,
		`width = 10
height = 10
background = "nope"`,
		`width = 10
height = 10
profile = "fancy"`,
		`width = 10
height = 10
[[shape]]
kind = "star"`,
		`width = 10
height = 10
[[shape]]
x = 1`,
		`width = 10
height = 10
[[shape]]
kind = "circle"
radius = 0`,
		`width = 10
height = 10
[[shape]]
kind = "text"
font = "tiny"`,
		`width = 10
height = 10
[[shape]]
kind = "text"
align = "justify"`,
		`width = 10 height`,
	} {
		if _, err := Decode(strings.NewReader(src)); !errors.Is(err, ErrInvalidScene) {
			t.Errorf("expected ErrInvalidScene for %q, got %v", src, err)
		}
	}
}

func TestDraw(t *testing.T) {
	sc, err := Decode(strings.NewReader(quadTreeScene))
	if err != nil {
		t.Fatal(err)
	}
	profile, _ := shapes.ProfileByName(sc.Profile)
	var rec canvas.Recorder
	sc.Draw(shapes.New(profile, nil), canvas.New(&rec))

	want := []canvas.OpKind{
		canvas.OpStroke, // rect without fill
		canvas.OpFill,
		canvas.OpStroke, // thin border
		canvas.OpFill,   // circle
		canvas.OpStroke, // line
		canvas.OpText,
	}
	if len(rec.Ops) != len(want) {
		t.Fatalf("expected %v, got %v", want, rec.Ops)
	}
	for i, op := range rec.Ops {
		if op.Kind != want[i] {
			t.Errorf("operation %d: expected %s, got %s", i, want[i], op.Kind)
		}
	}
	if w := rec.Ops[0].Stroke.LineWidth; w != 2*64 {
		t.Errorf("unexpected line width %v", w)
	}
	if w := rec.Ops[2].Stroke.LineWidth; w != 64 {
		t.Errorf("thin border should be 1px wide, got %v", w)
	}
	if text := rec.Ops[5]; text.Text != "Depth" || text.Font.Size != 12 {
		t.Errorf("unexpected text %v", text)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte(quadTreeScene), 0o644); err != nil {
		t.Fatal(err)
	}
	sc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := sc.TranslationPaths(); got[0] != filepath.Join(dir, "fr.ts") {
		t.Errorf("translations should be relative to the scene, got %v", got)
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}
