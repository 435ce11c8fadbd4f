// Implements an abstract representation of
// canvas paths, which can then be consumed
// by a painting driver
package drawpath

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Adder interface for types that can accumulate path commands
type Adder interface {
	// Start starts a new curve at the given point.
	Start(a fixed.Point26_6)
	// Line adds a line segment to the path
	Line(b fixed.Point26_6)
	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)
	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)
	// Closes the path to the start point if closeLoop is true
	Stop(closeLoop bool)
}

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathQuadTo
	pathCubicTo
	pathClose
)

// Operation groups the different path commands
type Operation interface {
	command() pathCommand
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (QuadTo) command() pathCommand  { return pathQuadTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

// Path describes a sequence of basic operations.
// Higher-level shapes (rectangles, arcs) are reduced to a path.
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64, float32(op[2].X)/64, float32(op[2].Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// CurrentPoint returns the end point of the last operation.
// ok is false for an empty path.
func (p Path) CurrentPoint() (pt fixed.Point26_6, ok bool) {
	for i := len(p) - 1; i >= 0; i-- {
		switch op := p[i].(type) {
		case MoveTo:
			return fixed.Point26_6(op), true
		case LineTo:
			return fixed.Point26_6(op), true
		case QuadTo:
			return op[1], true
		case CubicTo:
			return op[2], true
		case Close:
			// the current point after a close is the start of the sub-path
			for j := i - 1; j >= 0; j-- {
				if m, isMove := p[j].(MoveTo); isMove {
					return fixed.Point26_6(m), true
				}
			}
			return pt, false
		}
	}
	return pt, false
}

// Copy returns a deep copy of the path.
func (p Path) Copy() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// AddTo adds the Path p to q.
// An operation following a Close without an explicit MoveTo
// starts a new sub-path at the start of the closed one.
func (p Path) AddTo(q Adder) {
	var (
		first  fixed.Point26_6
		closed bool
	)
	reopen := func() {
		if closed {
			q.Start(first)
			closed = false
		}
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			q.Stop(false) // implicit close if currently in path.
			first, closed = fixed.Point26_6(op), false
			q.Start(first)
		case LineTo:
			reopen()
			q.Line(fixed.Point26_6(op))
		case QuadTo:
			reopen()
			q.QuadBezier(op[0], op[1])
		case CubicTo:
			reopen()
			q.CubeBezier(op[0], op[1], op[2])
		case Close:
			if !closed {
				q.Stop(true)
				closed = true
			}
		}
	}
	if !closed {
		q.Stop(false)
	}
}
