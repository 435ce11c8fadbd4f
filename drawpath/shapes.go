package drawpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// when approximating a circular arc.
const maxDx float64 = math.Pi / 8

// ToFixedP converts two floats to a fixed point.
func ToFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// FromFixedP converts a fixed point back to floats.
func FromFixedP(p fixed.Point26_6) (x, y float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}

// AddRect adds a closed axis aligned rectangle with top-left corner
// (x, y). Negative sizes are allowed and mirror the rectangle.
func (p *Path) AddRect(x, y, w, h float64) {
	p.Start(ToFixedP(x, y))
	p.Line(ToFixedP(x+w, y))
	p.Line(ToFixedP(x+w, y+h))
	p.Line(ToFixedP(x, y+h))
	p.Stop(true)
}

// ArcSweep returns the signed angle, in radians, covered by an arc
// going from start to end. A sweep of at least one full turn is clamped
// to exactly 2π, so that any full circle request draws a full circle.
func ArcSweep(start, end float64, anticlockwise bool) float64 {
	const twoPi = 2 * math.Pi
	if !anticlockwise {
		if end-start >= twoPi {
			return twoPi
		}
		d := math.Mod(end-start, twoPi)
		if d < 0 {
			d += twoPi
		}
		return d
	}
	if start-end >= twoPi {
		return -twoPi
	}
	d := math.Mod(start-end, twoPi)
	if d < 0 {
		d += twoPi
	}
	return -d
}

// AddArc adds a circular arc of radius r centered on (cx, cy), from angle
// start to angle end (radians, clockwise in screen space unless anticlockwise).
// If the path has a current point, a line joins it to the start of the arc,
// otherwise a new sub-path is started there.
func (p *Path) AddArc(cx, cy, r, start, end float64, anticlockwise bool) {
	if r < 0 {
		r = -r
	}
	sx, sy := cx+r*math.Cos(start), cy+r*math.Sin(start)
	if _, ok := p.CurrentPoint(); ok {
		p.Line(ToFixedP(sx, sy))
	} else {
		p.Start(ToFixedP(sx, sy))
	}

	deltaTheta := ArcSweep(start, end, anticlockwise)
	if deltaTheta == 0 || r == 0 {
		return
	}

	// Approximate the circular arc using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	// The method was simplified for circles.
	segs := int(math.Abs(deltaTheta)/maxDx) + 1
	dTheta := deltaTheta / float64(segs)
	tde := math.Tan(dTheta / 2)
	alpha := math.Sin(dTheta) * (math.Sqrt(4+3*tde*tde) - 1) / 3 // Math is fun!

	lx, ly := sx, sy
	ldx, ldy := -r*math.Sin(start), r*math.Cos(start)
	for i := 1; i <= segs; i++ {
		eta := start + dTheta*float64(i)
		px, py := cx+r*math.Cos(eta), cy+r*math.Sin(eta)
		dx, dy := -r*math.Sin(eta), r*math.Cos(eta)
		p.CubeBezier(ToFixedP(lx+alpha*ldx, ly+alpha*ldy),
			ToFixedP(px-alpha*dx, py-alpha*dy), ToFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}
