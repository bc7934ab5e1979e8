package geom

import (
	"fmt"
	"math"
)

// AddRect appends a closed rectangular contour spanning the two corner points
// (x0, y0) and (x1, y1). The corners may be given in any order. The contour
// runs from the minimum corner in the order (x0,y0) → (x1,y0) → (x1,y1) →
// (x0,y1).
func (p *Path) AddRect(x0, y0, x1, y1 float64) error {
	if !Pt(x0, y0).IsFinite() || !Pt(x1, y1).IsFinite() {
		return fmt.Errorf("addRect (%g, %g) (%g, %g): %w", x0, y0, x1, y1, ErrInvalidGeometry)
	}
	r := NewRect(x0, y0, x1, y1)
	p.Contours = append(p.Contours, Contour{
		Verbs: []Verb{
			MoveTo(Pt(r.X0, r.Y0)),
			LineTo(Pt(r.X1, r.Y0)),
			LineTo(Pt(r.X1, r.Y1)),
			LineTo(Pt(r.X0, r.Y1)),
			Close(),
		},
		Closed: true,
	})
	return nil
}

// quarterWeight is the conic weight that traces an exact quarter circle,
// cos(π/4).
var quarterWeight = math.Sqrt(2) / 2

// AddEllipse appends a closed elliptical contour centered on (cx, cy) with
// the given non-negative radii. The ellipse is exact: it is built from four
// rational conic quarter arcs, not a polynomial approximation.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) error {
	if !Pt(cx, cy).IsFinite() || !Pt(rx, ry).IsFinite() {
		return fmt.Errorf("addEllipse (%g, %g) radii (%g, %g): %w", cx, cy, rx, ry, ErrInvalidGeometry)
	}
	if rx < 0 || ry < 0 {
		return fmt.Errorf("addEllipse: negative radius (%g, %g): %w", rx, ry, ErrInvalidGeometry)
	}
	w := quarterWeight
	p.Contours = append(p.Contours, Contour{
		Verbs: []Verb{
			MoveTo(Pt(cx+rx, cy)),
			ConicTo(Pt(cx+rx, cy+ry), Pt(cx, cy+ry), w),
			ConicTo(Pt(cx-rx, cy+ry), Pt(cx-rx, cy), w),
			ConicTo(Pt(cx-rx, cy-ry), Pt(cx, cy-ry), w),
			ConicTo(Pt(cx+rx, cy-ry), Pt(cx+rx, cy), w),
			Close(),
		},
		Closed: true,
	})
	return nil
}

// ArcTo appends a circular arc of the given radius tangent to the two lines
// from the current point to (x1, y1) and from (x1, y1) to (x2, y2). A line is
// first drawn from the current point to the tangent point on the incoming
// line; the arc itself is appended as rational conics, one per quarter turn
// at most, ending at the tangent point on the outgoing line. Of the two
// tangent circles with this radius, the one on the inside of the corner at
// (x1, y1) is used. A zero radius degrades to a line to (x1, y1).
//
// The construction fails with [ErrInvalidGeometry] when the radius is
// negative, or when no tangent circle exists: the three points are collinear,
// or either tangent line has zero length.
func (p *Path) ArcTo(x1, y1, x2, y2, radius float64) error {
	p1, p2 := Pt(x1, y1), Pt(x2, y2)
	if !p1.IsFinite() || !p2.IsFinite() || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return fmt.Errorf("arcTo %s %s radius %g: %w", p1, p2, radius, ErrInvalidGeometry)
	}
	if radius < 0 {
		return fmt.Errorf("arcTo: radius %g is negative: %w", radius, ErrInvalidGeometry)
	}
	if radius == 0 {
		return p.LineTo(x1, y1)
	}
	p0 := p.Back()
	before := p1.Sub(p0)
	after := p2.Sub(p1)
	if before.Hypot2() == 0 || after.Hypot2() == 0 {
		return fmt.Errorf("arcTo: zero-length tangent line: %w", ErrInvalidGeometry)
	}
	before = before.Normalize()
	after = after.Normalize()
	cosh := before.Dot(after)
	sinh := before.Cross(after)
	if math.Abs(sinh) < 1e-12 {
		return fmt.Errorf("arcTo: points are collinear: %w", ErrInvalidGeometry)
	}
	// Distance from the corner to each tangent point. The turn angle θ
	// satisfies tan(θ/2) = (1 - cos θ) / sin θ.
	dist := math.Abs(radius * (1 - cosh) / sinh)
	start := p1.Translate(before.Mul(-dist))
	end := p1.Translate(after.Mul(dist))
	// A conic with weight cos(θ/2) traces a circular arc with central angle
	// θ < π exactly. The central angle equals the turn angle; arcs wider than
	// a quarter turn are halved, which preserves the circle exactly.
	weight := math.Sqrt(0.5 + cosh*0.5)
	arc := ConicBez{start, p1, end, weight}

	c := p.ensureOpen()
	c.Verbs = append(c.Verbs, LineTo(start))
	if math.Acos(cosh) > math.Pi/2 {
		a0, a1 := arc.Subdivide()
		c.Verbs = append(c.Verbs,
			ConicTo(a0.P1, a0.P2, a0.W),
			ConicTo(a1.P1, a1.P2, a1.W))
	} else {
		c.Verbs = append(c.Verbs, ConicTo(arc.P1, arc.P2, arc.W))
	}
	return nil
}
