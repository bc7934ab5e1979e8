package geom

import "math"

// ConicBez is a rational quadratic Bézier segment with weight W applied to
// the control point P1.
//
// The weight selects the conic family: W == 1 is exactly the ordinary
// quadratic Bézier (a parabola), 0 < W < 1 traces an elliptical segment
// (smaller weights are flatter), and W > 1 a hyperbolic one (larger weights
// hug the control point more closely). Weights ≤ 0 are not valid conics and
// are rejected at the path-builder boundary.
type ConicBez struct {
	P0 Point
	P1 Point
	P2 Point
	W  float64
}

// Eval evaluates the rational Bézier
//
//	((1-t)²·p0 + 2t(1-t)·w·p1 + t²·p2) / ((1-t)² + 2t(1-t)·w + t²)
//
// at the given parameter. As with all Bézier parameters, t is not linear in
// arc length; the deviation grows with |W - 1|.
func (c ConicBez) Eval(t float64) Point {
	mt := 1.0 - t
	b0 := mt * mt
	b1 := 2.0 * mt * t * c.W
	b2 := t * t
	d := 1.0 / (b0 + b1 + b2)
	return Point{
		X: (b0*c.P0.X + b1*c.P1.X + b2*c.P2.X) * d,
		Y: (b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y) * d,
	}
}

// Quad returns the ordinary quadratic with the same control cage. It is exact
// when W == 1 and the single-segment approximation otherwise.
func (c ConicBez) Quad() QuadBez {
	return QuadBez{c.P0, c.P1, c.P2}
}

// Subdivide splits the conic at t = 1/2 into two conics tracing the same
// curve.
//
// The split is performed on the homogeneous control points, after which both
// halves are renormalized to standard form. Both halves share the weight
// sqrt((1 + w) / 2), which tends to 1 under repeated subdivision: subdividing
// flattens a conic toward ordinary quadratics.
func (c ConicBez) Subdivide() (ConicBez, ConicBez) {
	// Homogeneous de Casteljau at t=1/2 with control points
	// (p0, 1), (w·p1, w), (p2, 1).
	mid := Point{
		X: (c.P0.X + 2.0*c.W*c.P1.X + c.P2.X) / (2.0 * (1.0 + c.W)),
		Y: (c.P0.Y + 2.0*c.W*c.P1.Y + c.P2.Y) / (2.0 * (1.0 + c.W)),
	}
	left := Point{
		X: (c.P0.X + c.W*c.P1.X) / (1.0 + c.W),
		Y: (c.P0.Y + c.W*c.P1.Y) / (1.0 + c.W),
	}
	right := Point{
		X: (c.W*c.P1.X + c.P2.X) / (1.0 + c.W),
		Y: (c.W*c.P1.Y + c.P2.Y) / (1.0 + c.W),
	}
	w := math.Sqrt(0.5 * (1.0 + c.W))
	return ConicBez{c.P0, left, mid, w}, ConicBez{mid, right, c.P2, w}
}

func (c ConicBez) Start() Point { return c.P0 }
func (c ConicBez) End() Point   { return c.P2 }

func (c ConicBez) Transform(aff Affine) ConicBez {
	// The weight is invariant under translation, rotation and uniform scale.
	// A non-uniform scale changes the conic family; keeping the weight is a
	// documented approximation.
	return ConicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		W:  c.W,
	}
}

func (c ConicBez) Tangents() (Vec2, Vec2) {
	return c.Quad().Tangents()
}

// Quads converts the conic to ordinary quadratic Béziers within the given
// tolerance, by recursive subdivision until each half deviates from its
// control-cage quadratic by less than the tolerance at the curve midpoint.
// The conversion is lossy: a quadratic cannot represent a circular or
// hyperbolic segment exactly, and the original weight is not recoverable.
func (c ConicBez) Quads(tolerance float64) []QuadBez {
	out := make([]QuadBez, 0, 4)
	c.appendQuads(tolerance, 0, &out)
	return out
}

const maxConicSubdivisions = 10

func (c ConicBez) appendQuads(tolerance float64, depth int, out *[]QuadBez) {
	// The deviation between a conic and the quadratic on the same cage is
	// maximal near the curve midpoint.
	err := c.Eval(0.5).Distance(c.Quad().Eval(0.5))
	if err <= tolerance || depth >= maxConicSubdivisions {
		*out = append(*out, c.Quad())
		return
	}
	c0, c1 := c.Subdivide()
	c0.appendQuads(tolerance, depth+1, out)
	c1.appendQuads(tolerance, depth+1, out)
}
