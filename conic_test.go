package geom

import (
	"math"
	"testing"
)

func TestConicBezEvalEndpoints(t *testing.T) {
	c := ConicBez{Pt(0, 0), Pt(50, 100), Pt(100, 0), 0.75}
	assertNear(t, c.Eval(0), c.P0, 1e-12)
	assertNear(t, c.Eval(1), c.P2, 1e-12)
}

func TestConicBezWeightOneIsQuad(t *testing.T) {
	c := ConicBez{Pt(0, 0), Pt(30, 90), Pt(120, 30), 1}
	q := c.Quad()
	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10
		assertNear(t, c.Eval(tt), q.Eval(tt), 1e-12)
	}
}

func TestConicBezQuarterCircle(t *testing.T) {
	// Weight cos(π/4) over the unit square cage traces an exact quarter of
	// the unit circle.
	c := ConicBez{Pt(1, 0), Pt(1, 1), Pt(0, 1), math.Sqrt(2) / 2}
	for i := 0; i <= 20; i++ {
		tt := float64(i) / 20
		pt := c.Eval(tt)
		if r := pt.Sub(Pt(0, 0)).Hypot(); math.Abs(r-1) > 1e-12 {
			t.Fatalf("point %s at t=%g is at radius %g, expected 1", pt, tt, r)
		}
	}
	assertNear(t, c.Eval(0.5), Pt(math.Sqrt2/2, math.Sqrt2/2), 1e-12)
}

func TestConicBezSubdivide(t *testing.T) {
	c := ConicBez{Pt(0, 0), Pt(40, 80), Pt(100, 10), 2.5}
	c0, c1 := c.Subdivide()

	assertNear(t, c0.P0, c.P0, 1e-12)
	assertNear(t, c0.P2, c.Eval(0.5), 1e-9)
	assertNear(t, c1.P0, c.Eval(0.5), 1e-9)
	assertNear(t, c1.P2, c.P2, 1e-12)

	// The halves retrace the original curve.
	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10
		assertNear(t, c0.Eval(tt), c.Eval(tt/2), 1e-9)
		assertNear(t, c1.Eval(tt), c.Eval(0.5+tt/2), 1e-9)
	}
}

func TestConicBezQuads(t *testing.T) {
	c := ConicBez{Pt(0, 0), Pt(50, 100), Pt(100, 0), 0.4}
	const tolerance = 0.01
	quads := c.Quads(tolerance)
	if len(quads) == 0 {
		t.Fatal("no quadratics produced")
	}
	assertNear(t, quads[0].P0, c.P0, 1e-12)
	assertNear(t, quads[len(quads)-1].P2, c.P2, 1e-12)
	for i := 0; i < len(quads)-1; i++ {
		assertNear(t, quads[i].P2, quads[i+1].P0, 1e-12)
	}
	// Every point of the approximation stays close to the conic. Subdivision
	// reparameterizes, so compare against a dense sampling of the curve.
	samples := make([]Point, 2049)
	for i := range samples {
		samples[i] = c.Eval(float64(i) / 2048)
	}
	for i, q := range quads {
		for k := 1; k < 8; k++ {
			pt := q.Eval(float64(k) / 8)
			nearest := math.Inf(1)
			for _, s := range samples {
				nearest = math.Min(nearest, pt.Distance(s))
			}
			if nearest > tolerance+0.1 {
				t.Errorf("quad %d strays %g from the conic", i, nearest)
			}
		}
	}
}

func TestConicBezQuadsWeightOne(t *testing.T) {
	c := ConicBez{Pt(0, 0), Pt(50, 100), Pt(100, 0), 1}
	quads := c.Quads(0.01)
	diff(t, []QuadBez{c.Quad()}, quads)
}

func TestConicBezTangents(t *testing.T) {
	c := ConicBez{Pt(0, 0), Pt(50, 100), Pt(100, 0), 0.8}
	t0, t1 := c.Tangents()
	if t0.Cross(c.P1.Sub(c.P0)) != 0 {
		t.Errorf("start tangent %s is not along the first leg", t0)
	}
	if t1.Cross(c.P2.Sub(c.P1)) != 0 {
		t.Errorf("end tangent %s is not along the second leg", t1)
	}
}
