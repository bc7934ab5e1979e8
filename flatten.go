package geom

import (
	"fmt"
	"math"
)

// defaultConicTolerance bounds the distance between a conic and its quadratic
// replacement in [Path.ConvertConicsToQuads].
const defaultConicTolerance = 0.25

// flattenTolerance bounds the distance between curves and their polyline
// approximations in arc-length tables and boolean clipping.
const flattenTolerance = 0.05

// ConvertConicsToQuads replaces every rational conic verb with one or more
// quadratic Bézier verbs approximating the same curve, by recursive
// subdivision until the midpoint error drops below a fixed tolerance. The
// conversion is lossy: the replacement only approximates the conic, and the
// point count grows. All other verbs are unchanged.
func (p *Path) ConvertConicsToQuads() {
	for i := range p.Contours {
		c := &p.Contours[i]
		out := make([]Verb, 0, len(c.Verbs))
		last := Point{}
		for _, v := range c.Verbs {
			if v.Kind != ConicToVerb {
				out = append(out, v)
				if pt, ok := v.EndPoint(); ok {
					last = pt
				}
				continue
			}
			conic := ConicBez{last, v.P0, v.P1, v.Weight}
			for _, q := range conic.Quads(defaultConicTolerance) {
				out = append(out, QuadTo(q.P1, q.P2))
			}
			last = v.P1
		}
		c.Verbs = out
	}
}

// ConvertToLines replaces every curved verb with exactly linesPerCurve line
// verbs sampled at uniform parameter steps t = k/linesPerCurve. The steps are
// uniform in the curve parameter, not in arc length, so sample spacing
// compresses where the parameterization is slow. Existing line verbs are kept
// as they are.
func (p *Path) ConvertToLines(linesPerCurve int) error {
	if linesPerCurve < 1 {
		return fmt.Errorf("convertToLines: linesPerCurve %d < 1: %w", linesPerCurve, ErrInvalidArgument)
	}
	for i := range p.Contours {
		c := &p.Contours[i]
		out := make([]Verb, 0, len(c.Verbs))
		last := Point{}
		for _, v := range c.Verbs {
			switch v.Kind {
			case QuadToVerb, ConicToVerb, CubicToVerb:
				var sample func(t float64) Point
				switch v.Kind {
				case QuadToVerb:
					sample = QuadBez{last, v.P0, v.P1}.Eval
				case ConicToVerb:
					sample = ConicBez{last, v.P0, v.P1, v.Weight}.Eval
				case CubicToVerb:
					sample = CubicBez{last, v.P0, v.P1, v.P2}.Eval
				}
				for k := 1; k <= linesPerCurve; k++ {
					out = append(out, LineTo(sample(float64(k)/float64(linesPerCurve))))
				}
				last, _ = v.EndPoint()
			default:
				out = append(out, v)
				if pt, ok := v.EndPoint(); ok {
					last = pt
				}
			}
		}
		c.Verbs = out
	}
	return nil
}

// ConvertToCurves re-fits runs of line verbs as smooth cubic Béziers passing
// through the original points, using Catmull-Rom tangents. It is a best-effort
// smoothing heuristic, not an inverse of [Path.ConvertToLines]: flattening
// and re-fitting does not reproduce the original curves. Verbs that are
// already curved are left alone.
func (p *Path) ConvertToCurves() {
	for i := range p.Contours {
		p.Contours[i].Verbs = convertContourToCurves(&p.Contours[i])
	}
}

func convertContourToCurves(c *Contour) []Verb {
	out := make([]Verb, 0, len(c.Verbs))
	last := c.Start()
	// Collect maximal runs of consecutive line verbs and re-fit each run.
	var run []Point
	flush := func() {
		if len(run) == 2 {
			// A lone line has no interior points to smooth through.
			out = append(out, LineTo(run[1]))
		} else {
			out = append(out, fitCubics(run, run[0] == run[len(run)-1])...)
		}
		run = run[:0]
	}
	for _, v := range c.Verbs {
		if v.Kind == LineToVerb {
			if len(run) == 0 {
				run = append(run, last)
			}
			run = append(run, v.P0)
			last = v.P0
			continue
		}
		if len(run) > 0 {
			flush()
		}
		out = append(out, v)
		if pt, ok := v.EndPoint(); ok {
			last = pt
		}
	}
	if len(run) > 0 {
		flush()
	}
	return out
}

// fitCubics interpolates the polyline pts with one cubic per span, choosing
// tangents by the Catmull-Rom rule: the tangent at an interior point is a
// third of the vector between its neighbors.
func fitCubics(pts []Point, wrap bool) []Verb {
	n := len(pts)
	tangent := func(i int) Vec2 {
		prev, next := i-1, i+1
		if wrap {
			// pts[0] and pts[n-1] coincide on a fully closed run.
			if prev < 0 {
				prev = n - 2
			}
			if next >= n {
				next = 1
			}
		} else {
			if prev < 0 {
				prev = 0
			}
			if next >= n {
				next = n - 1
			}
		}
		return pts[next].Sub(pts[prev]).Mul(0.5)
	}
	out := make([]Verb, 0, n-1)
	for i := 0; i < n-1; i++ {
		p0, p3 := pts[i], pts[i+1]
		c1 := p0.Translate(tangent(i).Mul(1.0 / 3.0))
		c2 := p3.Translate(tangent(i + 1).Mul(-1.0 / 3.0))
		out = append(out, CubicTo(c1, c2, p3))
	}
	return out
}

// Flatten returns a polyline approximation of each contour, one point slice
// per contour in authored order. The tolerance bounds the distance between
// each curve and its polyline. Closed contours end on a copy of their start
// point.
//
// Quadratics are flattened with the parabola-segment parameterization from
// the blog post "Flattening quadratic Béziers"
// (https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html);
// cubics and conics are first subdivided into quadratics.
func (p *Path) Flatten(tolerance float64) [][]Point {
	out := make([][]Point, 0, len(p.Contours))
	for i := range p.Contours {
		c := &p.Contours[i]
		if len(c.Verbs) == 0 {
			continue
		}
		pts := []Point{c.Start()}
		for seg := range c.Segments() {
			pts = appendFlattened(pts, seg, tolerance)
		}
		out = append(out, pts)
	}
	return out
}

// appendFlattened appends the polyline of seg to pts, excluding seg's start
// point.
func appendFlattened(pts []Point, seg Segment, tolerance float64) []Point {
	switch seg.Kind {
	case LineKind:
		return append(pts, seg.P1)
	case QuadKind:
		return appendFlattenedQuad(pts, seg.Quad(), tolerance)
	case ConicKind:
		for _, q := range seg.Conic().Quads(tolerance * 0.5) {
			pts = appendFlattenedQuad(pts, q, tolerance*0.5)
		}
		return pts
	case CubicKind:
		for quad := range seg.Cubic().Quadratics(tolerance * 0.1) {
			pts = appendFlattenedQuad(pts, quad.Segment, tolerance*0.9)
		}
		return pts
	default:
		return pts
	}
}

func appendFlattenedQuad(pts []Point, q QuadBez, tolerance float64) []Point {
	sqrtTol := math.Sqrt(tolerance)
	params := q.estimateSubdiv(sqrtTol)
	n := max(int(math.Ceil(0.5*params.val/sqrtTol)), 1)
	step := 1.0 / float64(n)
	for i := 1; i < n; i++ {
		u := float64(i) * step
		t := q.determineSubdivT(&params, u)
		pts = append(pts, q.Eval(t))
	}
	return append(pts, q.P2)
}
