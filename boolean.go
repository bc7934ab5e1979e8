package geom

import (
	"math"
	"sort"
)

// Boolean set operations on filled regions. Both operands are flattened to
// polygons, clipped with the even-odd fill rule, and the result replaces the
// receiver as closed polygonal contours: curve verbs are not reconstructed.
// Open contours are treated as implicitly closed, since filled-region
// semantics require closure. The operations are total over all finite inputs;
// degenerate or self-intersecting contours produce a best-effort result
// rather than an error.

// Intersect replaces p with the region covered by both p and other.
func (p *Path) Intersect(other *Path) {
	p.applyBoolean(other, opIntersect)
}

// Unite replaces p with the region covered by either p or other. Fully
// disjoint operands simply concatenate their contour sets.
func (p *Path) Unite(other *Path) {
	p.applyBoolean(other, opUnite)
}

// Difference replaces p with the region covered by p but not by other.
// Subtracting a path from itself leaves an empty path.
func (p *Path) Difference(other *Path) {
	p.applyBoolean(other, opDifference)
}

type boolOp int

const (
	opIntersect boolOp = iota
	opUnite
	opDifference
)

// boolEps is the distance below which points are considered coincident
// during clipping. It is well under the flattening tolerance, so it merges
// numeric noise without merging genuine geometry.
const boolEps = 1e-7

type clipEdge struct {
	a, b Point
}

func (e clipEdge) mid() Point {
	return e.a.Midpoint(e.b)
}

func (e clipEdge) dir() Vec2 {
	return e.b.Sub(e.a)
}

func (e clipEdge) reversed() clipEdge {
	return clipEdge{e.b, e.a}
}

type edgeSide int

const (
	sideOutside edgeSide = iota
	sideInside
	sideBoundarySame
	sideBoundaryOpposite
)

func (p *Path) applyBoolean(other *Path, op boolOp) {
	a := p.clipRings()
	b := other.clipRings()
	edgesA := splitEdges(ringEdges(a), b)
	edgesB := splitEdges(ringEdges(b), a)

	var keep []clipEdge
	for _, e := range edgesA {
		// Coincident boundary edges are resolved from the first operand
		// alone; the second operand's copies are discarded below.
		switch classifyEdge(e, b) {
		case sideInside:
			if op == opIntersect {
				keep = append(keep, e)
			}
		case sideOutside:
			if op == opUnite || op == opDifference {
				keep = append(keep, e)
			}
		case sideBoundarySame:
			if op == opIntersect || op == opUnite {
				keep = append(keep, e)
			}
		case sideBoundaryOpposite:
			if op == opDifference {
				keep = append(keep, e)
			}
		}
	}
	for _, e := range edgesB {
		switch classifyEdge(e, a) {
		case sideInside:
			switch op {
			case opIntersect:
				keep = append(keep, e)
			case opDifference:
				// Holes carved by the subtrahend wind against the minuend.
				keep = append(keep, e.reversed())
			}
		case sideOutside:
			if op == opUnite {
				keep = append(keep, e)
			}
		}
	}

	p.Contours = stitchEdges(keep)
}

// clipRings flattens the path into closed polygon rings. The ring's closing
// edge from last point back to first is implicit.
func (p *Path) clipRings() [][]Point {
	var rings [][]Point
	for _, pts := range p.Flatten(flattenTolerance) {
		// Closed contours end on a copy of their start point.
		for len(pts) > 1 && pts[len(pts)-1].Distance(pts[0]) < boolEps {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 3 {
			continue
		}
		rings = append(rings, pts)
	}
	return rings
}

func ringEdges(rings [][]Point) []clipEdge {
	var edges []clipEdge
	for _, ring := range rings {
		for i, a := range ring {
			b := ring[(i+1)%len(ring)]
			if a.Distance(b) >= boolEps {
				edges = append(edges, clipEdge{a, b})
			}
		}
	}
	return edges
}

// splitEdges subdivides every edge at its crossings with the other operand's
// rings, so that each resulting sub-edge lies entirely inside, outside, or on
// the other operand's boundary.
func splitEdges(edges []clipEdge, other [][]Point) []clipEdge {
	out := make([]clipEdge, 0, len(edges))
	var ts []float64
	for _, e := range edges {
		ts = ts[:0]
		for _, ring := range other {
			for i, c := range ring {
				d := ring[(i+1)%len(ring)]
				ts = appendCrossings(ts, e.a, e.b, c, d)
			}
		}
		if len(ts) == 0 {
			out = append(out, e)
			continue
		}
		sort.Float64s(ts)
		prev := 0.0
		start := e.a
		for _, t := range ts {
			if t-prev < 1e-9 {
				continue
			}
			pt := Line{e.a, e.b}.Eval(t)
			out = append(out, clipEdge{start, pt})
			start = pt
			prev = t
		}
		out = append(out, clipEdge{start, e.b})
	}
	return out
}

// appendCrossings appends the parameters on segment (a, b) at which it meets
// segment (c, d): a single crossing for transversal segments, and the
// projections of c and d for collinear overlaps.
func appendCrossings(ts []float64, a, b, c, d Point) []float64 {
	r := b.Sub(a)
	s := d.Sub(c)
	qp := c.Sub(a)
	denom := r.Cross(s)
	if math.Abs(denom) < 1e-12 {
		if math.Abs(qp.Cross(r)) > boolEps*r.Hypot() {
			// Parallel, not collinear.
			return ts
		}
		rr := r.Hypot2()
		if rr == 0 {
			return ts
		}
		for _, pt := range [2]Point{c, d} {
			t := pt.Sub(a).Dot(r) / rr
			if t > 1e-9 && t < 1-1e-9 {
				ts = append(ts, t)
			}
		}
		return ts
	}
	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t > 1e-9 && t < 1-1e-9 && u >= -1e-9 && u <= 1+1e-9 {
		ts = append(ts, t)
	}
	return ts
}

// classifyEdge reports where an edge lies relative to the other operand's
// filled region, testing its midpoint: edges have already been split so they
// cannot straddle the boundary.
func classifyEdge(e clipEdge, rings [][]Point) edgeSide {
	m := e.mid()
	if dir, ok := boundaryDirection(m, rings); ok {
		if e.dir().Dot(dir) > 0 {
			return sideBoundarySame
		}
		return sideBoundaryOpposite
	}
	if insideRings(m, rings) {
		return sideInside
	}
	return sideOutside
}

// boundaryDirection returns the direction of the ring edge that pt lies on,
// if any.
func boundaryDirection(pt Point, rings [][]Point) (Vec2, bool) {
	for _, ring := range rings {
		for i, a := range ring {
			b := ring[(i+1)%len(ring)]
			if distToSegment(pt, a, b) < boolEps {
				return b.Sub(a), true
			}
		}
	}
	return Vec2{}, false
}

func distToSegment(pt, a, b Point) float64 {
	d := b.Sub(a)
	dd := d.Hypot2()
	if dd == 0 {
		return pt.Distance(a)
	}
	t := pt.Sub(a).Dot(d) / dd
	t = math.Max(0, math.Min(1, t))
	return pt.Distance(a.Translate(d.Mul(t)))
}

// insideRings is an even-odd point-in-polygon test over all rings at once, so
// a contour nested inside another counts as a hole.
func insideRings(pt Point, rings [][]Point) bool {
	in := false
	for _, ring := range rings {
		for i, a := range ring {
			b := ring[(i+1)%len(ring)]
			if (a.Y > pt.Y) != (b.Y > pt.Y) {
				x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
				if x > pt.X {
					in = !in
				}
			}
		}
	}
	return in
}

type vertexKey struct {
	x, y int64
}

func keyOf(pt Point) vertexKey {
	return vertexKey{
		x: int64(math.Round(pt.X / boolEps)),
		y: int64(math.Round(pt.Y / boolEps)),
	}
}

// stitchEdges chains the selected directed edges into closed contours. At a
// vertex with several outgoing edges the one turning most sharply left is
// taken, which keeps separate regions meeting at a point in separate
// contours. Edges that do not close up (numerical leftovers) are dropped.
func stitchEdges(edges []clipEdge) []Contour {
	byStart := make(map[vertexKey][]int, len(edges))
	for i, e := range edges {
		byStart[keyOf(e.a)] = append(byStart[keyOf(e.a)], i)
	}
	used := make([]bool, len(edges))
	var contours []Contour

	takeNext := func(at vertexKey, incoming Vec2) int {
		best := -1
		bestAngle := math.Inf(1)
		for _, i := range byStart[at] {
			if used[i] {
				continue
			}
			// Clockwise angle from the incoming direction; the smallest is
			// the sharpest left turn.
			out := edges[i].dir()
			angle := math.Atan2(incoming.Cross(out), incoming.Dot(out))
			if angle <= 0 {
				angle += 2 * math.Pi
			}
			if angle < bestAngle {
				bestAngle = angle
				best = i
			}
		}
		return best
	}

	for i := range edges {
		if used[i] {
			continue
		}
		startKey := keyOf(edges[i].a)
		ring := []Point{edges[i].a}
		cur := i
		used[i] = true
		closed := false
		for {
			ring = append(ring, edges[cur].b)
			endKey := keyOf(edges[cur].b)
			if endKey == startKey {
				closed = true
				break
			}
			next := takeNext(endKey, edges[cur].dir())
			if next < 0 {
				break
			}
			used[next] = true
			cur = next
		}
		if !closed || len(ring) < 4 {
			continue
		}
		// The last point repeats the start; Close supplies that edge.
		ring = ring[:len(ring)-1]
		verbs := make([]Verb, 0, len(ring)+1)
		verbs = append(verbs, MoveTo(ring[0]))
		for _, pt := range ring[1:] {
			verbs = append(verbs, LineTo(pt))
		}
		verbs = append(verbs, Close())
		contours = append(contours, Contour{Verbs: verbs, Closed: true})
	}
	return contours
}
