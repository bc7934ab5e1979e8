package geom

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
	// A rational conic segment.
	ConicKind
)

// Segment is a single drawable piece of a contour with its start point made
// explicit. It acts as a tagged union over [Line], [QuadBez], [CubicBez] and
// [ConicBez].
//
// We don't use an interface here because the concrete types want their own
// Transform and Subdivide signatures, and because a struct keeps segment
// iteration allocation-free.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
	// W is the conic weight. It is only meaningful when Kind == ConicKind.
	W float64
}

func (l Line) Seg() Segment {
	return Segment{Kind: LineKind, P0: l.P0, P1: l.P1}
}

func (q QuadBez) Seg() Segment {
	return Segment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}

func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

func (c ConicBez) Seg() Segment {
	return Segment{Kind: ConicKind, P0: c.P0, P1: c.P1, P2: c.P2, W: c.W}
}

// Line returns the line represented by this segment. This is only valid when
// Kind == LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only
// valid when Kind == QuadKind.
func (seg Segment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic converts seg to a cubic Bézier. This is valid for any kind except
// ConicKind, whose rational form has no exact cubic equivalent.
func (seg Segment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return CubicBez{seg.P0, seg.P0, seg.P1, seg.P1}
	case QuadKind:
		return seg.Quad().Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

// Conic returns the rational conic represented by this segment. This is only
// valid when Kind == ConicKind.
func (seg Segment) Conic() ConicBez { return ConicBez{seg.P0, seg.P1, seg.P2, seg.W} }

func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	case ConicKind:
		return seg.Conic().Eval(t)
	default:
		return Point{}
	}
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind, ConicKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Transform(aff).Seg()
	case QuadKind:
		return seg.Quad().Transform(aff).Seg()
	case CubicKind:
		return seg.Cubic().Transform(aff).Seg()
	case ConicKind:
		return seg.Conic().Transform(aff).Seg()
	default:
		return Segment{}
	}
}

// Tangents returns the start and end tangents of the segment.
func (seg Segment) Tangents() (Vec2, Vec2) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Tangents()
	case QuadKind:
		return seg.Quad().Tangents()
	case CubicKind:
		return seg.Cubic().Tangents()
	case ConicKind:
		return seg.Conic().Tangents()
	default:
		return Vec2{}, Vec2{}
	}
}
