package geom

import (
	"errors"
	"math"
	"testing"
)

func collectSegments(p *Path) []Segment {
	var segs []Segment
	for seg := range p.Segments() {
		segs = append(segs, seg)
	}
	return segs
}

func TestPathImplicitMoveTo(t *testing.T) {
	var p Path
	if err := p.CubicTo(100, 100, 200, 200, 300, 300); err != nil {
		t.Fatal(err)
	}
	segs := collectSegments(&p)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, expected 1", len(segs))
	}
	assertNear(t, segs[0].Eval(0), Pt(0, 0), 1e-12)
	assertNear(t, segs[0].Eval(1), Pt(300, 300), 1e-12)
}

func TestPathMoveToStartsContour(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.MoveTo(20, 20)
	p.LineTo(30, 20)
	if len(p.Contours) != 2 {
		t.Fatalf("got %d contours, expected 2", len(p.Contours))
	}
}

func TestPathCloseIdempotent(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.ClosePath()
	p.ClosePath()
	if len(p.Contours) != 1 {
		t.Fatalf("got %d contours, expected 1", len(p.Contours))
	}
	if got := len(p.Contours[0].Verbs); got != 4 {
		t.Fatalf("got %d verbs, expected 4", got)
	}
	// Close adds no point: the implied line shows up only in the segments.
	segs := collectSegments(&p)
	if len(segs) != 3 {
		t.Fatalf("got %d segments, expected 3", len(segs))
	}
	diff(t, Line{Pt(10, 10), Pt(0, 0)}.Seg(), segs[2])
}

func TestPathCloseOnEmptyPath(t *testing.T) {
	var p Path
	p.ClosePath()
	diff(t, 0, len(p.Contours))
}

func TestPathInvalidGeometryLeavesPathUntouched(t *testing.T) {
	var p Path
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	before := p.Clone()

	calls := []error{
		p.MoveTo(math.NaN(), 0),
		p.LineTo(math.Inf(1), 0),
		p.QuadTo(0, math.NaN(), 1, 1),
		p.CubicTo(0, 0, math.Inf(-1), 0, 1, 1),
		p.ConicTo(0, 0, 1, 1, -2),
		p.ConicTo(0, 0, 1, 1, 0),
		p.ConicTo(0, 0, 1, 1, math.NaN()),
	}
	for i, err := range calls {
		if !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("call %d: got %v, expected ErrInvalidGeometry", i, err)
		}
	}
	diff(t, before, &p)
}

func TestPathBack(t *testing.T) {
	var p Path
	diff(t, Pt(0, 0), p.Back())

	p.MoveTo(5, 5)
	diff(t, Pt(5, 5), p.Back())
	p.QuadTo(10, 10, 20, 5)
	diff(t, Pt(20, 5), p.Back())
	p.ClosePath()
	diff(t, Pt(5, 5), p.Back())
}

func TestPathClear(t *testing.T) {
	var p Path
	p.AddRect(0, 0, 10, 10)
	p.Clear()
	if !p.IsEmpty() {
		t.Fatal("path not empty after Clear")
	}
}

func TestPathAppendCopies(t *testing.T) {
	var a, b Path
	a.AddRect(0, 0, 10, 10)
	b.AddRect(20, 20, 30, 30)
	a.Append(&b)

	if len(a.Contours) != 2 {
		t.Fatalf("got %d contours, expected 2", len(a.Contours))
	}
	// Mutating the source must not leak into the appended copy.
	b.Contours[0].Verbs[0] = MoveTo(Pt(-99, -99))
	diff(t, MoveTo(Pt(20, 20)), a.Contours[1].Verbs[0])
}

func TestPathAddRectBoundingBox(t *testing.T) {
	var p Path
	if err := p.AddRect(-100, 100, 100, -100); err != nil {
		t.Fatal(err)
	}
	bbox := p.BoundingBox()
	diff(t, NewRect(-100, -100, 100, 100), bbox)
	diff(t, 200.0, bbox.Width())
	diff(t, 200.0, bbox.Height())
}

func TestPathBoundingBoxIncludesControlPoints(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.QuadTo(50, 100, 100, 0)
	// The control point at y=100 lies outside the curve but inside the box.
	diff(t, NewRect(0, 0, 100, 100), p.BoundingBox())
}

func TestPathBoundingBoxEmpty(t *testing.T) {
	var p Path
	diff(t, Rect{}, p.BoundingBox())
}

func TestPathAddEllipse(t *testing.T) {
	var p Path
	if err := p.AddEllipse(10, 20, 100, 50); err != nil {
		t.Fatal(err)
	}
	if len(p.Contours) != 1 || !p.Contours[0].Closed {
		t.Fatal("expected one closed contour")
	}
	diff(t, NewRect(-90, -30, 110, 70), p.BoundingBox())

	// All curve points lie on the ellipse.
	for seg := range p.Segments() {
		for i := 0; i <= 8; i++ {
			pt := seg.Eval(float64(i) / 8)
			v := math.Pow((pt.X-10)/100, 2) + math.Pow((pt.Y-20)/50, 2)
			if math.Abs(v-1) > 1e-9 {
				t.Fatalf("point %s is off the ellipse by %g", pt, v-1)
			}
		}
	}
}

func TestPathArcTo(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	if err := p.ArcTo(100, 0, 100, 100, 20); err != nil {
		t.Fatal(err)
	}
	// Tangent points are (80, 0) and (100, 20); the arc's circle is centered
	// on (80, 20).
	diff(t, Pt(100, 20), p.Back())
	segs := collectSegments(&p)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, expected 2", len(segs))
	}
	diff(t, Line{Pt(0, 0), Pt(80, 0)}.Seg(), segs[0])
	center := Pt(80, 20)
	for i := 0; i <= 16; i++ {
		pt := segs[1].Eval(float64(i) / 16)
		if r := pt.Distance(center); math.Abs(r-20) > 1e-9 {
			t.Fatalf("arc point %s is at radius %g, expected 20", pt, r)
		}
	}
}

func TestPathArcToWideSweep(t *testing.T) {
	// A 135° turn produces a 135° arc, split into two conics.
	var p Path
	p.MoveTo(0, 0)
	if err := p.ArcTo(100, 0, 0, 100, 10); err != nil {
		t.Fatal(err)
	}
	segs := collectSegments(&p)
	if len(segs) != 3 {
		t.Fatalf("got %d segments, expected line plus two conics", len(segs))
	}
	for _, seg := range segs[1:] {
		if seg.Kind != ConicKind {
			t.Fatalf("got segment kind %v, expected conic", seg.Kind)
		}
	}
}

func TestPathArcToZeroRadius(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	if err := p.ArcTo(50, 0, 50, 50, 0); err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(50, 0), p.Back())
	segs := collectSegments(&p)
	if len(segs) != 1 || segs[0].Kind != LineKind {
		t.Fatal("expected a single line segment")
	}
}

func TestPathArcToDegenerate(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	before := p.Clone()

	if err := p.ArcTo(50, 0, 100, 0, 10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("collinear points: got %v, expected ErrInvalidGeometry", err)
	}
	if err := p.ArcTo(0, 0, 100, 0, 10); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("zero-length leg: got %v, expected ErrInvalidGeometry", err)
	}
	if err := p.ArcTo(50, 0, 50, 50, -1); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("negative radius: got %v, expected ErrInvalidGeometry", err)
	}
	diff(t, before, &p)
}

func TestPathCloneIndependent(t *testing.T) {
	var p Path
	p.AddRect(0, 0, 10, 10)
	q := p.Clone()
	q.Contours[0].Verbs[0] = MoveTo(Pt(99, 99))
	diff(t, MoveTo(Pt(0, 0)), p.Contours[0].Verbs[0])
}
