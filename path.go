package geom

import (
	"fmt"
	"iter"
)

// VerbKind identifies a path-construction instruction.
type VerbKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// contour.
	MoveToVerb VerbKind = iota + 1
	// Draw a line from the current location to the point.
	LineToVerb
	// Draw a cubic Bézier using the current location and the three points.
	CubicToVerb
	// Draw a rational conic using the current location, the control point,
	// the end point, and the weight.
	ConicToVerb
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToVerb
	// Close off the contour.
	CloseVerb
)

func (k VerbKind) String() string {
	switch k {
	case MoveToVerb:
		return "MoveTo"
	case LineToVerb:
		return "LineTo"
	case CubicToVerb:
		return "CubicTo"
	case ConicToVerb:
		return "ConicTo"
	case QuadToVerb:
		return "QuadTo"
	case CloseVerb:
		return "Close"
	default:
		return "InvalidVerb"
	}
}

// Verb is a single path-construction instruction. The verb set is fixed, so
// every consumer (evaluator, flattener, transformer, serializer) handles all
// kinds exhaustively.
//
// The point fields are assigned per kind: MoveTo and LineTo use P0 as the
// target; QuadTo uses P0 as control and P1 as end; ConicTo uses P0 as
// control, P1 as end and Weight as the conic weight; CubicTo uses P0 and P1
// as controls and P2 as end; Close uses none.
type Verb struct {
	Kind   VerbKind
	P0     Point
	P1     Point
	P2     Point
	Weight float64
}

func (v Verb) String() string {
	switch v.Kind {
	case ConicToVerb:
		return fmt.Sprintf("ConicTo(%s, %s, %g)", v.P0, v.P1, v.Weight)
	case CloseVerb:
		return "Close"
	default:
		return fmt.Sprintf("%s(%s, %s, %s)", v.Kind, v.P0, v.P1, v.P2)
	}
}

// MoveTo returns a "move to" verb.
func MoveTo(pt Point) Verb {
	return Verb{Kind: MoveToVerb, P0: pt}
}

// LineTo returns a "line to" verb.
func LineTo(pt Point) Verb {
	return Verb{Kind: LineToVerb, P0: pt}
}

// QuadTo returns a "quad to" verb with control p0 and end p1.
func QuadTo(p0, p1 Point) Verb {
	return Verb{Kind: QuadToVerb, P0: p0, P1: p1}
}

// ConicTo returns a "conic to" verb with control p0, end p1 and the given
// weight.
func ConicTo(p0, p1 Point, weight float64) Verb {
	return Verb{Kind: ConicToVerb, P0: p0, P1: p1, Weight: weight}
}

// CubicTo returns a "cubic to" verb with controls p0, p1 and end p2.
func CubicTo(p0, p1, p2 Point) Verb {
	return Verb{Kind: CubicToVerb, P0: p0, P1: p1, P2: p2}
}

// Close returns a "close" verb.
func Close() Verb {
	return Verb{Kind: CloseVerb}
}

// EndPoint returns the on-curve end point of the verb. It exists for all
// kinds except CloseVerb.
func (v Verb) EndPoint() (Point, bool) {
	switch v.Kind {
	case MoveToVerb, LineToVerb:
		return v.P0, true
	case QuadToVerb, ConicToVerb:
		return v.P1, true
	case CubicToVerb:
		return v.P2, true
	default:
		return Point{}, false
	}
}

// points returns the points carried by the verb, on-curve and control alike.
func (v Verb) points() []Point {
	switch v.Kind {
	case MoveToVerb, LineToVerb:
		return []Point{v.P0}
	case QuadToVerb, ConicToVerb:
		return []Point{v.P0, v.P1}
	case CubicToVerb:
		return []Point{v.P0, v.P1, v.P2}
	default:
		return nil
	}
}

// Transform applies the affine map to every point of the verb. The conic
// weight is preserved.
func (v Verb) Transform(aff Affine) Verb {
	switch v.Kind {
	case MoveToVerb:
		return MoveTo(v.P0.Transform(aff))
	case LineToVerb:
		return LineTo(v.P0.Transform(aff))
	case QuadToVerb:
		return QuadTo(v.P0.Transform(aff), v.P1.Transform(aff))
	case ConicToVerb:
		return ConicTo(v.P0.Transform(aff), v.P1.Transform(aff), v.Weight)
	case CubicToVerb:
		return CubicTo(v.P0.Transform(aff), v.P1.Transform(aff), v.P2.Transform(aff))
	case CloseVerb:
		return Close()
	default:
		return Verb{}
	}
}

// Contour is one connected sub-path: a MoveTo followed by drawing verbs,
// optionally closed. Closing never adds a point; the implied line back to the
// start is materialized only when the contour is consumed as segments.
type Contour struct {
	Verbs  []Verb
	Closed bool
}

// Start returns the contour's starting point.
func (c *Contour) Start() Point {
	if len(c.Verbs) == 0 {
		return Point{}
	}
	return c.Verbs[0].P0
}

// End returns the contour's current end point. For a closed contour this is
// the starting point.
func (c *Contour) End() Point {
	if c.Closed {
		return c.Start()
	}
	for i := len(c.Verbs) - 1; i >= 0; i-- {
		if pt, ok := c.Verbs[i].EndPoint(); ok {
			return pt
		}
	}
	return Point{}
}

func (c *Contour) clone() Contour {
	out := Contour{
		Verbs:  make([]Verb, len(c.Verbs)),
		Closed: c.Closed,
	}
	copy(out.Verbs, c.Verbs)
	return out
}

// Segments returns an iterator over the contour's drawable segments. For a
// closed contour whose end point differs from its start, the implied closing
// line is included.
func (c *Contour) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		start := c.Start()
		last := start
		for _, v := range c.Verbs {
			switch v.Kind {
			case MoveToVerb:
				start = v.P0
				last = v.P0
			case LineToVerb:
				if !yield(Line{last, v.P0}.Seg()) {
					return
				}
				last = v.P0
			case QuadToVerb:
				if !yield(QuadBez{last, v.P0, v.P1}.Seg()) {
					return
				}
				last = v.P1
			case ConicToVerb:
				if !yield(ConicBez{last, v.P0, v.P1, v.Weight}.Seg()) {
					return
				}
				last = v.P1
			case CubicToVerb:
				if !yield(CubicBez{last, v.P0, v.P1, v.P2}.Seg()) {
					return
				}
				last = v.P2
			}
		}
		if c.Closed && last != start {
			yield(Line{last, start}.Seg())
		}
	}
}

// Path is an ordered sequence of contours; insertion order is drawing order.
// A Path is a plain value owned exclusively by its caller: mutating methods
// mutate the receiver in place, and nothing inside the kernel retains a
// reference to it across calls.
type Path struct {
	Contours []Contour
}

// IsEmpty reports whether the path contains no contours.
func (p *Path) IsEmpty() bool {
	return len(p.Contours) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{Contours: make([]Contour, len(p.Contours))}
	for i := range p.Contours {
		out.Contours[i] = p.Contours[i].clone()
	}
	return out
}

// open returns the contour currently accepting verbs, or nil if the path is
// empty or its last contour has been closed.
func (p *Path) open() *Contour {
	if len(p.Contours) == 0 {
		return nil
	}
	c := &p.Contours[len(p.Contours)-1]
	if c.Closed {
		return nil
	}
	return c
}

// ensureOpen returns the contour currently accepting verbs, starting one at
// the origin if necessary: a drawing verb with no prior MoveTo implies
// MoveTo(0,0).
func (p *Path) ensureOpen() *Contour {
	if c := p.open(); c != nil {
		return c
	}
	p.Contours = append(p.Contours, Contour{Verbs: []Verb{MoveTo(Point{})}})
	return &p.Contours[len(p.Contours)-1]
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) error {
	pt := Pt(x, y)
	if !pt.IsFinite() {
		return fmt.Errorf("moveTo %s: %w", pt, ErrInvalidGeometry)
	}
	p.Contours = append(p.Contours, Contour{Verbs: []Verb{MoveTo(pt)}})
	return nil
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) error {
	pt := Pt(x, y)
	if !pt.IsFinite() {
		return fmt.Errorf("lineTo %s: %w", pt, ErrInvalidGeometry)
	}
	c := p.ensureOpen()
	c.Verbs = append(c.Verbs, LineTo(pt))
	return nil
}

// QuadTo draws a quadratic Bézier with control (cx, cy) and end (x, y). It is
// the weight-one special case of [Path.ConicTo].
func (p *Path) QuadTo(cx, cy, x, y float64) error {
	ctrl, end := Pt(cx, cy), Pt(x, y)
	if !ctrl.IsFinite() || !end.IsFinite() {
		return fmt.Errorf("quadTo %s %s: %w", ctrl, end, ErrInvalidGeometry)
	}
	c := p.ensureOpen()
	c.Verbs = append(c.Verbs, QuadTo(ctrl, end))
	return nil
}

// ConicTo draws a rational conic with control (cx, cy), end (x, y), and the
// given weight. The weight must be strictly positive; weight 1 draws exactly
// the quadratic Bézier on the same cage.
func (p *Path) ConicTo(cx, cy, x, y, weight float64) error {
	ctrl, end := Pt(cx, cy), Pt(x, y)
	if !ctrl.IsFinite() || !end.IsFinite() {
		return fmt.Errorf("conicTo %s %s: %w", ctrl, end, ErrInvalidGeometry)
	}
	if !(weight > 0) || !Pt(weight, 0).IsFinite() {
		return fmt.Errorf("conicTo: weight %g is not positive: %w", weight, ErrInvalidGeometry)
	}
	c := p.ensureOpen()
	c.Verbs = append(c.Verbs, ConicTo(ctrl, end, weight))
	return nil
}

// CubicTo draws a cubic Bézier with controls (c1x, c1y), (c2x, c2y) and end
// (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) error {
	c1, c2, end := Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y)
	if !c1.IsFinite() || !c2.IsFinite() || !end.IsFinite() {
		return fmt.Errorf("cubicTo %s %s %s: %w", c1, c2, end, ErrInvalidGeometry)
	}
	c := p.ensureOpen()
	c.Verbs = append(c.Verbs, CubicTo(c1, c2, end))
	return nil
}

// ClosePath marks the current contour as closed. It never adds a point, is a
// no-op when there is no open contour, and is idempotent.
func (p *Path) ClosePath() {
	c := p.open()
	if c == nil {
		return
	}
	c.Verbs = append(c.Verbs, Close())
	c.Closed = true
}

// Clear discards all contours, resetting the path to the empty state.
func (p *Path) Clear() {
	p.Contours = p.Contours[:0]
}

// Append concatenates copies of other's contours onto p. Contours are not
// merged, and other is left unmodified.
func (p *Path) Append(other *Path) {
	for i := range other.Contours {
		p.Contours = append(p.Contours, other.Contours[i].clone())
	}
}

// Back returns the last on-curve point appended to the path, or the origin
// for an empty path.
func (p *Path) Back() Point {
	if len(p.Contours) == 0 {
		return Point{}
	}
	return p.Contours[len(p.Contours)-1].End()
}

// BoundingBox returns the axis-aligned box enclosing every on-curve point and
// every control point in the path. Control points may lie outside the curve
// itself, so this is a conservative bound, cheap to compute and exact for
// polygonal contours. The zero rectangle is returned for an empty path.
func (p *Path) BoundingBox() Rect {
	first := true
	var bbox Rect
	for i := range p.Contours {
		for _, v := range p.Contours[i].Verbs {
			for _, pt := range v.points() {
				if first {
					first = false
					bbox = NewRectFromPoints(pt, pt)
				} else {
					bbox = bbox.UnionPoint(pt)
				}
			}
		}
	}
	return bbox
}

// Segments returns an iterator over all drawable segments of the path, in
// contour order.
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := range p.Contours {
			for seg := range p.Contours[i].Segments() {
				if !yield(seg) {
					return
				}
			}
		}
	}
}

// countSegments returns the number of drawable segments in the path.
func (p *Path) countSegments() int {
	var n int
	for range p.Segments() {
		n++
	}
	return n
}
