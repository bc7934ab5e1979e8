package geom

import (
	"encoding/json"
	"fmt"
)

// Structural serialization of paths. The object form is a plain tree of
// contour and verb records suitable for persistence in any field-preserving
// encoding; the round trip through it is lossless, bit-exact for coordinates
// and weights.

// VerbObject is the serialized form of a single verb.
type VerbObject struct {
	Kind string `json:"verb"`
	// Points holds the verb's points as [x, y] pairs, in the verb's own
	// order: target for moveTo/lineTo, control(s) then end for the curves.
	Points [][2]float64 `json:"points,omitempty"`
	// Weight is the conic weight; it is only present for conicTo.
	Weight float64 `json:"weight,omitempty"`
}

// ContourObject is the serialized form of a single contour.
type ContourObject struct {
	Verbs    []VerbObject `json:"verbs"`
	IsClosed bool         `json:"isClosed"`
}

// PathObject is the serialized form of a whole path, contours in drawing
// order.
type PathObject struct {
	Contours []ContourObject `json:"contours"`
}

const (
	kindMoveTo  = "moveTo"
	kindLineTo  = "lineTo"
	kindQuadTo  = "quadTo"
	kindConicTo = "conicTo"
	kindCubicTo = "cubicTo"
	kindClose   = "close"
)

func pair(pt Point) [2]float64 {
	return [2]float64{pt.X, pt.Y}
}

// ToObject returns the structural representation of the path.
func (p *Path) ToObject() PathObject {
	obj := PathObject{Contours: make([]ContourObject, len(p.Contours))}
	for i := range p.Contours {
		c := &p.Contours[i]
		co := ContourObject{
			Verbs:    make([]VerbObject, 0, len(c.Verbs)),
			IsClosed: c.Closed,
		}
		for _, v := range c.Verbs {
			switch v.Kind {
			case MoveToVerb:
				co.Verbs = append(co.Verbs, VerbObject{Kind: kindMoveTo, Points: [][2]float64{pair(v.P0)}})
			case LineToVerb:
				co.Verbs = append(co.Verbs, VerbObject{Kind: kindLineTo, Points: [][2]float64{pair(v.P0)}})
			case QuadToVerb:
				co.Verbs = append(co.Verbs, VerbObject{Kind: kindQuadTo, Points: [][2]float64{pair(v.P0), pair(v.P1)}})
			case ConicToVerb:
				co.Verbs = append(co.Verbs, VerbObject{Kind: kindConicTo, Points: [][2]float64{pair(v.P0), pair(v.P1)}, Weight: v.Weight})
			case CubicToVerb:
				co.Verbs = append(co.Verbs, VerbObject{Kind: kindCubicTo, Points: [][2]float64{pair(v.P0), pair(v.P1), pair(v.P2)}})
			case CloseVerb:
				co.Verbs = append(co.Verbs, VerbObject{Kind: kindClose})
			}
		}
		obj.Contours[i] = co
	}
	return obj
}

// FromObject reconstructs a path from its structural representation. The
// object must describe a well-formed path: every contour starts with a single
// moveTo, close appears at most once and last, point counts match the verb
// kind, coordinates are finite and conic weights positive. Anything else
// fails with [ErrInvalidGeometry].
func FromObject(obj PathObject) (*Path, error) {
	p := &Path{Contours: make([]Contour, 0, len(obj.Contours))}
	for ci, co := range obj.Contours {
		c := Contour{Verbs: make([]Verb, 0, len(co.Verbs))}
		for vi, vo := range co.Verbs {
			v, isClose, err := verbFromObject(vo)
			if err != nil {
				return nil, fmt.Errorf("contour %d verb %d: %w", ci, vi, err)
			}
			if (vi == 0) != (v.Kind == MoveToVerb) {
				return nil, fmt.Errorf("contour %d verb %d: contour must start with exactly one moveTo: %w", ci, vi, ErrInvalidGeometry)
			}
			if c.Closed {
				return nil, fmt.Errorf("contour %d verb %d: verb after close: %w", ci, vi, ErrInvalidGeometry)
			}
			if isClose {
				c.Closed = true
			}
			c.Verbs = append(c.Verbs, v)
		}
		if len(c.Verbs) == 0 {
			return nil, fmt.Errorf("contour %d: empty contour: %w", ci, ErrInvalidGeometry)
		}
		if c.Closed != co.IsClosed {
			return nil, fmt.Errorf("contour %d: isClosed does not match verbs: %w", ci, ErrInvalidGeometry)
		}
		p.Contours = append(p.Contours, c)
	}
	return p, nil
}

func verbFromObject(vo VerbObject) (Verb, bool, error) {
	pts := make([]Point, len(vo.Points))
	for i, xy := range vo.Points {
		pts[i] = Pt(xy[0], xy[1])
		if !pts[i].IsFinite() {
			return Verb{}, false, fmt.Errorf("non-finite point %s: %w", pts[i], ErrInvalidGeometry)
		}
	}
	want := func(n int) error {
		if len(pts) != n {
			return fmt.Errorf("%s wants %d points, got %d: %w", vo.Kind, n, len(pts), ErrInvalidGeometry)
		}
		return nil
	}
	switch vo.Kind {
	case kindMoveTo:
		if err := want(1); err != nil {
			return Verb{}, false, err
		}
		return MoveTo(pts[0]), false, nil
	case kindLineTo:
		if err := want(1); err != nil {
			return Verb{}, false, err
		}
		return LineTo(pts[0]), false, nil
	case kindQuadTo:
		if err := want(2); err != nil {
			return Verb{}, false, err
		}
		return QuadTo(pts[0], pts[1]), false, nil
	case kindConicTo:
		if err := want(2); err != nil {
			return Verb{}, false, err
		}
		if !(vo.Weight > 0) {
			return Verb{}, false, fmt.Errorf("conicTo weight %g is not positive: %w", vo.Weight, ErrInvalidGeometry)
		}
		return ConicTo(pts[0], pts[1], vo.Weight), false, nil
	case kindCubicTo:
		if err := want(3); err != nil {
			return Verb{}, false, err
		}
		return CubicTo(pts[0], pts[1], pts[2]), false, nil
	case kindClose:
		if err := want(0); err != nil {
			return Verb{}, false, err
		}
		return Close(), true, nil
	default:
		return Verb{}, false, fmt.Errorf("unknown verb kind %q: %w", vo.Kind, ErrInvalidGeometry)
	}
}

// MarshalJSON encodes the path in its object form.
func (p *Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToObject())
}

// UnmarshalJSON decodes a path from its object form, replacing the receiver's
// contents.
func (p *Path) UnmarshalJSON(data []byte) error {
	var obj PathObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	q, err := FromObject(obj)
	if err != nil {
		return err
	}
	*p = *q
	return nil
}
