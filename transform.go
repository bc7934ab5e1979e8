package geom

import (
	"fmt"
	"math"
)

// Transform applies the affine map to every on-curve and control point of
// every verb in the path. Conic weights are unchanged; no verbs are added or
// removed.
func (p *Path) Transform(aff Affine) error {
	if !aff.IsFinite() {
		return fmt.Errorf("transform %v: %w", aff, ErrInvalidGeometry)
	}
	for i := range p.Contours {
		c := &p.Contours[i]
		for j := range c.Verbs {
			c.Verbs[j] = c.Verbs[j].Transform(aff)
		}
	}
	return nil
}

// Translate moves the path by (dx, dy).
func (p *Path) Translate(dx, dy float64) error {
	if !Pt(dx, dy).IsFinite() {
		return fmt.Errorf("translate (%g, %g): %w", dx, dy, ErrInvalidGeometry)
	}
	return p.Transform(Translate(Vec(dx, dy)))
}

// Rotate rotates the path by the given angle in degrees, counterclockwise
// around the origin.
func (p *Path) Rotate(degrees float64) error {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return fmt.Errorf("rotate %g: %w", degrees, ErrInvalidGeometry)
	}
	return p.Transform(Rotate(degrees * math.Pi / 180))
}

// Scale scales the path by (sx, sy) relative to the origin.
func (p *Path) Scale(sx, sy float64) error {
	if !Pt(sx, sy).IsFinite() {
		return fmt.Errorf("scale (%g, %g): %w", sx, sy, ErrInvalidGeometry)
	}
	return p.Transform(Scale(sx, sy))
}
