package geom

import (
	"fmt"
	"math"
)

// Glyph is a single character outline produced by a glyph source, already
// scaled to the requested size. The path is positioned with the glyph origin
// at (0, 0) on the baseline, y growing downward; Advance is the horizontal
// pen advance to the next glyph.
type Glyph struct {
	Path    Path
	Advance float64
}

// GlyphSource provides glyph outlines and font-wide metrics for text
// conversion. The second return value of Glyph reports whether the source has
// an outline for the rune.
type GlyphSource interface {
	Glyph(r rune, size float64) (Glyph, bool)
	Metrics(size float64) FontMetrics
}

// FontMetrics are the font-wide vertical and horizontal metric scalars, all
// pre-scaled to the size they were requested at.
type FontMetrics struct {
	Top                   float64
	Ascent                float64
	Descent               float64
	Bottom                float64
	Leading               float64
	AverageCharacterWidth float64
	MaxCharacterWidth     float64
	XMin                  float64
	XMax                  float64
	XHeight               float64
	CapHeight             float64
}

// AddText appends the outlines of text, rendered by src at the given size,
// with the first glyph's origin at (x, y) on the baseline. Each glyph
// contributes one contour per sub-path of its outline; glyphs the source has
// no outline for advance the pen by the average character width but add no
// contours. The path is untouched when the call fails.
func (p *Path) AddText(src GlyphSource, text string, size, x, y float64) error {
	if src == nil {
		return fmt.Errorf("addText: nil glyph source: %w", ErrInvalidArgument)
	}
	if !Pt(x, y).IsFinite() || math.IsNaN(size) || math.IsInf(size, 0) {
		return fmt.Errorf("addText at (%g, %g) size %g: %w", x, y, size, ErrInvalidGeometry)
	}
	if size <= 0 {
		return fmt.Errorf("addText: size %g is not positive: %w", size, ErrInvalidArgument)
	}
	var out Path
	pen := x
	for _, r := range text {
		g, ok := src.Glyph(r, size)
		if !ok {
			pen += src.Metrics(size).AverageCharacterWidth
			continue
		}
		outline := g.Path.Clone()
		if err := outline.Translate(pen, y); err != nil {
			return fmt.Errorf("addText: glyph %q: %w", r, err)
		}
		out.Append(outline)
		pen += g.Advance
	}
	p.Append(&out)
	return nil
}
