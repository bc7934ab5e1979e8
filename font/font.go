// Package font provides glyph outlines and metrics for text conversion,
// backed by go-text/typesetting. A Face turns runes into kernel paths in
// canvas space: the glyph origin on the baseline, y growing downward.
package font

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/gofont/goregular"

	geom "github.com/Alpha-00/cavalry-types"
)

// ErrUnknownFace is returned by Load for a family/style pair with no
// embedded face.
var ErrUnknownFace = errors.New("unknown font face")

// Face is a parsed font ready to produce glyph outlines. It implements
// [geom.GlyphSource].
type Face struct {
	face *font.Face
	upem float64
}

var _ geom.GlyphSource = (*Face)(nil)

// Parse reads a TTF or OTF font from data.
func Parse(data []byte) (*Face, error) {
	f, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &Face{face: f, upem: float64(f.Upem())}, nil
}

// Load returns one of the embedded faces. The families are "Latin Modern
// Roman" with styles "regular", "bold" and "italic", and "Go" with style
// "regular". Family and style matching is case-insensitive; an empty style
// means regular.
func Load(family, style string) (*Face, error) {
	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" {
		style = "regular"
	}
	var data []byte
	switch strings.ToLower(strings.TrimSpace(family)) {
	case "latin modern roman":
		switch style {
		case "regular":
			data = lmroman10regular.TTF
		case "bold":
			data = lmroman10bold.TTF
		case "italic":
			data = lmroman10italic.TTF
		}
	case "go":
		if style == "regular" {
			data = goregular.TTF
		}
	}
	if data == nil {
		return nil, fmt.Errorf("%q %q: %w", family, style, ErrUnknownFace)
	}
	return Parse(data)
}

// Glyph returns the outline and advance for r at the given size. The second
// return value is false when the face has no outline for the rune.
func (f *Face) Glyph(r rune, size float64) (geom.Glyph, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return geom.Glyph{}, false
	}
	outline, ok := f.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return geom.Glyph{}, false
	}
	sc := size / f.upem
	p, err := outlinePath(outline.Segments, sc)
	if err != nil {
		// Font units are finite, so the builder cannot reject them; if a
		// broken face produces them anyway, treat the rune as having no
		// usable outline.
		return geom.Glyph{}, false
	}
	return geom.Glyph{
		Path:    p,
		Advance: sc * float64(f.face.HorizontalAdvance(gid)),
	}, true
}

// outlinePath converts glyph outline segments to a path, scaled by sc.
func outlinePath(segments []opentype.Segment, sc float64) (geom.Path, error) {
	var p geom.Path
	// Font units have y up; canvas space has y down.
	x := func(sp opentype.SegmentPoint) float64 { return float64(sp.X) * sc }
	y := func(sp opentype.SegmentPoint) float64 { return -float64(sp.Y) * sc }
	var err error
	for _, s := range segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			p.ClosePath()
			err = p.MoveTo(x(s.Args[0]), y(s.Args[0]))
		case opentype.SegmentOpLineTo:
			err = p.LineTo(x(s.Args[0]), y(s.Args[0]))
		case opentype.SegmentOpQuadTo:
			err = p.QuadTo(x(s.Args[0]), y(s.Args[0]), x(s.Args[1]), y(s.Args[1]))
		case opentype.SegmentOpCubeTo:
			err = p.CubicTo(x(s.Args[0]), y(s.Args[0]), x(s.Args[1]), y(s.Args[1]), x(s.Args[2]), y(s.Args[2]))
		}
		if err != nil {
			return geom.Path{}, err
		}
	}
	p.ClosePath()
	return p, nil
}

// Metrics returns the face's font-wide metrics scaled to size. Vertical
// values follow canvas space: Top is negative (above the baseline), Bottom
// positive. XHeight and CapHeight are measured from the 'x' and 'H' glyph
// extents; the width aggregates cover the printable ASCII range.
func (f *Face) Metrics(size float64) geom.FontMetrics {
	sc := size / f.upem
	var m geom.FontMetrics
	if ext, ok := f.face.FontHExtents(); ok {
		m.Ascent = float64(ext.Ascender) * sc
		m.Descent = -float64(ext.Descender) * sc
		m.Leading = float64(ext.LineGap) * sc
		m.Top = -m.Ascent
		m.Bottom = m.Descent
	}
	if ext, ok := f.glyphExtents('x'); ok {
		m.XHeight = float64(ext.YBearing) * sc
	}
	if ext, ok := f.glyphExtents('H'); ok {
		m.CapHeight = float64(ext.YBearing) * sc
	}
	var sum float64
	var count int
	xMin, xMax := math.Inf(1), math.Inf(-1)
	for r := rune(' '); r <= '~'; r++ {
		gid, ok := f.face.NominalGlyph(r)
		if !ok {
			continue
		}
		adv := float64(f.face.HorizontalAdvance(gid)) * sc
		sum += adv
		count++
		m.MaxCharacterWidth = math.Max(m.MaxCharacterWidth, adv)
		if ext, ok := f.face.GlyphExtents(gid); ok {
			xMin = math.Min(xMin, float64(ext.XBearing)*sc)
			xMax = math.Max(xMax, float64(ext.XBearing+ext.Width)*sc)
		}
	}
	if count > 0 {
		m.AverageCharacterWidth = sum / float64(count)
	}
	if xMin <= xMax {
		m.XMin = xMin
		m.XMax = xMax
	}
	return m
}

func (f *Face) glyphExtents(r rune) (opentype.GlyphExtents, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return opentype.GlyphExtents{}, false
	}
	return f.face.GlyphExtents(gid)
}

// MeasureText returns the tight bounding box of text rendered at size with
// the first glyph's origin at (0, 0) on the baseline, in canvas space.
func (f *Face) MeasureText(text string, size float64) geom.Rect {
	sc := size / f.upem
	pen := 0.0
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, r := range text {
		gid, ok := f.face.NominalGlyph(r)
		if !ok {
			pen += f.Metrics(size).AverageCharacterWidth
			continue
		}
		if ext, ok := f.face.GlyphExtents(gid); ok && ext.Width != 0 {
			left := pen + float64(ext.XBearing)*sc
			x0 = math.Min(x0, left)
			x1 = math.Max(x1, left+float64(ext.Width)*sc)
			// YBearing is the glyph top, y up; Height is negative.
			y0 = math.Min(y0, -float64(ext.YBearing)*sc)
			y1 = math.Max(y1, -float64(ext.YBearing+ext.Height)*sc)
		}
		pen += float64(f.face.HorizontalAdvance(gid)) * sc
	}
	if x0 > x1 {
		return geom.Rect{}
	}
	return geom.NewRect(x0, y0, x1, y1)
}
