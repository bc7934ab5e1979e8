package font

import (
	"math"
	"testing"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	geom "github.com/Alpha-00/cavalry-types"
)

func TestParse(t *testing.T) {
	face, err := Parse(goregular.TTF)
	require.NoError(t, err)
	require.NotNil(t, face)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse([]byte("not a font"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		family, style string
	}{
		{"Latin Modern Roman", "regular"},
		{"Latin Modern Roman", "bold"},
		{"Latin Modern Roman", "italic"},
		{"latin modern roman", ""},
		{"Go", "regular"},
		{"go", ""},
	} {
		face, err := Load(tc.family, tc.style)
		require.NoErrorf(t, err, "%s %s", tc.family, tc.style)
		require.NotNil(t, face)
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("Comic Sans", "regular")
	assert.ErrorIs(t, err, ErrUnknownFace)

	_, err = Load("Go", "bold")
	assert.ErrorIs(t, err, ErrUnknownFace)
}

func TestGlyphOutline(t *testing.T) {
	face, err := Load("Go", "regular")
	require.NoError(t, err)

	g, ok := face.Glyph('A', 100)
	require.True(t, ok)
	assert.Greater(t, g.Advance, 0.0)
	require.NotEmpty(t, g.Path.Contours)
	for _, c := range g.Path.Contours {
		assert.True(t, c.Closed, "glyph contours are closed")
	}

	// Canvas space: the outline sits above the baseline, so y is negative.
	bbox := g.Path.BoundingBox()
	assert.Less(t, bbox.Y0, 0.0)
	assert.LessOrEqual(t, bbox.Y1, 1e-9)
	assert.Less(t, bbox.Width(), 100.0)
	assert.Greater(t, bbox.Width(), 10.0)
}

func TestGlyphScalesWithSize(t *testing.T) {
	face, err := Load("Go", "regular")
	require.NoError(t, err)

	small, ok := face.Glyph('M', 10)
	require.True(t, ok)
	large, ok := face.Glyph('M', 20)
	require.True(t, ok)
	assert.InDelta(t, 2*small.Advance, large.Advance, 1e-9)
	assert.InDelta(t, 2*small.Path.BoundingBox().Width(), large.Path.BoundingBox().Width(), 1e-9)
}

func TestOutlinePathRejectsNonFinite(t *testing.T) {
	segs := []opentype.Segment{
		{Op: opentype.SegmentOpMoveTo, Args: [3]opentype.SegmentPoint{{X: 0, Y: 0}}},
		{Op: opentype.SegmentOpLineTo, Args: [3]opentype.SegmentPoint{{X: float32(math.Inf(1)), Y: 0}}},
	}
	_, err := outlinePath(segs, 1)
	assert.ErrorIs(t, err, geom.ErrInvalidGeometry)
}

func TestGlyphMissing(t *testing.T) {
	face, err := Load("Go", "regular")
	require.NoError(t, err)

	_, ok := face.Glyph('￾', 12)
	assert.False(t, ok)
}

func TestMetrics(t *testing.T) {
	face, err := Load("Latin Modern Roman", "regular")
	require.NoError(t, err)

	m := face.Metrics(100)
	assert.Greater(t, m.Ascent, 0.0)
	assert.Greater(t, m.Descent, 0.0)
	assert.Equal(t, -m.Ascent, m.Top)
	assert.Equal(t, m.Descent, m.Bottom)
	assert.Greater(t, m.CapHeight, m.XHeight)
	assert.Greater(t, m.XHeight, 0.0)
	assert.Greater(t, m.MaxCharacterWidth, m.AverageCharacterWidth)
	assert.Greater(t, m.AverageCharacterWidth, 0.0)
	assert.Less(t, m.XMin, m.XMax)

	// Metrics scale linearly with size.
	half := face.Metrics(50)
	assert.InDelta(t, m.Ascent/2, half.Ascent, 1e-9)
	assert.InDelta(t, m.CapHeight/2, half.CapHeight, 1e-9)
}

func TestMeasureText(t *testing.T) {
	face, err := Load("Go", "regular")
	require.NoError(t, err)

	short := face.MeasureText("Hi", 50)
	long := face.MeasureText("Hello, world", 50)
	assert.Greater(t, long.Width(), short.Width())
	assert.Less(t, short.Y0, 0.0)

	assert.Equal(t, 0.0, face.MeasureText("", 50).Width())
}
