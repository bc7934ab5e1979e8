package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTranslateRoundTrip(t *testing.T) {
	var p Path
	p.MoveTo(1, 2)
	p.CubicTo(3, 4, 5, 6, 7, 8)
	p.ConicTo(9, 10, 11, 12, 0.5)
	want := p.Clone()

	p.Translate(123.25, -456.5)
	p.Translate(-123.25, 456.5)
	diff(t, want, &p, cmpopts.EquateApprox(0, 1e-9))
}

func TestRotateDegrees(t *testing.T) {
	var p Path
	p.MoveTo(10, 0)
	p.Rotate(90)
	assertNear(t, p.Back(), Pt(0, 10), 1e-9)

	p.Rotate(-90)
	assertNear(t, p.Back(), Pt(10, 0), 1e-9)
}

func TestScalePath(t *testing.T) {
	var p Path
	p.AddRect(0, 0, 10, 10)
	p.Scale(2, 3)
	diff(t, NewRect(0, 0, 20, 30), p.BoundingBox())
}

func TestTransformKeepsVerbStructure(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.QuadTo(10, 10, 20, 0)
	p.ConicTo(30, 10, 40, 0, 0.75)
	p.ClosePath()

	p.Transform(Rotate(1.234).ThenTranslate(Vec(5, 6)))

	verbs := p.Contours[0].Verbs
	kinds := make([]VerbKind, len(verbs))
	for i, v := range verbs {
		kinds[i] = v.Kind
	}
	diff(t, []VerbKind{MoveToVerb, QuadToVerb, ConicToVerb, CloseVerb}, kinds)
	diff(t, 0.75, verbs[2].Weight)
}

func TestTransformCallOrderMatters(t *testing.T) {
	a := &Path{}
	a.MoveTo(1, 0)
	a.Rotate(90)
	a.Translate(10, 0)

	b := &Path{}
	b.MoveTo(1, 0)
	b.Translate(10, 0)
	b.Rotate(90)

	assertNear(t, a.Back(), Pt(10, 1), 1e-9)
	assertNear(t, b.Back(), Pt(0, 11), 1e-9)
}

func TestTransformNonFinite(t *testing.T) {
	var p Path
	p.MoveTo(1, 1)
	before := p.Clone()

	if err := p.Translate(math.NaN(), 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got %v, expected ErrInvalidGeometry", err)
	}
	if err := p.Rotate(math.Inf(1)); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got %v, expected ErrInvalidGeometry", err)
	}
	if err := p.Scale(1, math.NaN()); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("got %v, expected ErrInvalidGeometry", err)
	}
	diff(t, before, &p)
}
