package geom

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, 4), Pt(4, 6).Sub(Pt(1, 2)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointLerp(t *testing.T) {
	const epsilon = 1e-12
	p0 := Pt(2.0, 4.0)
	p1 := Pt(6.0, 8.0)
	assertNear(t, p0.Lerp(p1, 0.0), p0, epsilon)
	assertNear(t, p0.Lerp(p1, 0.5), p0.Midpoint(p1), epsilon)
	assertNear(t, p0.Lerp(p1, 1.0), p1, epsilon)
}

func TestPointIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("point is not finite but should be")
	}
	if Pt(math.Inf(1), 2).IsFinite() {
		t.Error("point is finite but shouldn't be")
	}
	if Pt(1, math.NaN()).IsFinite() {
		t.Error("point is finite but shouldn't be")
	}
}
