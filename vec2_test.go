package geom

import (
	"math"
	"testing"
)

func TestVec2Products(t *testing.T) {
	if d := Vec(2, 3).Dot(Vec(4, 5)); d != 23 {
		t.Errorf("got dot product %v, want 23", d)
	}
	if c := Vec(2, 3).Cross(Vec(4, 5)); c != -2 {
		t.Errorf("got cross product %v, want -2", c)
	}
}

func TestVec2Hypot(t *testing.T) {
	v := Vec(3, 4)
	if h := v.Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
	if h := v.Hypot2(); h != 25 {
		t.Errorf("got squared magnitude %v, want 25", h)
	}
}

func TestVec2Angle(t *testing.T) {
	const epsilon = 1e-12
	if a := Vec(1, 0).Angle(); math.Abs(a) > epsilon {
		t.Errorf("got angle %v, want 0", a)
	}
	if a := Vec(0, 1).Angle(); math.Abs(a-math.Pi/2) > epsilon {
		t.Errorf("got angle %v, want %v", a, math.Pi/2)
	}

	v := VecFromAngle(math.Pi / 3)
	if d := math.Abs(v.Angle() - math.Pi/3); d > epsilon {
		t.Errorf("got angle %v, want %v", v.Angle(), math.Pi/3)
	}
	if d := math.Abs(v.Hypot() - 1.0); d > epsilon {
		t.Errorf("got magnitude %v, want 1", v.Hypot())
	}
}

func TestVec2Normalize(t *testing.T) {
	const epsilon = 1e-12
	v := Vec(3, 4).Normalize()
	if d := math.Abs(v.Hypot() - 1.0); d > epsilon {
		t.Errorf("got magnitude %v, want 1", v.Hypot())
	}
	// Same direction as the input.
	if c := v.Cross(Vec(3, 4)); math.Abs(c) > epsilon {
		t.Errorf("got cross product %v, want 0", c)
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec(1, 2)
	b := Vec(5, 10)
	diff(t, a, a.Lerp(b, 0.0))
	diff(t, Vec(3, 6), a.Lerp(b, 0.5))
	diff(t, b, a.Lerp(b, 1.0))
	diff(t, Vec(-1, -2), a.Negate())
}
