package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)
	assertVec(t, "Add", a.Add(b), V(4, 2))
	assertVec(t, "Sub", a.Sub(b), V(2, 6))
	assertVec(t, "Scale", a.Scale(2), V(6, 8))
	assertVec(t, "Div", a.Div(2), V(1.5, 2))
	assertVec(t, "Neg", a.Neg(), V(-3, -4))
	assertVec(t, "Abs", b.Abs(), V(1, 2))
	assertNear(t, "Dot", a.Dot(b), -5)
	assertNear(t, "Len", a.Len(), 5)
	assertNear(t, "LenSq", a.LenSq(), 25)
	assertNear(t, "Dist", a.Dist(V(0, 0)), 5)
}

func TestVecDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic dividing by zero")
		}
	}()
	V(1, 1).Div(0)
}

func TestVecValueOpsDoNotMutate(t *testing.T) {
	a := V(1, 2)
	_ = a.Add(V(5, 5))
	_ = a.Scale(10)
	if a != V(1, 2) {
		t.Errorf("a = %v, want unchanged (1, 2)", a)
	}
}

func TestVecLerp(t *testing.T) {
	a := V(0, 10)
	b := V(10, 20)
	assertVec(t, "t=0", a.Lerp(b, 0), a)
	assertVec(t, "t=1", a.Lerp(b, 1), b)
	assertVec(t, "t=0.25", a.Lerp(b, 0.25), V(2.5, 12.5))
}

func TestVecReflect(t *testing.T) {
	// Falling onto a floor whose normal points up (negative Y).
	got := V(3, 5).Reflect(V(0, -1))
	assertVec(t, "reflect", got, V(3, -5))
}

func TestVecClamp(t *testing.T) {
	got := V(-5, 50).Clamp(V(0, 0), V(10, 10))
	assertVec(t, "clamp", got, V(0, 10))
}

func TestVecNormalize(t *testing.T) {
	v := V(0, 3)
	v.Normalize()
	assertVec(t, "normalize", v, V(0, 1))

	z := Vec2{}
	z.Normalize()
	if !z.IsZero() {
		t.Errorf("zero normalized = %v, want zero", z)
	}
}

func TestVecSet(t *testing.T) {
	var v Vec2
	v.Set(7, -1)
	if v != V(7, -1) {
		t.Errorf("Set = %v", v)
	}
}
