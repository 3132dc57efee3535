package vellum

import (
	"math"
	"testing"
)

const epsilon = 1e-9

const halfPi = math.Pi / 2

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// --- Matrix ---

func TestMatrixConstructors(t *testing.T) {
	assertMatrix(t, "identity", Identity(), Matrix{1, 0, 0, 1, 0, 0})
	assertMatrix(t, "translation", Translation(10, 20), Matrix{1, 0, 0, 1, 10, 20})
	assertMatrix(t, "scale", Scaling(2, 3), Matrix{2, 0, 0, 3, 0, 0})
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", Rotation(halfPi), Matrix{0, 1, -1, 0, 0, 0})
}

func TestMatrixMulAppliesRightFirst(t *testing.T) {
	m := Translation(10, 0).Mul(Scaling(2, 2))
	x, y := m.Apply(1, 1)
	assertNear(t, "x", x, 12)
	assertNear(t, "y", y, 2)
}

func TestMatrixMulAssociative(t *testing.T) {
	a := Translation(3, -4)
	b := Rotation(0.7)
	c := Scaling(2, 0.5)
	assertMatrix(t, "assoc", a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
}

func TestMatrixMulNotCommutative(t *testing.T) {
	a := Translation(10, 0)
	b := Rotation(halfPi)
	ab, ba := a.Mul(b), b.Mul(a)
	if ab == ba {
		t.Errorf("translate*rotate == rotate*translate = %v", ab)
	}
	assertMatrix(t, "ab", ab, Matrix{0, 1, -1, 0, 10, 0})
	assertMatrix(t, "ba", ba, Matrix{0, 1, -1, 0, 0, 10})
}

func TestMatrixIdentityIsNeutral(t *testing.T) {
	m := Matrix{1.5, 0.2, -0.3, 0.9, 7, -2}
	assertMatrix(t, "I*m", Identity().Mul(m), m)
	assertMatrix(t, "m*I", m.Mul(Identity()), m)
}

func TestMatrixInvert(t *testing.T) {
	m := Translation(5, 7).Mul(Rotation(0.3)).Mul(Scaling(2, 4))
	assertMatrix(t, "m*inv", m.Mul(m.Invert()), Identity())
	x, y := m.Invert().Apply(m.Apply(3, -1))
	assertNear(t, "x", x, 3)
	assertNear(t, "y", y, -1)
}

func TestMatrixInvertSingularPanics(t *testing.T) {
	assertPanics(t, "singular", func() { Scaling(0, 1).Invert() })
}

func TestMatrixScaleFactors(t *testing.T) {
	sx, sy := Rotation(0.4).Mul(Scaling(3, 5)).ScaleFactors()
	assertNear(t, "sx", sx, 3)
	assertNear(t, "sy", sy, 5)
}

// --- Transform ---

func TestTransformZeroValueIsIdentity(t *testing.T) {
	var tr Transform
	assertMatrix(t, "local", tr.Local(), Identity())
	assertMatrix(t, "global", tr.CalculateGlobal(Translation(1, 2)), Translation(1, 2))
}

func TestTransformScaleToZeroKeepsZero(t *testing.T) {
	tr := NewTransform()
	tr.Scale(0, 0)
	assertMatrix(t, "local", tr.Local(), Matrix{})
	assertMatrix(t, "global", tr.CalculateGlobal(Translation(5, 5)), Matrix{0, 0, 0, 0, 5, 5})

	zero := LocalTransform(Matrix{})
	assertMatrix(t, "explicit zero", zero.Local(), Matrix{})

	r := NewRectangle(Px(0), Px(0), Px(10), Px(10))
	r.Transform.Scale(0, 0)
	Recalculate(NewNode(r), Rect{Width: 100, Height: 100}, nil)
	g, ok := r.Transform.Global()
	if !ok {
		t.Fatal("rectangle transform not calculated")
	}
	assertMatrix(t, "rect global", g, Matrix{})
}

func TestTransformLocalComposesWithParent(t *testing.T) {
	tr := NewTransform()
	tr.Translate(10, 0)
	got := tr.CalculateGlobal(Scaling(2, 2))
	assertMatrix(t, "global", got, Matrix{2, 0, 0, 2, 20, 0})
	if tr.State() != TransformCalculated {
		t.Errorf("State = %v, want Calculated", tr.State())
	}
	if tr.IsAbsolute() {
		t.Error("calculated from local should not be absolute")
	}
}

func TestTransformGlobalIgnoresParent(t *testing.T) {
	tr := GlobalTransform(Translation(4, 4))
	got := tr.CalculateGlobal(Scaling(10, 10))
	assertMatrix(t, "global", got, Translation(4, 4))
	if !tr.IsAbsolute() {
		t.Error("global transform should be absolute")
	}
}

func TestTransformCalculateTwiceIsStable(t *testing.T) {
	tr := NewTransform()
	tr.Translate(3, 3)
	parent := Translation(1, 1)
	first := tr.CalculateGlobal(parent)
	second := tr.CalculateGlobal(parent)
	assertMatrix(t, "second", second, first)
}

func TestTransformEditAfterCalculateDegrades(t *testing.T) {
	tr := NewTransform()
	tr.Translate(5, 0)
	tr.CalculateGlobal(Translation(100, 0))
	tr.Translate(1, 0)
	if tr.State() != TransformLocal {
		t.Fatalf("State = %v, want Local", tr.State())
	}
	assertMatrix(t, "local", tr.Local(), Translation(6, 0))

	g := GlobalTransform(Identity())
	g.CalculateGlobal(Translation(9, 9))
	g.Scale(2, 2)
	if g.State() != TransformGlobal {
		t.Errorf("State = %v, want Global", g.State())
	}
}

func TestTransformIsNotExist(t *testing.T) {
	tr := GlobalTransform(Identity())
	if !tr.IsNotExist() {
		t.Error("absolute identity should not exist")
	}
	local := NewTransform()
	if local.IsNotExist() {
		t.Error("local identity depends on its parent")
	}
}
