package vellum

import (
	"fmt"
	"math"
)

// Matrix is a 2D affine matrix [a, b, c, d, e, f].
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
type Matrix [6]float64

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-12

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translation returns a matrix translating by (x, y).
func Translation(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// Scaling returns a matrix scaling by (sx, sy).
func Scaling(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotation returns a matrix rotating by theta radians.
func Rotation(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Skewing returns a matrix skewing by the given angles in radians.
func Skewing(ax, ay float64) Matrix {
	return Matrix{1, math.Tan(ay), math.Tan(ax), 1, 0, 0}
}

// Mul returns m * rhs: rhs is applied first, then m.
func (m Matrix) Mul(rhs Matrix) Matrix {
	return Matrix{
		m[0]*rhs[0] + m[2]*rhs[1],
		m[1]*rhs[0] + m[3]*rhs[1],
		m[0]*rhs[2] + m[2]*rhs[3],
		m[1]*rhs[2] + m[3]*rhs[3],
		m[0]*rhs[4] + m[2]*rhs[5] + m[4],
		m[1]*rhs[4] + m[3]*rhs[5] + m[5],
	}
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// Invert returns the inverse of m. A singular matrix is an authoring error
// and panics.
func (m Matrix) Invert() Matrix {
	det := m.Det()
	if det > -singularEpsilon && det < singularEpsilon {
		panic(fmt.Sprintf("vellum: cannot invert singular matrix %v", m))
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// ScaleFactors returns the lengths of the transformed unit axes.
func (m Matrix) ScaleFactors() (sx, sy float64) {
	return math.Hypot(m[0], m[1]), math.Hypot(m[2], m[3])
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// TransformState tells which half of a Transform is authoritative.
type TransformState uint8

const (
	TransformLocal      TransformState = iota // relative to the parent
	TransformGlobal                           // absolute; ignores the parent
	TransformCalculated                       // finalized for the current pass
)

// Transform is a node's affine transform together with its resolution
// state. It starts Local(identity), is edited with Translate, Scale, Rotate
// and Skew, and is finalized once per pass by CalculateGlobal.
type Transform struct {
	state    TransformState
	local    Matrix
	global   Matrix
	hasLocal bool // Calculated only: whether global came from a local matrix

	// initialized is false only for the zero Transform, read as Local(identity).
	initialized bool
}

// ensure turns the zero Transform into Local(identity) so shapes built as
// struct literals behave like NewTransform. A zero matrix set on purpose
// is kept.
func (t *Transform) ensure() {
	if t.initialized {
		return
	}
	if t.state == TransformLocal {
		t.local = Identity()
	}
	t.initialized = true
}

// NewTransform returns Local(identity).
func NewTransform() Transform {
	return Transform{state: TransformLocal, local: Identity(), initialized: true}
}

// LocalTransform returns a transform relative to the parent.
func LocalTransform(m Matrix) Transform {
	return Transform{state: TransformLocal, local: m, initialized: true}
}

// GlobalTransform returns an absolute transform that ignores the parent.
func GlobalTransform(m Matrix) Transform {
	return Transform{state: TransformGlobal, global: m, initialized: true}
}

// State returns the current state.
func (t *Transform) State() TransformState { return t.state }

// IsAbsolute reports whether the transform no longer depends on its parent:
// Global, or Calculated from an absolute matrix.
func (t *Transform) IsAbsolute() bool {
	switch t.state {
	case TransformGlobal:
		return true
	case TransformCalculated:
		return !t.hasLocal
	default:
		return false
	}
}

// IsNotExist reports whether the transform is an absolute identity, which
// renderers elide.
func (t *Transform) IsNotExist() bool {
	return t.IsAbsolute() && t.global.IsIdentity()
}

// Local returns the local matrix. For an absolute transform it returns
// identity.
func (t *Transform) Local() Matrix {
	t.ensure()
	switch t.state {
	case TransformLocal:
		return t.local
	case TransformCalculated:
		if t.hasLocal {
			return t.local
		}
	}
	return Identity()
}

// Global returns the resolved global matrix and whether one was computed.
// A Local transform that was never calculated has no global matrix.
func (t *Transform) Global() (Matrix, bool) {
	switch t.state {
	case TransformGlobal, TransformCalculated:
		return t.global, true
	default:
		return Identity(), false
	}
}

// Matrix returns the global matrix if one was computed, else the local one.
func (t *Transform) Matrix() Matrix {
	t.ensure()
	if g, ok := t.Global(); ok {
		return g
	}
	return t.local
}

// CalculateGlobal finalizes the transform against the parent's resolved
// global matrix. It must run exactly once per node per pass, parent first.
// Calling it again in the same pass rebuilds the same result.
func (t *Transform) CalculateGlobal(parent Matrix) Matrix {
	t.ensure()
	switch t.state {
	case TransformLocal:
		t.global = parent.Mul(t.local)
		t.hasLocal = true
	case TransformGlobal:
		t.hasLocal = false
	case TransformCalculated:
		if t.hasLocal {
			t.global = parent.Mul(t.local)
		}
	}
	t.state = TransformCalculated
	return t.global
}

// apply edits whichever half is authoritative with op applied first.
func (t *Transform) apply(op Matrix) {
	t.ensure()
	switch t.state {
	case TransformLocal:
		t.local = t.local.Mul(op)
	case TransformGlobal:
		t.global = t.global.Mul(op)
	case TransformCalculated:
		if t.hasLocal {
			t.state = TransformLocal
			t.local = t.local.Mul(op)
		} else {
			t.state = TransformGlobal
			t.global = t.global.Mul(op)
		}
	}
}

// Translate moves the transform by (x, y) in its own space.
func (t *Transform) Translate(x, y float64) { t.apply(Translation(x, y)) }

// Scale scales the transform by (sx, sy).
func (t *Transform) Scale(sx, sy float64) { t.apply(Scaling(sx, sy)) }

// Rotate rotates the transform by theta radians.
func (t *Transform) Rotate(theta float64) { t.apply(Rotation(theta)) }

// Skew skews the transform by the given angles in radians.
func (t *Transform) Skew(ax, ay float64) { t.apply(Skewing(ax, ay)) }

// SetLocal replaces the transform with Local(m).
func (t *Transform) SetLocal(m Matrix) { *t = LocalTransform(m) }

// SetGlobal replaces the transform with Global(m).
func (t *Transform) SetGlobal(m Matrix) { *t = GlobalTransform(m) }
