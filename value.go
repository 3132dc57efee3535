package vellum

import "fmt"

// ValueKind is how a Value is measured.
type ValueKind uint8

const (
	ValueAuto ValueKind = iota // sized from children after they are laid out
	ValuePx                    // absolute pixels
	ValuePct                   // percentage of the parent's extent
)

// String returns the kind's name.
func (k ValueKind) String() string {
	switch k {
	case ValueAuto:
		return "auto"
	case ValuePx:
		return "px"
	case ValuePct:
		return "pct"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// Value is a measurement that is automatic, pixel or percentage. Val returns
// the raw number regardless of kind; for Auto and Pct it is only meaningful
// once the recalculation pass has resolved it.
//
// A Value keeps its declared kind across passes. Resolve stores the pixel
// result and marks the value resolved; a later pass re-arms it so a new
// parent extent is honored.
type Value struct {
	raw      float64
	pct      float64
	kind     ValueKind
	resolved bool
}

// Auto returns an automatically sized value.
func Auto() Value { return Value{kind: ValueAuto} }

// Px returns an absolute pixel value.
func Px(v float64) Value { return Value{raw: v, kind: ValuePx, resolved: true} }

// Pct returns a percentage value, where 100 is the full parent extent.
func Pct(p float64) Value { return Value{pct: p, kind: ValuePct} }

// Val returns the raw value.
func (v Value) Val() float64 { return v.raw }

// Kind returns the declared kind.
func (v Value) Kind() ValueKind { return v.kind }

// Percent returns the declared percentage. Zero unless Kind is ValuePct.
func (v Value) Percent() float64 { return v.pct }

// IsAuto reports whether v is declared Auto.
func (v Value) IsAuto() bool { return v.kind == ValueAuto }

// IsResolved reports whether Val holds a pixel result.
func (v Value) IsResolved() bool { return v.resolved }

// NeedsAuto reports whether v is Auto and still unresolved in this pass.
func (v Value) NeedsAuto() bool { return v.kind == ValueAuto && !v.resolved }

// Set replaces v with an absolute pixel value.
func (v *Value) Set(px float64) {
	*v = Px(px)
}

// Resolve converts a Pct value into pixels against extent, adding origin.
// Px and already resolved values are left untouched.
func (v *Value) Resolve(extent, origin float64) {
	if v.resolved || v.kind != ValuePct {
		return
	}
	v.raw = v.pct/100*extent + origin
	v.resolved = true
}

// resolveAuto sets an Auto value from measured content. A value resolved
// earlier in the pass is never overwritten.
func (v *Value) resolveAuto(px float64) {
	if !v.NeedsAuto() {
		return
	}
	v.raw = px
	v.resolved = true
}

// rearm clears the resolution of Auto and Pct values for a new pass.
func (v *Value) rearm() {
	if v.kind != ValuePx {
		v.resolved = false
	}
}

// String formats the value for debugging.
func (v Value) String() string {
	switch v.kind {
	case ValueAuto:
		if v.resolved {
			return fmt.Sprintf("auto(%g)", v.raw)
		}
		return "auto"
	case ValuePct:
		if v.resolved {
			return fmt.Sprintf("%g%%(%g)", v.pct, v.raw)
		}
		return fmt.Sprintf("%g%%", v.pct)
	default:
		return fmt.Sprintf("%gpx", v.raw)
	}
}

// Padding is four Values around a shape's content, in layout space.
type Padding struct {
	Top, Right, Bottom, Left Value
}

// PadAll returns equal pixel padding on every side.
func PadAll(px float64) Padding {
	return Padding{Px(px), Px(px), Px(px), Px(px)}
}

// PadXY returns pixel padding with horizontal x and vertical y.
func PadXY(x, y float64) Padding {
	return Padding{Px(y), Px(x), Px(y), Px(x)}
}

// TopAndBottom returns the resolved vertical padding sum.
func (p Padding) TopAndBottom() float64 { return p.Top.Val() + p.Bottom.Val() }

// LeftAndRight returns the resolved horizontal padding sum.
func (p Padding) LeftAndRight() float64 { return p.Left.Val() + p.Right.Val() }

// resolve resolves percentage padding against the parent bound. Padding is
// a length so no origin offset is added.
func (p *Padding) resolve(parent Rect) {
	p.Top.rearm()
	p.Right.rearm()
	p.Bottom.rearm()
	p.Left.rearm()
	p.Top.Resolve(parent.Height, 0)
	p.Bottom.Resolve(parent.Height, 0)
	p.Left.Resolve(parent.Width, 0)
	p.Right.Resolve(parent.Width, 0)
	// Auto padding has no content to measure; it is zero.
	p.Top.resolveAuto(0)
	p.Right.resolveAuto(0)
	p.Bottom.resolveAuto(0)
	p.Left.resolveAuto(0)
}
