package vellum

// PaintKind selects how a Paint colors pixels.
type PaintKind uint8

const (
	PaintSolid          PaintKind = iota // one color
	PaintLinearGradient                  // Inner at Start blending to Outer at End
	PaintRadialGradient                  // Inner inside InnerRadius blending to Outer at OuterRadius
	PaintBoxGradient                     // feathered rounded box from Inner to Outer
)

// Paint is a solid color or a two-stop gradient. Gradient geometry is in the
// painted shape's local space.
type Paint struct {
	Kind PaintKind

	// Solid color, and the inner color of gradients.
	Inner Color
	// Outer color of gradients.
	Outer Color

	// Linear: from Start to End.
	Start, End Vec2

	// Radial: centered on Center.
	Center                   Vec2
	InnerRadius, OuterRadius float64

	// Box: Box is the rectangle, Radius its corner rounding and Feather the
	// blur distance.
	Box     Rect
	Radius  float64
	Feather float64
}

// SolidPaint returns a single-color paint.
func SolidPaint(c Color) Paint {
	return Paint{Kind: PaintSolid, Inner: c}
}

// LinearGradient returns a paint blending from inner at (sx, sy) to outer at
// (ex, ey).
func LinearGradient(sx, sy, ex, ey float64, inner, outer Color) Paint {
	return Paint{
		Kind:  PaintLinearGradient,
		Inner: inner,
		Outer: outer,
		Start: Vec2{sx, sy},
		End:   Vec2{ex, ey},
	}
}

// RadialGradient returns a paint centered on (cx, cy) blending from inner at
// innerRadius to outer at outerRadius.
func RadialGradient(cx, cy, innerRadius, outerRadius float64, inner, outer Color) Paint {
	return Paint{
		Kind:        PaintRadialGradient,
		Inner:       inner,
		Outer:       outer,
		Center:      Vec2{cx, cy},
		InnerRadius: innerRadius,
		OuterRadius: outerRadius,
	}
}

// BoxGradient returns a feathered rounded-box paint, commonly used for
// drop shadows.
func BoxGradient(box Rect, radius, feather float64, inner, outer Color) Paint {
	return Paint{
		Kind:    PaintBoxGradient,
		Inner:   inner,
		Outer:   outer,
		Box:     box,
		Radius:  radius,
		Feather: feather,
	}
}

// Color returns the paint's representative color: the solid color, or the
// inner color of a gradient. Backends that cannot express a gradient use it
// as their fallback.
func (p Paint) Color() Color {
	return p.Inner
}

// Stroke is an outline paint with a line width.
type Stroke struct {
	Paint Paint
	Width float64
}

// SolidStroke returns a solid-colored stroke.
func SolidStroke(c Color, width float64) *Stroke {
	return &Stroke{Paint: SolidPaint(c), Width: width}
}

// Fill returns a solid fill for use in shape literals.
func Fill(c Color) *Paint {
	p := SolidPaint(c)
	return &p
}

// Transparency returns a transparency override for use in Group literals.
func Transparency(t float64) *float64 {
	return &t
}
