package vellum

// ClipKind distinguishes an absent clip from a scissor rectangle.
type ClipKind uint8

const (
	ClipNone    ClipKind = iota // no clipping
	ClipScissor                 // clip to a transformed rectangle
)

// Clip restricts painting to a rectangle. Scissor geometry is resolved
// against the same parent bound as the shape that owns it; Transform is set
// to the owner's global matrix during recalculation.
type Clip struct {
	Kind                ClipKind
	X, Y, Width, Height Value
	Transform           Matrix
}

// NoClip returns an absent clip.
func NoClip() Clip { return Clip{} }

// Scissor returns a scissor clip.
func Scissor(x, y, width, height Value) Clip {
	return Clip{Kind: ClipScissor, X: x, Y: y, Width: width, Height: height, Transform: Identity()}
}

// IsNone reports whether c is absent.
func (c Clip) IsNone() bool { return c.Kind == ClipNone }

// Or returns c unless it is absent, in which case it returns other.
func (c Clip) Or(other Clip) Clip {
	if c.Kind == ClipNone {
		return other
	}
	return c
}

// Rect returns the resolved scissor rectangle in the clip's own space.
func (c Clip) Rect() Rect {
	return Rect{c.X.Val(), c.Y.Val(), c.Width.Val(), c.Height.Val()}
}

// resolve resolves scissor geometry against the parent bound and pins the
// clip to the owner's global matrix. Auto scissor extents span the parent.
func (c *Clip) resolve(parent Rect, global Matrix) {
	if c.Kind == ClipNone {
		return
	}
	c.X.rearm()
	c.Y.rearm()
	c.Width.rearm()
	c.Height.rearm()
	c.X.Resolve(parent.Width, parent.X)
	c.Y.Resolve(parent.Height, parent.Y)
	c.Width.Resolve(parent.Width, 0)
	c.Height.Resolve(parent.Height, 0)
	c.X.resolveAuto(parent.X)
	c.Y.resolveAuto(parent.Y)
	c.Width.resolveAuto(parent.Width)
	c.Height.resolveAuto(parent.Height)
	c.Transform = global
}

// ScissorRect is a resolved clip handed to a PaintSink: a rectangle in the
// space of Transform.
type ScissorRect struct {
	Rect      Rect
	Transform Matrix
}

// DeviceBounds returns the axis-aligned device-space box enclosing the
// transformed scissor rectangle.
func (s ScissorRect) DeviceBounds() Rect {
	return s.Rect.Transformed(s.Transform)
}
