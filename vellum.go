package vellum

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication, if a backend needs it, happens at paint submission time.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorRed         = Color{1, 0, 0, 1}
	ColorGreen       = Color{0, 1, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
	ColorTransparent = Color{}
)

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// RGBA8 returns the color as 8-bit non-premultiplied components, clamped.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return clamp8(c.R), clamp8(c.G), clamp8(c.B), clamp8(c.A)
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Union returns the smallest rectangle enclosing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{r.X, r.Y},
		{r.MaxX(), r.Y},
		{r.MaxX(), r.MaxY()},
		{r.X, r.MaxY()},
	}
}

// Transformed returns the axis-aligned box enclosing r's four corners after
// applying m.
func (r Rect) Transformed(m Matrix) Rect {
	c := r.Corners()
	x0, y0 := m.Apply(c[0].X, c[0].Y)
	out := Rect{X: x0, Y: y0}
	for _, p := range c[1:] {
		x, y := m.Apply(p.X, p.Y)
		out = out.Union(Rect{X: x, Y: y})
	}
	return out
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// TextAlign controls horizontal text alignment relative to a Text's x.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // x is the left edge (default)
	TextAlignCenter                  // x is the horizontal center
	TextAlignRight                   // x is the right edge
)
