package vellum

import "math"

// PathOp is a path command opcode.
type PathOp uint8

const (
	PathMoveTo  PathOp = iota // start a subpath at P[0]
	PathLineTo                // line to P[0]
	PathHLineTo               // horizontal line to P[0].X
	PathVLineTo               // vertical line to P[0].Y
	PathQuadTo                // quadratic bezier: control P[0], end P[1]
	PathCubicTo               // cubic bezier: controls P[0], P[1], end P[2]
	PathClose                 // close the current subpath
)

// PathCommand is one path segment. When Rel is set, every point is an
// offset from the current point.
type PathCommand struct {
	Op  PathOp
	Rel bool
	P   [3]Vec2
}

// MoveTo starts a subpath at (x, y).
func MoveTo(x, y float64) PathCommand {
	return PathCommand{Op: PathMoveTo, P: [3]Vec2{{x, y}}}
}

// MoveBy starts a subpath offset by (dx, dy) from the current point.
func MoveBy(dx, dy float64) PathCommand {
	return PathCommand{Op: PathMoveTo, Rel: true, P: [3]Vec2{{dx, dy}}}
}

// LineTo draws a line to (x, y).
func LineTo(x, y float64) PathCommand {
	return PathCommand{Op: PathLineTo, P: [3]Vec2{{x, y}}}
}

// LineBy draws a line by (dx, dy).
func LineBy(dx, dy float64) PathCommand {
	return PathCommand{Op: PathLineTo, Rel: true, P: [3]Vec2{{dx, dy}}}
}

// HLineTo draws a horizontal line to x.
func HLineTo(x float64) PathCommand {
	return PathCommand{Op: PathHLineTo, P: [3]Vec2{{X: x}}}
}

// HLineBy draws a horizontal line by dx.
func HLineBy(dx float64) PathCommand {
	return PathCommand{Op: PathHLineTo, Rel: true, P: [3]Vec2{{X: dx}}}
}

// VLineTo draws a vertical line to y.
func VLineTo(y float64) PathCommand {
	return PathCommand{Op: PathVLineTo, P: [3]Vec2{{Y: y}}}
}

// VLineBy draws a vertical line by dy.
func VLineBy(dy float64) PathCommand {
	return PathCommand{Op: PathVLineTo, Rel: true, P: [3]Vec2{{Y: dy}}}
}

// QuadTo draws a quadratic bezier with control (cx, cy) ending at (x, y).
func QuadTo(cx, cy, x, y float64) PathCommand {
	return PathCommand{Op: PathQuadTo, P: [3]Vec2{{cx, cy}, {x, y}}}
}

// QuadBy is QuadTo with offsets from the current point.
func QuadBy(dcx, dcy, dx, dy float64) PathCommand {
	return PathCommand{Op: PathQuadTo, Rel: true, P: [3]Vec2{{dcx, dcy}, {dx, dy}}}
}

// CubicTo draws a cubic bezier with controls (c1x, c1y), (c2x, c2y) ending
// at (x, y).
func CubicTo(c1x, c1y, c2x, c2y, x, y float64) PathCommand {
	return PathCommand{Op: PathCubicTo, P: [3]Vec2{{c1x, c1y}, {c2x, c2y}, {x, y}}}
}

// CubicBy is CubicTo with offsets from the current point.
func CubicBy(dc1x, dc1y, dc2x, dc2y, dx, dy float64) PathCommand {
	return PathCommand{Op: PathCubicTo, Rel: true, P: [3]Vec2{{dc1x, dc1y}, {dc2x, dc2y}, {dx, dy}}}
}

// ClosePath closes the current subpath.
func ClosePath() PathCommand {
	return PathCommand{Op: PathClose}
}

// NormalizePath rewrites cmds into absolute MoveTo, LineTo, QuadTo, CubicTo
// and ClosePath commands. Relative points are offsets from the current
// point; axis-locked lines keep the other coordinate. Closing a subpath
// returns the current point to its start.
func NormalizePath(cmds []PathCommand) []PathCommand {
	return appendNormalized(nil, cmds)
}

func appendNormalized(dst, cmds []PathCommand) []PathCommand {
	var cur, start Vec2
	for _, c := range cmds {
		var off Vec2
		if c.Rel {
			off = cur
		}
		abs := func(i int) Vec2 { return Vec2{c.P[i].X + off.X, c.P[i].Y + off.Y} }
		switch c.Op {
		case PathMoveTo:
			cur = abs(0)
			start = cur
			dst = append(dst, MoveTo(cur.X, cur.Y))
		case PathLineTo:
			cur = abs(0)
			dst = append(dst, LineTo(cur.X, cur.Y))
		case PathHLineTo:
			cur.X = c.P[0].X + off.X
			dst = append(dst, LineTo(cur.X, cur.Y))
		case PathVLineTo:
			cur.Y = c.P[0].Y + off.Y
			dst = append(dst, LineTo(cur.X, cur.Y))
		case PathQuadTo:
			c0, end := abs(0), abs(1)
			cur = end
			dst = append(dst, QuadTo(c0.X, c0.Y, end.X, end.Y))
		case PathCubicTo:
			c0, c1, end := abs(0), abs(1), abs(2)
			cur = end
			dst = append(dst, CubicTo(c0.X, c0.Y, c1.X, c1.Y, end.X, end.Y))
		case PathClose:
			cur = start
			dst = append(dst, ClosePath())
		}
	}
	return dst
}

// pointCount returns how many points of P an absolute command uses.
func (c PathCommand) pointCount() int {
	switch c.Op {
	case PathMoveTo, PathLineTo:
		return 1
	case PathQuadTo:
		return 2
	case PathCubicTo:
		return 3
	default:
		return 0
	}
}

// controlBounds returns the box enclosing every point of normalized
// commands. Bezier curves lie inside the hull of their control points, so
// the box encloses the drawn path. The second result is false when there
// are no points.
func controlBounds(abs []PathCommand) (Rect, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	for _, c := range abs {
		for i := 0; i < c.pointCount(); i++ {
			p := c.P[i]
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
			found = true
		}
	}
	if !found {
		return Rect{}, false
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}, true
}

// kappa is the cubic control distance approximating a quarter circle.
const kappa = 0.5522847498307936

// rectOutline returns the outline of a box with corner radius r, clamped to
// half the shorter side.
func rectOutline(b Rect, r float64) []PathCommand {
	r = math.Min(r, math.Min(b.Width, b.Height)/2)
	if r <= 0 {
		return []PathCommand{
			MoveTo(b.X, b.Y),
			LineTo(b.MaxX(), b.Y),
			LineTo(b.MaxX(), b.MaxY()),
			LineTo(b.X, b.MaxY()),
			ClosePath(),
		}
	}
	k := r * (1 - kappa)
	x0, y0, x1, y1 := b.X, b.Y, b.MaxX(), b.MaxY()
	return []PathCommand{
		MoveTo(x0+r, y0),
		LineTo(x1-r, y0),
		CubicTo(x1-k, y0, x1, y0+k, x1, y0+r),
		LineTo(x1, y1-r),
		CubicTo(x1, y1-k, x1-k, y1, x1-r, y1),
		LineTo(x0+r, y1),
		CubicTo(x0+k, y1, x0, y1-k, x0, y1-r),
		LineTo(x0, y0+r),
		CubicTo(x0, y0+k, x0+k, y0, x0+r, y0),
		ClosePath(),
	}
}

// circleOutline returns four cubic arcs approximating a circle.
func circleOutline(cx, cy, r float64) []PathCommand {
	k := r * kappa
	return []PathCommand{
		MoveTo(cx+r, cy),
		CubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r),
		CubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy),
		CubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r),
		CubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy),
		ClosePath(),
	}
}
