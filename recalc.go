package vellum

import (
	"fmt"
	"math"
)

// Recalculate resolves every percentage and auto value under root against
// bound, finalizes transforms and clips, and computes each node's bound.
// Every component subtree is walked regardless of its cached state.
// It returns root's bound.
func Recalculate(root *Node, bound Rect, fonts FontService) Rect {
	p := recalcPass{fonts: fonts, force: true}
	return p.node(root, bound, Identity(), Style{})
}

// recalcPass is one depth-first geometry traversal. Parents are finalized
// before their children; auto sizes flow back up as the recursion returns.
type recalcPass struct {
	fonts FontService
	// force walks clean component subtrees whose inputs did not change.
	force bool

	visited int
	skipped int
}

func (p *recalcPass) node(n *Node, parent Rect, parentGlobal Matrix, style Style) Rect {
	p.visited++
	var b Rect
	switch s := n.shape.(type) {
	case nil:
		b = p.comp(n, parent, parentGlobal, style)
	case *Rectangle:
		b = p.rect(n, s, parent, parentGlobal, style)
	case *Circle:
		b = p.circle(n, s, parent, parentGlobal, style)
	case *Path:
		b = p.path(n, s, parent, parentGlobal, style)
	case *Text:
		b = p.text(n, s, parent, parentGlobal, style)
	case *Group:
		global := s.Transform.CalculateGlobal(parentGlobal)
		s.Clip.resolve(parent, global)
		b, _ = p.children(n, parent, global, style.WithGroup(s))
	}
	n.bound = b
	return b
}

// comp recalculates an embedded component, or reuses its last bound when
// nothing inside changed and it is laid out against the same inputs.
func (p *recalcPass) comp(n *Node, parent Rect, parentGlobal Matrix, style Style) Rect {
	b := n.comp.base()
	key := recalcKey{parent: parent, global: parentGlobal, style: style, transform: b.transform}
	if !p.force && !b.dirty && b.keyValid && b.key == key {
		p.skipped++
		return b.bound
	}
	global := b.transform.CalculateGlobal(parentGlobal)
	bound := p.node(n.comp.View(), parent, global, style)
	key.transform = b.transform
	b.key, b.keyValid = key, true
	b.bound = bound
	b.dirty = false
	return bound
}

// children lays out n's children against bound and returns the union of
// their bounds. The bool is false when n has no children.
func (p *recalcPass) children(n *Node, bound Rect, global Matrix, style Style) (Rect, bool) {
	var inner Rect
	for i, c := range n.children {
		b := p.node(c, bound, global, style)
		if i == 0 {
			inner = b
		} else {
			inner = inner.Union(b)
		}
	}
	return inner, len(n.children) > 0
}

func (p *recalcPass) rect(n *Node, r *Rectangle, parent Rect, parentGlobal Matrix, style Style) Rect {
	resolvePosition(&r.X, &r.Y, parent)
	resolveSize(&r.Width, &r.Height, parent)
	if r.Rounding != nil {
		r.Rounding.rearm()
		r.Rounding.Resolve(math.Min(parent.Width, parent.Height), 0)
		r.Rounding.resolveAuto(0)
	}
	r.Padding.resolve(parent)

	global := r.Transform.CalculateGlobal(parentGlobal)
	r.Clip.resolve(parent, global)

	provisional := Rect{
		X:      pendingOr(r.X, parent.X),
		Y:      pendingOr(r.Y, parent.Y),
		Width:  pendingOr(r.Width, parent.Width),
		Height: pendingOr(r.Height, parent.Height),
	}
	inner, _ := p.children(n, provisional, paddedGlobal(global, parentGlobal, r.Padding), style)

	r.X.resolveAuto(inner.X)
	r.Y.resolveAuto(inner.Y)
	r.Width.resolveAuto(inner.Width + r.Padding.LeftAndRight())
	r.Height.resolveAuto(inner.Height + r.Padding.TopAndBottom())
	return r.geometry()
}

func (p *recalcPass) circle(n *Node, c *Circle, parent Rect, parentGlobal Matrix, style Style) Rect {
	c.CX.rearm()
	c.CY.rearm()
	c.R.rearm()
	c.CX.Resolve(parent.Width, parent.X)
	c.CY.Resolve(parent.Height, parent.Y)
	c.R.Resolve(math.Min(parent.Width, parent.Height), 0)
	c.Padding.resolve(parent)

	global := c.Transform.CalculateGlobal(parentGlobal)
	c.Clip.resolve(parent, global)

	r := pendingOr(c.R, math.Min(parent.Width, parent.Height)/2)
	cx := pendingOr(c.CX, parent.X+parent.Width/2)
	cy := pendingOr(c.CY, parent.Y+parent.Height/2)
	own := Rect{cx - r, cy - r, 2 * r, 2 * r}
	inner, _ := p.children(n, own, paddedGlobal(global, parentGlobal, c.Padding), style)

	// The content box is sized like a rectangle's; the circle encloses it.
	w := inner.Width + c.Padding.LeftAndRight()
	h := inner.Height + c.Padding.TopAndBottom()
	c.CX.resolveAuto(inner.X + w/2)
	c.CY.resolveAuto(inner.Y + h/2)
	c.R.resolveAuto(math.Max(w, h) / 2)
	return c.geometry()
}

func (p *recalcPass) path(n *Node, s *Path, parent Rect, parentGlobal Matrix, style Style) Rect {
	global := s.Transform.CalculateGlobal(parentGlobal)
	s.Clip.resolve(parent, global)
	s.abs = appendNormalized(s.abs[:0], s.Commands)

	own, hasOwn := controlBounds(s.abs)
	provisional := parent
	if hasOwn {
		provisional = own
	}
	inner, hasInner := p.children(n, provisional, global, style)
	switch {
	case hasOwn && hasInner:
		return own.Union(inner)
	case hasInner:
		return inner
	default:
		return own
	}
}

func (p *recalcPass) text(n *Node, t *Text, parent Rect, parentGlobal Matrix, style Style) Rect {
	resolvePosition(&t.X, &t.Y, parent)
	t.X.resolveAuto(parent.X)
	t.Y.resolveAuto(parent.Y)

	global := t.Transform.CalculateGlobal(parentGlobal)
	t.Clip.resolve(parent, global)

	if p.fonts == nil {
		panic(fmt.Sprintf("vellum: text node %q needs a font service", n.Name))
	}
	t.metrics = p.fonts.Measure(t.FontName, t.Content, t.FontSize)
	t.glyphs = p.fonts.GlyphAdvances(t.FontName, t.Content, t.FontSize)
	t.width = advanceWidth(t.glyphs)

	own := Rect{t.left(), t.Y.Val(), t.width, t.metrics.LineHeight}
	inner, hasInner := p.children(n, own, global, style)

	// Text may be rotated or skewed; keep the bound axis-aligned in the
	// parent's space.
	local := t.Transform.Local()
	b := own.Transformed(local)
	if hasInner {
		b = b.Union(inner.Transformed(local))
	}
	return b
}

// resolvePosition re-arms and resolves a pair of positional values. A
// percentage position is offset by the parent's origin.
func resolvePosition(x, y *Value, parent Rect) {
	x.rearm()
	y.rearm()
	x.Resolve(parent.Width, parent.X)
	y.Resolve(parent.Height, parent.Y)
}

// resolveSize re-arms and resolves a pair of extents.
func resolveSize(w, h *Value, parent Rect) {
	w.rearm()
	h.rearm()
	w.Resolve(parent.Width, 0)
	h.Resolve(parent.Height, 0)
}

// pendingOr is v's pixel value, or fallback while v still awaits its
// auto size.
func pendingOr(v Value, fallback float64) float64 {
	if v.NeedsAuto() {
		return fallback
	}
	return v.Val()
}

// paddedGlobal shifts the transform children are laid out in by the left and
// top padding, scaled into device space by the parent's scale factors.
func paddedGlobal(global, parentGlobal Matrix, pad Padding) Matrix {
	l, t := pad.Left.Val(), pad.Top.Val()
	if l == 0 && t == 0 {
		return global
	}
	sx, sy := parentGlobal.ScaleFactors()
	return Translation(l*sx, t*sy).Mul(global)
}
