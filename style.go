package vellum

// Style is the paint-defaults context threaded by value through the
// recalculation and render traversals. A Group returns a copy with its
// non-nil fields overriding; nothing is mutated in place.
type Style struct {
	Fill         *Paint
	Stroke       *Stroke
	Transparency float64
	Clip         Clip
}

// WithGroup returns s overridden by g's non-empty fields.
func (s Style) WithGroup(g *Group) Style {
	if g.Fill != nil {
		s.Fill = g.Fill
	}
	if g.Stroke != nil {
		s.Stroke = g.Stroke
	}
	if g.Transparency != nil {
		s.Transparency = *g.Transparency
	}
	if !g.Clip.IsNone() {
		s.Clip = g.Clip
	}
	return s
}

// EffectivePaint is the paint a shape is drawn with after default
// substitution.
type EffectivePaint struct {
	Fill   *Paint
	Stroke *Stroke
	Alpha  float64
	Clip   Clip
}

// effective substitutes the inherited defaults for a shape's absent fields.
// Both traversals call this; it is the single definition of the cascade.
func (s Style) effective(p paintFields) EffectivePaint {
	e := EffectivePaint{
		Fill:   p.fill,
		Stroke: p.stroke,
		Alpha:  (1 - p.transparency) * (1 - s.Transparency),
		Clip:   p.clip.Or(s.Clip),
	}
	if e.Fill == nil {
		e.Fill = s.Fill
	}
	if e.Stroke == nil {
		e.Stroke = s.Stroke
	}
	return e
}

// EffectivePaintOf returns the paint n would be drawn with under the
// defaults of its ancestors. It walks the Parent chain, so it reflects the
// tree as last attached rather than a traversal in progress.
func EffectivePaintOf(n *Node) EffectivePaint {
	p, ok := n.shape.(painted)
	if !ok {
		return EffectivePaint{}
	}
	return inheritedStyle(n).effective(p.paint())
}

// inheritedStyle folds every ancestor Group of n, outermost first.
func inheritedStyle(n *Node) Style {
	var groups []*Group
	for a := n.Parent; a != nil; a = a.Parent {
		if g, ok := a.shape.(*Group); ok {
			groups = append(groups, g)
		}
	}
	var s Style
	for i := len(groups) - 1; i >= 0; i-- {
		s = s.WithGroup(groups[i])
	}
	return s
}
