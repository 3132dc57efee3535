package vellum

// Render paints the tree under root into sink, parents before children and
// siblings in tree order. It uses the geometry from the last recalculation
// pass and never resolves a Value itself.
//
// Text strokes are not painted; text is fill only.
func Render(root *Node, sink PaintSink) int {
	r := renderer{sink: sink}
	r.begin()
	r.node(root, Style{})
	return r.painted
}

// renderer tracks the sink's transform and clip so unchanged state is not
// re-sent.
type renderer struct {
	sink    PaintSink
	xform   Matrix
	clip    ScissorRect
	clipped bool
	painted int
}

func (r *renderer) begin() {
	r.sink.ResetClip()
	r.sink.SetTransform(Identity())
	r.xform = Identity()
}

func (r *renderer) node(n *Node, style Style) {
	switch s := n.shape.(type) {
	case nil:
		r.node(n.comp.View(), style)
		return
	case *Group:
		style = style.WithGroup(s)
	case painted:
		r.paint(s, style)
	}
	for _, c := range n.children {
		r.node(c, style)
	}
}

func (r *renderer) paint(s painted, style Style) {
	ep := style.effective(s.paint())
	if ep.Alpha <= 0 || (ep.Fill == nil && ep.Stroke == nil) {
		return
	}
	r.setClip(ep.Clip)
	r.setTransform(s.Xform().Matrix())
	r.painted++

	switch s := s.(type) {
	case *Rectangle:
		r.outline(rectOutline(s.geometry(), s.rounding()), ep)
	case *Circle:
		r.outline(circleOutline(s.CX.Val(), s.CY.Val(), s.R.Val()), ep)
	case *Path:
		abs := s.abs
		if abs == nil {
			abs = NormalizePath(s.Commands)
		}
		r.outline(abs, ep)
	case *Text:
		if ep.Fill == nil || s.Content == "" {
			return
		}
		run := TextRun{
			Content: s.Content,
			Font:    s.FontName,
			Size:    s.FontSize,
			X:       s.left(),
			Y:       s.Y.Val() + s.metrics.Ascent,
			Glyphs:  s.glyphs,
		}
		r.sink.FillText(run, *ep.Fill, ep.Alpha)
	}
}

func (r *renderer) outline(abs []PathCommand, ep EffectivePaint) {
	if len(abs) == 0 {
		return
	}
	emitPath(r.sink, abs)
	if ep.Fill != nil {
		r.sink.Fill(*ep.Fill, ep.Alpha)
	}
	if ep.Stroke != nil && ep.Stroke.Width > 0 {
		r.sink.Stroke(*ep.Stroke, ep.Alpha)
	}
}

func (r *renderer) setTransform(m Matrix) {
	if m == r.xform {
		return
	}
	r.sink.SetTransform(m)
	r.xform = m
}

func (r *renderer) setClip(c Clip) {
	if c.IsNone() {
		if r.clipped {
			r.sink.ResetClip()
			r.clipped = false
		}
		return
	}
	sr := ScissorRect{Rect: c.Rect(), Transform: c.Transform}
	if r.clipped && sr == r.clip {
		return
	}
	r.sink.SetClip(sr)
	r.clip, r.clipped = sr, true
}
