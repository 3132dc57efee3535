// Package ggsink renders vellum scenes headlessly with gogpu/gg's software
// rasterizer. It is used for PNG export and for pixel tests.
package ggsink

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/phanxgames/vellum"
)

// Sink is a vellum.PaintSink drawing into a *gg.Context.
//
// gg transforms path points as they are added but draws text untransformed,
// so FillText maps the baseline origin itself and ignores rotation. Box
// gradients have no gg brush; they fall back to their inner color and are
// counted in Unsupported.
type Sink struct {
	dc    *gg.Context
	fonts *Fonts

	xform vellum.Matrix
	scale float64
	open  bool

	// Unsupported counts paints that fell back to a solid color.
	Unsupported int
}

// NewSink returns a sink drawing into dc. fonts may be nil when the scene has
// no text.
func NewSink(dc *gg.Context, fonts *Fonts) *Sink {
	return &Sink{dc: dc, fonts: fonts, xform: vellum.Identity(), scale: 1}
}

// Context returns the underlying gg context.
func (s *Sink) Context() *gg.Context { return s.dc }

// SetTransform sets the matrix applied to subsequent path points and text.
func (s *Sink) SetTransform(m vellum.Matrix) {
	s.xform = m
	s.scale = math.Sqrt(math.Abs(m.Det()))
	s.dc.SetTransform(ggMatrix(m))
}

// SetClip restricts painting to the scissor rectangle.
func (s *Sink) SetClip(clip vellum.ScissorRect) {
	s.dc.ResetClip()
	s.dc.SetTransform(ggMatrix(clip.Transform))
	r := clip.Rect
	s.dc.ClipRect(r.X, r.Y, r.Width, r.Height)
	s.dc.SetTransform(ggMatrix(s.xform))
}

// ResetClip removes the scissor rectangle.
func (s *Sink) ResetClip() {
	s.dc.ResetClip()
}

// BeginPath discards the current path.
func (s *Sink) BeginPath() {
	s.dc.ClearPath()
	s.open = false
}

// MoveTo starts a new subpath at (x, y).
func (s *Sink) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
	s.open = true
}

// LineTo adds a line to (x, y).
func (s *Sink) LineTo(x, y float64) { s.dc.LineTo(x, y) }

// QuadTo adds a quadratic curve through control point (cx, cy).
func (s *Sink) QuadTo(cx, cy, x, y float64) { s.dc.QuadraticTo(cx, cy, x, y) }

// CubicTo adds a cubic curve through two control points.
func (s *Sink) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (s *Sink) ClosePath() { s.dc.ClosePath() }

// Fill and Stroke keep the path so a shape can be filled and then stroked.
// Raster errors are dropped; a frame is never aborted halfway.
func (s *Sink) Fill(paint vellum.Paint, alpha float64) {
	if !s.open {
		return
	}
	s.dc.SetFillBrush(s.brush(paint, alpha))
	_ = s.dc.FillPreserve()
}

// Stroke strokes the current path.
func (s *Sink) Stroke(stroke vellum.Stroke, alpha float64) {
	if !s.open {
		return
	}
	s.dc.SetStrokeBrush(s.brush(stroke.Paint, alpha))
	s.dc.SetLineWidth(stroke.Width)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.SetLineJoin(gg.LineJoinRound)
	_ = s.dc.StrokePreserve()
}

// FillText draws run with its baseline origin at (run.X, run.Y).
func (s *Sink) FillText(run vellum.TextRun, paint vellum.Paint, alpha float64) {
	if s.fonts == nil {
		panic("vellum: ggsink: text drawn without fonts")
	}
	if paint.Kind != vellum.PaintSolid {
		s.Unsupported++
	}
	s.dc.SetFont(s.fonts.face(run.Font, run.Size*s.scale))
	s.dc.SetColor(rgba(paint.Color(), alpha).Color())
	x, y := s.xform.Apply(run.X, run.Y)
	s.dc.DrawString(run.Content, x, y)
}

// brush converts paint to a gg brush in device space. gg samples gradients
// per pixel, so their geometry is mapped through the current transform.
func (s *Sink) brush(paint vellum.Paint, alpha float64) gg.Brush {
	inner, outer := rgba(paint.Inner, alpha), rgba(paint.Outer, alpha)
	switch paint.Kind {
	case vellum.PaintLinearGradient:
		x0, y0 := s.xform.Apply(paint.Start.X, paint.Start.Y)
		x1, y1 := s.xform.Apply(paint.End.X, paint.End.Y)
		return gg.NewLinearGradientBrush(x0, y0, x1, y1).
			AddColorStop(0, inner).
			AddColorStop(1, outer)
	case vellum.PaintRadialGradient:
		cx, cy := s.xform.Apply(paint.Center.X, paint.Center.Y)
		return gg.NewRadialGradientBrush(cx, cy, paint.InnerRadius*s.scale, paint.OuterRadius*s.scale).
			AddColorStop(0, inner).
			AddColorStop(1, outer)
	case vellum.PaintBoxGradient:
		s.Unsupported++
	}
	return gg.Solid(inner)
}

func rgba(c vellum.Color, alpha float64) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A * alpha}
}

// ggMatrix reorders [a b c d e f] (x' = ax + cy + e) into gg's row form.
func ggMatrix(m vellum.Matrix) gg.Matrix {
	return gg.Matrix{A: m[0], B: m[2], C: m[4], D: m[1], E: m[3], F: m[5]}
}
