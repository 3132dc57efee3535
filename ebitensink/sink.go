// Package ebitensink paints vellum scenes with Ebitengine: vector paths for
// shapes, text/v2 for text, and an ebiten.Game driver that turns window
// and input events into system messages.
package ebitensink

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/vellum"
)

// Sink is a vellum.PaintSink drawing onto an *ebiten.Image. Path points are
// transformed on the CPU as they arrive, so the path is always in device
// space.
//
// Ebitengine's vector package has no gradient brushes: gradient paints fall
// back to their inner color and are counted in Unsupported.
type Sink struct {
	dst    *ebiten.Image
	target *ebiten.Image // dst, or a sub-image of it while clipped
	fonts  *Fonts

	xform vellum.Matrix
	scale float64 // stroke width multiplier for xform
	path  vector.Path
	open  bool

	// Unsupported counts paints that fell back to a solid color.
	Unsupported int
}

// NewSink returns a sink drawing onto dst. fonts may be nil when the scene
// has no text.
func NewSink(dst *ebiten.Image, fonts *Fonts) *Sink {
	s := &Sink{fonts: fonts}
	s.Reset(dst)
	return s
}

// Reset retargets the sink to dst and clears its state.
func (s *Sink) Reset(dst *ebiten.Image) {
	s.dst = dst
	s.target = dst
	s.xform = vellum.Identity()
	s.scale = 1
	s.path = vector.Path{}
	s.open = false
}

// SetTransform sets the matrix applied to subsequent path points and text.
func (s *Sink) SetTransform(m vellum.Matrix) {
	s.xform = m
	s.scale = math.Sqrt(math.Abs(m.Det()))
}

// SetClip restricts painting to the scissor rectangle.
func (s *Sink) SetClip(clip vellum.ScissorRect) {
	b := clip.DeviceBounds()
	r := image.Rect(
		int(math.Floor(b.X)), int(math.Floor(b.Y)),
		int(math.Ceil(b.MaxX())), int(math.Ceil(b.MaxY())),
	).Intersect(s.dst.Bounds())
	s.target = s.dst.SubImage(r).(*ebiten.Image)
}

// ResetClip removes the scissor rectangle.
func (s *Sink) ResetClip() {
	s.target = s.dst
}

// BeginPath discards the current path.
func (s *Sink) BeginPath() {
	s.path = vector.Path{}
	s.open = false
}

func (s *Sink) pt(x, y float64) (float32, float32) {
	dx, dy := s.xform.Apply(x, y)
	return float32(dx), float32(dy)
}

// MoveTo starts a new subpath at (x, y).
func (s *Sink) MoveTo(x, y float64) {
	s.path.MoveTo(s.pt(x, y))
	s.open = true
}

// LineTo adds a line to (x, y).
func (s *Sink) LineTo(x, y float64) {
	s.path.LineTo(s.pt(x, y))
}

// QuadTo adds a quadratic curve through control point (cx, cy).
func (s *Sink) QuadTo(cx, cy, x, y float64) {
	x1, y1 := s.pt(cx, cy)
	x2, y2 := s.pt(x, y)
	s.path.QuadTo(x1, y1, x2, y2)
}

// CubicTo adds a cubic curve through two control points.
func (s *Sink) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	x1, y1 := s.pt(c1x, c1y)
	x2, y2 := s.pt(c2x, c2y)
	x3, y3 := s.pt(x, y)
	s.path.CubicTo(x1, y1, x2, y2, x3, y3)
}

// ClosePath closes the current subpath.
func (s *Sink) ClosePath() {
	s.path.Close()
}

// Fill fills the current path with paint at alpha.
func (s *Sink) Fill(paint vellum.Paint, alpha float64) {
	if !s.open {
		return
	}
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(s.color(paint, alpha))
	vector.FillPath(s.target, &s.path, nil, op)
}

// Stroke strokes the current path.
func (s *Sink) Stroke(stroke vellum.Stroke, alpha float64) {
	if !s.open {
		return
	}
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(s.color(stroke.Paint, alpha))
	so := &vector.StrokeOptions{
		Width:    float32(stroke.Width * s.scale),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	vector.StrokePath(s.target, &s.path, so, op)
}

// FillText draws run with its baseline origin at (run.X, run.Y).
func (s *Sink) FillText(run vellum.TextRun, paint vellum.Paint, alpha float64) {
	if s.fonts == nil {
		panic("vellum: ebitensink: text drawn without fonts")
	}
	face := s.fonts.face(run.Font, run.Size)
	op := &text.DrawOptions{}
	// text.Draw positions the top of the line box; run.Y is the baseline.
	op.GeoM.Translate(run.X, run.Y-face.Metrics().HAscent)
	op.GeoM.Concat(geoM(s.xform))
	op.ColorScale.ScaleWithColor(s.color(paint, alpha))
	text.Draw(s.target, run.Content, face, op)
}

// color resolves paint to a single color with alpha applied.
func (s *Sink) color(paint vellum.Paint, alpha float64) color.Color {
	if paint.Kind != vellum.PaintSolid {
		s.Unsupported++
	}
	c := paint.Color()
	r, g, b, a := c.WithAlpha(c.A * alpha).RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m vellum.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
