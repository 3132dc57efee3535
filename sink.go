package vellum

// TextRun is one line of laid-out text handed to a PaintSink. X is the left
// edge after alignment and Y the baseline, both in the current transform's
// space.
type TextRun struct {
	Content string
	Font    string
	Size    float64
	X, Y    float64
	Glyphs  []GlyphAdvance
}

// PaintSink is the narrow paint interface a rasterizer backend implements.
// The render pass hands it resolved geometry only: path commands arrive
// absolute and normalized, and a sink never sees a Value.
//
// Path construction is stateful: BeginPath discards the current path, and
// Fill and Stroke paint it without clearing it, so a shape may be filled
// and then stroked.
type PaintSink interface {
	SetTransform(m Matrix)
	SetClip(clip ScissorRect)
	ResetClip()

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()

	Fill(paint Paint, alpha float64)
	Stroke(stroke Stroke, alpha float64)
	FillText(run TextRun, paint Paint, alpha float64)
}

// emitPath replays absolute commands into sink.
func emitPath(sink PaintSink, abs []PathCommand) {
	sink.BeginPath()
	for _, c := range abs {
		switch c.Op {
		case PathMoveTo:
			sink.MoveTo(c.P[0].X, c.P[0].Y)
		case PathLineTo:
			sink.LineTo(c.P[0].X, c.P[0].Y)
		case PathQuadTo:
			sink.QuadTo(c.P[0].X, c.P[0].Y, c.P[1].X, c.P[1].Y)
		case PathCubicTo:
			sink.CubicTo(c.P[0].X, c.P[0].Y, c.P[1].X, c.P[1].Y, c.P[2].X, c.P[2].Y)
		case PathClose:
			sink.ClosePath()
		}
	}
}
