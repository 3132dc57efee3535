package vellum

// CommandType identifies the kind of recorded paint command.
type CommandType uint8

const (
	CommandFill   CommandType = iota // Fill of the current path
	CommandStroke                    // Stroke of the current path
	CommandText                      // FillText
)

// RenderCommand is one paint operation captured by a Recorder, together
// with the transform and clip that were current when it was issued.
type RenderCommand struct {
	Type      CommandType
	Transform Matrix
	Clip      ScissorRect
	Clipped   bool
	Path      []PathCommand // absolute; nil for text
	Paint     Paint         // fill paint, or the stroke's paint
	Width     float64       // stroke width
	Alpha     float64
	Text      TextRun
}

// Recorder is a PaintSink that keeps every paint command in memory. It is
// used for headless tests and for inspecting what a frame would draw.
type Recorder struct {
	Commands []RenderCommand

	// TransformCalls and ClipCalls count state changes sent to the sink.
	TransformCalls int
	ClipCalls      int

	xform   Matrix
	clip    ScissorRect
	clipped bool
	path    []PathCommand
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{xform: Identity()}
}

// Reset discards recorded commands and state.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.TransformCalls, r.ClipCalls = 0, 0
	r.xform = Identity()
	r.clipped = false
	r.path = r.path[:0]
}

// Fills returns the recorded fill commands in paint order.
func (r *Recorder) Fills() []RenderCommand {
	return r.filter(CommandFill)
}

// Strokes returns the recorded stroke commands in paint order.
func (r *Recorder) Strokes() []RenderCommand {
	return r.filter(CommandStroke)
}

// Texts returns the recorded text commands in paint order.
func (r *Recorder) Texts() []RenderCommand {
	return r.filter(CommandText)
}

func (r *Recorder) filter(t CommandType) []RenderCommand {
	var out []RenderCommand
	for _, c := range r.Commands {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// SetTransform sets the matrix applied to subsequent path points and text.
func (r *Recorder) SetTransform(m Matrix) {
	r.xform = m
	r.TransformCalls++
}

// SetClip restricts painting to the scissor rectangle.
func (r *Recorder) SetClip(clip ScissorRect) {
	r.clip, r.clipped = clip, true
	r.ClipCalls++
}

// ResetClip removes the scissor rectangle.
func (r *Recorder) ResetClip() {
	r.clipped = false
	r.ClipCalls++
}

// BeginPath discards the current path.
func (r *Recorder) BeginPath() { r.path = r.path[:0] }

// MoveTo starts a new subpath at (x, y).
func (r *Recorder) MoveTo(x, y float64) { r.path = append(r.path, MoveTo(x, y)) }

// LineTo adds a line to (x, y).
func (r *Recorder) LineTo(x, y float64) { r.path = append(r.path, LineTo(x, y)) }

// QuadTo adds a quadratic curve through control point (cx, cy).
func (r *Recorder) QuadTo(cx, cy, x, y float64) {
	r.path = append(r.path, QuadTo(cx, cy, x, y))
}

// CubicTo adds a cubic curve through two control points.
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.path = append(r.path, CubicTo(c1x, c1y, c2x, c2y, x, y))
}

// ClosePath closes the current subpath.
func (r *Recorder) ClosePath() { r.path = append(r.path, ClosePath()) }

// Fill fills the current path with paint at alpha.
func (r *Recorder) Fill(paint Paint, alpha float64) {
	r.Commands = append(r.Commands, r.command(CommandFill, paint, 0, alpha))
}

// Stroke strokes the current path.
func (r *Recorder) Stroke(stroke Stroke, alpha float64) {
	r.Commands = append(r.Commands, r.command(CommandStroke, stroke.Paint, stroke.Width, alpha))
}

// FillText draws run with its baseline origin at (run.X, run.Y).
func (r *Recorder) FillText(run TextRun, paint Paint, alpha float64) {
	cmd := r.command(CommandText, paint, 0, alpha)
	cmd.Path = nil
	cmd.Text = run
	r.Commands = append(r.Commands, cmd)
}

func (r *Recorder) command(t CommandType, paint Paint, width, alpha float64) RenderCommand {
	return RenderCommand{
		Type:      t,
		Transform: r.xform,
		Clip:      r.clip,
		Clipped:   r.clipped,
		Path:      append([]PathCommand(nil), r.path...),
		Paint:     paint,
		Width:     width,
		Alpha:     alpha,
	}
}
