package vellum

// ShapeKind identifies a Shape variant.
type ShapeKind uint8

const (
	ShapeRectangle ShapeKind = iota
	ShapeCircle
	ShapePath
	ShapeText
	ShapeGroup
)

// String returns the kind's name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rect"
	case ShapeCircle:
		return "circle"
	case ShapePath:
		return "path"
	case ShapeText:
		return "text"
	case ShapeGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Shape is the closed set of drawable primitives: *Rectangle, *Circle,
// *Path, *Text and *Group.
type Shape interface {
	Kind() ShapeKind
	// Xform returns the shape's transform for in-place editing.
	Xform() *Transform
	// ClipRegion returns the shape's own clip for in-place editing.
	ClipRegion() *Clip
}

// paintFields is the optional paint a non-group shape carries. A nil Fill
// or Stroke inherits from the nearest ancestor Group default.
type paintFields struct {
	fill         *Paint
	stroke       *Stroke
	transparency float64
	clip         Clip
}

// Rectangle is an optionally rounded box. Percentage X and Y resolve
// against the parent's origin and extent.
type Rectangle struct {
	X, Y, Width, Height Value
	Padding             Padding
	Rounding            *Value
	Transparency        float64
	Stroke              *Stroke
	Fill                *Paint
	Clip                Clip
	Transform           Transform
}

// NewRectangle returns a pixel-positioned rectangle.
func NewRectangle(x, y, width, height Value) *Rectangle {
	return &Rectangle{X: x, Y: y, Width: width, Height: height, Transform: NewTransform()}
}

func (r *Rectangle) Kind() ShapeKind { return ShapeRectangle }
func (r *Rectangle) Xform() *Transform { return &r.Transform }
func (r *Rectangle) ClipRegion() *Clip { return &r.Clip }
func (r *Rectangle) paint() paintFields { return paintFields{r.Fill, r.Stroke, r.Transparency, r.Clip} }
func (r *Rectangle) geometry() Rect { return Rect{r.X.Val(), r.Y.Val(), r.Width.Val(), r.Height.Val()} }
func (r *Rectangle) rounding() float64 {
	if r.Rounding == nil {
		return 0
	}
	return r.Rounding.Val()
}

// Circle is a circle around (CX, CY). A percentage radius resolves against
// the smaller parent extent.
type Circle struct {
	CX, CY, R    Value
	Padding      Padding
	Transparency float64
	Stroke       *Stroke
	Fill         *Paint
	Clip         Clip
	Transform    Transform
}

// NewCircle returns a circle.
func NewCircle(cx, cy, r Value) *Circle {
	return &Circle{CX: cx, CY: cy, R: r, Transform: NewTransform()}
}

func (c *Circle) Kind() ShapeKind { return ShapeCircle }
func (c *Circle) Xform() *Transform { return &c.Transform }
func (c *Circle) ClipRegion() *Clip { return &c.Clip }
func (c *Circle) paint() paintFields { return paintFields{c.Fill, c.Stroke, c.Transparency, c.Clip} }
func (c *Circle) geometry() Rect {
	r := c.R.Val()
	return Rect{c.CX.Val() - r, c.CY.Val() - r, 2 * r, 2 * r}
}

// Path is a sequence of path commands in pixel coordinates.
type Path struct {
	Commands     []PathCommand
	Transparency float64
	Stroke       *Stroke
	Fill         *Paint
	Clip         Clip
	Transform    Transform

	abs []PathCommand // normalized by the recalculation pass
}

// NewPath returns a path built from cmds.
func NewPath(cmds ...PathCommand) *Path {
	return &Path{Commands: cmds, Transform: NewTransform()}
}

func (p *Path) Kind() ShapeKind { return ShapePath }
func (p *Path) Xform() *Transform { return &p.Transform }
func (p *Path) ClipRegion() *Clip { return &p.Clip }
func (p *Path) paint() paintFields { return paintFields{p.Fill, p.Stroke, p.Transparency, p.Clip} }

// Absolute returns the commands as normalized by the last recalculation
// pass: absolute move/line/quad/cubic/close only.
func (p *Path) Absolute() []PathCommand { return p.abs }

// Text is a single line of text. X is interpreted by Align; Y is the top of
// the line box and the baseline sits Ascent below it.
type Text struct {
	Content      string
	X, Y         Value
	FontName     string
	FontSize     float64
	Align        TextAlign
	Transparency float64
	Stroke       *Stroke
	Fill         *Paint
	Clip         Clip
	Transform    Transform

	glyphs  []GlyphAdvance
	metrics TextMetrics
	width   float64
}

// NewText returns a left-aligned text at (x, y).
func NewText(content, fontName string, fontSize float64, x, y Value) *Text {
	return &Text{
		Content:   content,
		X:         x,
		Y:         y,
		FontName:  fontName,
		FontSize:  fontSize,
		Transform: NewTransform(),
	}
}

func (t *Text) Kind() ShapeKind { return ShapeText }
func (t *Text) Xform() *Transform { return &t.Transform }
func (t *Text) ClipRegion() *Clip { return &t.Clip }
func (t *Text) paint() paintFields { return paintFields{t.Fill, t.Stroke, t.Transparency, t.Clip} }

// Glyphs returns the glyph layout from the last recalculation pass.
func (t *Text) Glyphs() []GlyphAdvance { return t.glyphs }

// Metrics returns the line metrics from the last recalculation pass.
func (t *Text) Metrics() TextMetrics { return t.metrics }

// Width returns the measured advance width from the last pass.
func (t *Text) Width() float64 { return t.width }

// left returns the left edge after alignment.
func (t *Text) left() float64 {
	switch t.Align {
	case TextAlignCenter:
		return t.X.Val() - t.width/2
	case TextAlignRight:
		return t.X.Val() - t.width
	default:
		return t.X.Val()
	}
}

// Group draws nothing itself. Its non-nil fields become paint defaults for
// every descendant until another Group overrides them.
type Group struct {
	Stroke       *Stroke
	Fill         *Paint
	Transparency *float64
	Clip         Clip
	Transform    Transform
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{Transform: NewTransform()}
}

func (g *Group) Kind() ShapeKind { return ShapeGroup }
func (g *Group) Xform() *Transform { return &g.Transform }
func (g *Group) ClipRegion() *Clip { return &g.Clip }

// painted is implemented by every shape that paints itself.
type painted interface {
	Shape
	paint() paintFields
}
