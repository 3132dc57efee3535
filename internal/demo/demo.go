// Package demo is the component tree shown by the vellum CLI. It exercises
// every shape kind, the Rebuild and Modify verdicts, nested components,
// listeners and tweens.
package demo

import (
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/vellum"
)

// Msg is the App's message type.
type Msg interface{ isMsg() }

// Tick advances animations.
type Tick struct{ Elapsed time.Duration }

// Pulse is sent by clicking the circle.
type Pulse struct{}

// Reset restores the initial state and rebuilds the view.
type Reset struct{}

// Typed appends text to the caption.
type Typed struct{ Text string }

func (Tick) isMsg()  {}
func (Pulse) isMsg() {}
func (Reset) isMsg() {}
func (Typed) isMsg() {}

// Node names the App patches in place.
const (
	NamePulse   = "pulse"
	NameBadge   = "badge"
	NameCaption = "caption"
)

const (
	baseRadius  = 40
	pulseRadius = 24
	maxCaption  = 32
)

// App is the root model.
type App struct {
	Font string

	pulses  int
	caption string
	grow    float64
	tween   *vellum.TweenGroup

	counter     *vellum.Comp[CounterMsg]
	counterNode *vellum.Node
}

// New returns the App model drawing text with font.
func New(font string) *App {
	a := &App{Font: font}
	a.reset()
	return a
}

// NewComponent wraps a new App in a component.
func NewComponent(font string) *vellum.Comp[Msg] {
	return vellum.NewComp[Msg](New(font))
}

func (a *App) reset() {
	a.pulses = 0
	a.caption = "type to edit"
	a.grow = 0
	a.tween = nil
	// A component embeds once; Reset rebuilds with a fresh counter.
	a.counter = vellum.NewComp[CounterMsg](&Counter{Font: a.Font})
	a.counter.Transform().Rotate(-0.05)
	a.counterNode = vellum.Embed(a.counter)
}

// Pulses returns how many times the circle was clicked.
func (a *App) Pulses() int { return a.pulses }

// Caption returns the caption text.
func (a *App) Caption() string { return a.caption }

// Radius returns the pulse circle's current radius.
func (a *App) Radius() float64 { return baseRadius + a.grow }

// Counter returns the nested counter component.
func (a *App) Counter() *vellum.Comp[CounterMsg] { return a.counter }

func (a *App) Update(msg Msg) vellum.ChangeView {
	switch m := msg.(type) {
	case Tick:
		if a.tween == nil || !a.tween.Update(m.Elapsed) {
			return vellum.ChangeNone
		}
		if a.tween.Done {
			a.tween = nil
		}
		return vellum.ChangeModify
	case Pulse:
		a.pulses++
		a.grow = pulseRadius
		a.tween = vellum.TweenFloat(&a.grow, 0, 600*time.Millisecond, ease.OutElastic)
		return vellum.ChangeModify
	case Typed:
		if a.caption == "type to edit" {
			a.caption = ""
		}
		a.caption += m.Text
		if r := []rune(a.caption); len(r) > maxCaption {
			a.caption = string(r[len(r)-maxCaption:])
		}
		return vellum.ChangeModify
	case Reset:
		a.reset()
		return vellum.ChangeRebuild
	}
	return vellum.ChangeNone
}

// System maps driver messages: draw ticks animate, typed characters edit
// the caption and Escape resets.
func (a *App) System(msg vellum.SystemMsg) (Msg, bool) {
	switch m := msg.(type) {
	case vellum.DrawTick:
		return Tick{Elapsed: m.Elapsed}, true
	case vellum.CharTyped:
		return Typed{Text: string(m.Char)}, true
	case vellum.KeyDown:
		if m.Key == "Escape" {
			return Reset{}, true
		}
	}
	return nil, false
}

// Patch writes the animated radius and the text fields into the view.
func (a *App) Patch(view *vellum.Node) {
	if c, ok := view.Find(NamePulse).Shape().(*vellum.Circle); ok {
		c.R = vellum.Px(a.Radius())
	}
	if t, ok := view.Find(NameBadge).Shape().(*vellum.Text); ok {
		t.Content = a.badge()
	}
	if t, ok := view.Find(NameCaption).Shape().(*vellum.Text); ok {
		t.Content = a.caption
	}
}

func (a *App) badge() string {
	return fmt.Sprintf("pulses: %d", a.pulses)
}

func (a *App) View() *vellum.Node {
	root := vellum.NewGroup()
	root.Stroke = vellum.SolidStroke(vellum.Color{R: 0.85, G: 0.85, B: 0.9, A: 1}, 2)

	panel := vellum.NewRectangle(vellum.Pct(5), vellum.Pct(5), vellum.Pct(90), vellum.Pct(90))
	rounding := vellum.Px(16)
	panel.Rounding = &rounding
	bg := vellum.LinearGradient(0, 0, 0, 600,
		vellum.Color{R: 0.16, G: 0.18, B: 0.24, A: 1},
		vellum.Color{R: 0.08, G: 0.09, B: 0.12, A: 1})
	panel.Fill = &bg

	title := vellum.NewText("vellum", a.Font, 32, vellum.Pct(50), vellum.Px(24))
	title.Align = vellum.TextAlignCenter
	title.Fill = vellum.Fill(vellum.ColorWhite)

	pulse := vellum.NewCircle(vellum.Pct(30), vellum.Pct(50), vellum.Px(a.Radius()))
	pulse.Fill = vellum.Fill(vellum.Color{R: 0.9, G: 0.3, B: 0.35, A: 1})

	star := vellum.NewPath(starOutline(0, 0, 36, 16)...)
	glow := vellum.RadialGradient(0, 0, 4, 36,
		vellum.Color{R: 1, G: 0.9, B: 0.4, A: 1},
		vellum.Color{R: 1, G: 0.5, B: 0.1, A: 1})
	star.Fill = &glow

	// The badge grows around its text.
	badge := vellum.NewRectangle(vellum.Auto(), vellum.Auto(), vellum.Auto(), vellum.Auto())
	badge.Padding = vellum.PadXY(12, 6)
	badge.Fill = vellum.Fill(vellum.Color{R: 0.2, G: 0.5, B: 0.9, A: 1})
	badgeText := vellum.NewText(a.badge(), a.Font, 16, vellum.Pct(60), vellum.Pct(30))
	badgeText.Fill = vellum.Fill(vellum.ColorWhite)

	caption := vellum.NewText(a.caption, a.Font, 18, vellum.Pct(10), vellum.Pct(80))
	caption.Fill = vellum.Fill(vellum.Color{R: 0.8, G: 0.8, B: 0.85, A: 1})
	caption.Clip = vellum.Scissor(vellum.Pct(10), vellum.Pct(78), vellum.Pct(80), vellum.Px(32))

	faded := vellum.NewGroup()
	faded.Transparency = vellum.Transparency(0.4)
	star.Transform.Translate(560, 300)

	return vellum.NewNode(root,
		vellum.NewNode(panel,
			vellum.NewNode(title),
			vellum.NewNode(pulse).Named(NamePulse).OnClick(Pulse{}),
			vellum.NewNode(badge, vellum.NewNode(badgeText).Named(NameBadge)),
			vellum.NewNode(faded, vellum.NewNode(star)),
			vellum.NewNode(caption).Named(NameCaption),
			a.counterNode,
		),
	)
}

// starOutline returns a five-pointed star centered on (cx, cy) using
// relative line commands.
func starOutline(cx, cy, outer, inner float64) []vellum.PathCommand {
	pts := make([]vellum.Vec2, 10)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		theta := -math.Pi/2 + float64(i)*math.Pi/5
		pts[i] = vellum.Vec2{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}
	}
	cmds := []vellum.PathCommand{vellum.MoveTo(pts[0].X, pts[0].Y)}
	for i := 1; i < len(pts); i++ {
		cmds = append(cmds, vellum.LineBy(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y))
	}
	return append(cmds, vellum.ClosePath())
}
