package vellum

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Targets are
// plain fields, normally on a model: a model advances its tweens on
// DrawTick and patches the animated values into its view.
//
// There is no global animation manager; models call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt, writes values to the target fields, and
// reports whether any field was written.
func (g *TweenGroup) Update(dt time.Duration) bool {
	if g.Done {
		return false
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt.Seconds()))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	return true
}

// Reset restarts every tween from its beginning.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

func newTweenGroup(d time.Duration, fn ease.TweenFunc, fields []*float64, to []float64) *TweenGroup {
	g := &TweenGroup{count: len(fields)}
	secs := float32(d.Seconds())
	for i, f := range fields {
		g.tweens[i] = gween.New(float32(*f), float32(to[i]), secs, fn)
		g.fields[i] = f
	}
	return g
}

// TweenFloat creates a TweenGroup that animates *field to the target value
// over the specified duration using the easing function.
func TweenFloat(field *float64, to float64, duration time.Duration, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn, []*float64{field}, []float64{to})
}

// TweenVec2 creates a TweenGroup that animates both components of *v.
func TweenVec2(v *Vec2, to Vec2, duration time.Duration, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn, []*float64{&v.X, &v.Y}, []float64{to.X, to.Y})
}

// TweenColor creates a TweenGroup that animates all four components of *c
// (R, G, B, A) to the target color.
func TweenColor(c *Color, to Color, duration time.Duration, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(duration, fn,
		[]*float64{&c.R, &c.G, &c.B, &c.A},
		[]float64{to.R, to.G, to.B, to.A})
}
