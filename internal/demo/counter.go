package demo

import (
	"fmt"

	"github.com/phanxgames/vellum"
)

// CounterMsg is added to the counter.
type CounterMsg int

// Counter is a nested component without a Patch method, so every change
// rebuilds its view.
type Counter struct {
	Font  string
	Count int
}

func (c *Counter) Update(msg CounterMsg) vellum.ChangeView {
	if msg == 0 {
		return vellum.ChangeNone
	}
	c.Count += int(msg)
	return vellum.ChangeModify
}

func (c *Counter) View() *vellum.Node {
	box := vellum.NewRectangle(vellum.Pct(60), vellum.Pct(60), vellum.Px(180), vellum.Px(48))
	box.Fill = vellum.Fill(vellum.Color{R: 0.25, G: 0.7, B: 0.45, A: 1})
	label := vellum.NewText(fmt.Sprintf("clicked %d", c.Count), c.Font, 20, vellum.Pct(50), vellum.Pct(25))
	label.Align = vellum.TextAlignCenter
	label.Fill = vellum.Fill(vellum.ColorWhite)
	return vellum.NewNode(box, vellum.NewNode(label)).OnClick(CounterMsg(1))
}
