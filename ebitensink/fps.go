package ebitensink

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay draws the current FPS and TPS in the top-left corner. The text
// is re-rendered about twice a second.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed time.Duration
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	o := &fpsOverlay{img: ebiten.NewImage(100, 32)}
	o.refresh()
	return o
}

func (o *fpsOverlay) update(dt time.Duration) {
	o.elapsed += dt
	if o.elapsed < 500*time.Millisecond {
		return
	}
	o.elapsed = 0
	o.refresh()
}

func (o *fpsOverlay) refresh() {
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
