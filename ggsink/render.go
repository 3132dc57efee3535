package ggsink

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gogpu/gg"

	"github.com/phanxgames/vellum"
)

// defaultTPS matches Ebitengine's default tick rate so a headless run sees
// the same DrawTick deltas as a windowed one.
const defaultTPS = 60

// Headless drives a scene without a window, one frame per Step.
type Headless struct {
	scene *vellum.Scene
	fonts *Fonts
	clear gg.RGBA
	tick  time.Duration

	dc   *gg.Context
	sink *Sink
}

// NewHeadless applies cfg to scene and prepares an offscreen canvas of the
// configured size. fonts may be nil when the scene has no text.
func NewHeadless(scene *vellum.Scene, fonts *Fonts, cfg vellum.RunConfig) (*Headless, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("vellum: headless: %w", err)
	}
	if fonts != nil {
		if err := fonts.LoadAll(cfg.Fonts); err != nil {
			return nil, err
		}
	}
	if err := cfg.Apply(scene); err != nil {
		return nil, err
	}
	tps := cfg.TPS
	if tps == 0 {
		tps = defaultTPS
	}
	h := &Headless{
		scene: scene,
		fonts: fonts,
		clear: rgba(cfg.ClearColor, 1),
		tick:  time.Second / time.Duration(tps),
	}
	h.resize(cfg.Width, cfg.Height)
	return h, nil
}

// resize reallocates the canvas when the scene was resized, either by
// the config or by a scripted resize step.
func (h *Headless) resize(width, height int) {
	if h.dc != nil {
		if h.dc.Width() == width && h.dc.Height() == height {
			return
		}
		_ = h.dc.Close()
	}
	h.dc = gg.NewContext(width, height)
	h.sink = NewSink(h.dc, h.fonts)
}

// Step runs one frame and writes any screenshots queued during it.
func (h *Headless) Step() {
	h.scene.Post(vellum.DrawTick{Elapsed: h.tick})
	h.scene.Update()

	w, ht := h.scene.Size()
	h.resize(int(math.Ceil(w)), int(math.Ceil(ht)))

	h.dc.ResetClip()
	h.dc.ClearWithColor(h.clear)
	h.scene.Draw(h.sink)
	h.scene.FlushScreenshots(h.Image())
}

// Run steps frames until the scene's test script is done and injected input
// has drained, or until maxFrames frames have run. It returns the number of
// frames stepped.
func (h *Headless) Run(maxFrames int) int {
	runner := h.scene.TestRunner()
	n := 0
	for n < maxFrames {
		h.Step()
		n++
		if (runner == nil || runner.Done()) && !h.scene.Injecting() {
			break
		}
	}
	return n
}

// Image returns the canvas as drawn by the last Step.
func (h *Headless) Image() image.Image {
	_ = h.dc.FlushGPU()
	return h.dc.Image()
}

// Unsupported returns the number of paints that fell back to a solid color.
func (h *Headless) Unsupported() int { return h.sink.Unsupported }

// Close releases the canvas.
func (h *Headless) Close() error { return h.dc.Close() }

// RenderPNG lays out scene at the configured size, draws a single frame and
// writes it to path.
func RenderPNG(scene *vellum.Scene, fonts *Fonts, cfg vellum.RunConfig, path string) error {
	h, err := NewHeadless(scene, fonts, cfg)
	if err != nil {
		return err
	}
	defer h.Close()
	h.Step()
	return vellum.WritePNG(path, h.Image())
}
