package ebitensink

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/vellum"
)

// Run opens a window and drives scene until it is closed. Fonts named in
// cfg.Fonts are loaded into fonts before the window opens; fonts must be the
// service the scene was created with.
func Run(scene *vellum.Scene, fonts *Fonts, cfg vellum.RunConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if fonts != nil {
		if err := fonts.LoadAll(cfg.Fonts); err != nil {
			return err
		}
	}
	if err := cfg.Apply(scene); err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	g := NewGame(scene, fonts, cfg.ClearColor)
	if cfg.ShowFPS {
		g.ShowFPS()
	}
	return ebiten.RunGame(g)
}

// Game adapts a Scene to ebiten.Game. Window size changes become
// WindowResized, and mouse, key and character input become the matching
// system messages.
type Game struct {
	scene *vellum.Scene
	sink  *Sink
	clear vellum.Color

	mouseDown bool
	keys      []ebiten.Key
	chars     []rune

	fps *fpsOverlay
}

// NewGame returns a Game for scene.
func NewGame(scene *vellum.Scene, fonts *Fonts, clear vellum.Color) *Game {
	return &Game{
		scene: scene,
		sink:  &Sink{fonts: fonts},
		clear: clear,
	}
}

// ShowFPS enables the FPS/TPS overlay.
func (g *Game) ShowFPS() {
	if g.fps == nil {
		g.fps = newFPSOverlay()
	}
}

// Update reads input and advances the scene one frame.
func (g *Game) Update() error {
	// Scripted input replaces the real devices while it drains.
	if !g.scene.Injecting() {
		g.readInput()
	}
	tick := time.Second / time.Duration(ebiten.TPS())
	g.scene.Post(vellum.DrawTick{Elapsed: tick})
	g.scene.Update()
	if g.fps != nil {
		g.fps.update(tick)
	}
	return nil
}

// Draw paints the scene and captures queued screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	r, gr, b, a := g.clear.RGBA8()
	screen.Fill(color.NRGBA{R: r, G: gr, B: b, A: a})
	g.sink.Reset(screen)
	g.scene.Draw(g.sink)

	// Reading pixels back is slow; only do it when a capture is queued.
	if labels := g.scene.TakeScreenshots(); len(labels) > 0 {
		if err := vellum.WriteScreenshots(g.scene.ScreenshotDir, screenImage(screen), labels); err != nil {
			g.scene.Logger().Error("screenshot", "err", err)
		}
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout keeps the logical size equal to the window size so percentages
// track resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (g *Game) readInput() {
	mods := readModifiers()

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	pressed := left || right || middle
	if pressed && !g.mouseDown {
		button := vellum.MouseButtonLeft
		if right {
			button = vellum.MouseButtonRight
		} else if middle {
			button = vellum.MouseButtonMiddle
		}
		mx, my := ebiten.CursorPosition()
		g.scene.Post(vellum.MouseDown{X: float64(mx), Y: float64(my), Button: button, Modifiers: mods})
	}
	g.mouseDown = pressed

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.scene.Post(vellum.KeyDown{Key: vellum.Key(k.String()), Modifiers: mods})
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.scene.Post(vellum.KeyUp{Key: vellum.Key(k.String()), Modifiers: mods})
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, c := range g.chars {
		g.scene.Post(vellum.CharTyped{Char: c})
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() vellum.KeyModifiers {
	var mods vellum.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= vellum.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= vellum.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= vellum.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= vellum.ModMeta
	}
	return mods
}

// screenImage copies the screen into an NRGBA image, converting
// premultiplied RGBA to straight alpha.
func screenImage(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}
