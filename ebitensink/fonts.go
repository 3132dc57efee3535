package ebitensink

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/vellum"
)

// ErrNoFont is returned when loading a font from empty data.
var ErrNoFont = errors.New("ebitensink: empty font data")

// DefaultFont is the name Fonts registers Go Regular under.
const DefaultFont = "default"

type faceKey struct {
	name string
	size float64
}

// Fonts is a vellum.FontService backed by text/v2 GoTextFace sources.
type Fonts struct {
	sources map[string]*text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

// NewFonts returns a font service with Go Regular loaded as DefaultFont.
func NewFonts() *Fonts {
	f := &Fonts{
		sources: map[string]*text.GoTextFaceSource{},
		faces:   map[faceKey]*text.GoTextFace{},
	}
	if err := f.Load(DefaultFont, goregular.TTF); err != nil {
		panic(fmt.Sprintf("ebitensink: load Go Regular: %v", err))
	}
	return f
}

// Load registers TTF/OTF data under name, replacing any previous font.
func (f *Fonts) Load(name string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("vellum: load font %q: %w", name, ErrNoFont)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("vellum: parse font %q: %w", name, err)
	}
	f.sources[name] = source
	for k := range f.faces {
		if k.name == name {
			delete(f.faces, k)
		}
	}
	return nil
}

// LoadFile registers the font file at path under name.
func (f *Fonts) LoadFile(name, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("vellum: read font %q: %w", name, err)
	}
	return f.Load(name, data)
}

// LoadAll registers every name to path entry, as found in a RunConfig.
func (f *Fonts) LoadAll(paths map[string]string) error {
	for name, path := range paths {
		if err := f.LoadFile(name, path); err != nil {
			return err
		}
	}
	return nil
}

// face returns the cached face for name at size. Unknown names panic.
func (f *Fonts) face(name string, size float64) *text.GoTextFace {
	k := faceKey{name, size}
	if face, ok := f.faces[k]; ok {
		return face
	}
	source, ok := f.sources[name]
	if !ok {
		panic(fmt.Sprintf("vellum: unknown font %q", name))
	}
	face := &text.GoTextFace{Source: source, Size: size}
	f.faces[k] = face
	return face
}

// Measure returns the line metrics of name at size.
func (f *Fonts) Measure(name, _ string, size float64) vellum.TextMetrics {
	m := f.face(name, size).Metrics()
	return vellum.TextMetrics{
		Ascent:     m.HAscent,
		Descent:    m.HDescent,
		LineHeight: m.HAscent + m.HDescent + m.HLineGap,
	}
}

// GlyphAdvances lays out s one rune at a time.
func (f *Fonts) GlyphAdvances(name, s string, size float64) []vellum.GlyphAdvance {
	face := f.face(name, size)
	return vellum.PrefixAdvances(s, func(prefix string) float64 {
		return text.Advance(prefix, face)
	})
}
