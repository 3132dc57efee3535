package ggsink

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/vellum"
)

// ErrNoFont is returned when loading a font from empty data.
var ErrNoFont = errors.New("ggsink: empty font data")

// DefaultFont is the name Fonts registers Go Regular under.
const DefaultFont = "default"

type faceKey struct {
	name string
	size float64
}

// Fonts is a vellum.FontService backed by gg's text package.
type Fonts struct {
	sources map[string]*text.FontSource
	faces   map[faceKey]text.Face
}

// NewFonts returns a font service with Go Regular loaded as DefaultFont.
func NewFonts() *Fonts {
	f := &Fonts{
		sources: map[string]*text.FontSource{},
		faces:   map[faceKey]text.Face{},
	}
	if err := f.Load(DefaultFont, goregular.TTF); err != nil {
		panic(fmt.Sprintf("ggsink: load Go Regular: %v", err))
	}
	return f
}

// Load registers TTF/OTF data under name, replacing any previous font.
func (f *Fonts) Load(name string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("vellum: load font %q: %w", name, ErrNoFont)
	}
	source, err := text.NewFontSource(data)
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

// LoadAll registers every name to path entry of a RunConfig.
func (f *Fonts) LoadAll(paths map[string]string) error {
	for name, path := range paths {
		if err := f.LoadFile(name, path); err != nil {
			return err
		}
	}
	return nil
}

func (f *Fonts) face(name string, size float64) text.Face {
	k := faceKey{name, size}
	if face, ok := f.faces[k]; ok {
		return face
	}
	source, ok := f.sources[name]
	if !ok {
		panic(fmt.Sprintf("vellum: unknown font %q", name))
	}
	face := source.Face(size)
	f.faces[k] = face
	return face
}

// Measure returns the line metrics of name at size.
func (f *Fonts) Measure(name, _ string, size float64) vellum.TextMetrics {
	m := f.face(name, size).Metrics()
	return vellum.TextMetrics{
		Ascent:     m.Ascent,
		Descent:    m.Descent,
		LineHeight: m.Ascent + m.Descent + m.LineGap,
	}
}

// GlyphAdvances lays out s one rune at a time.
func (f *Fonts) GlyphAdvances(name, s string, size float64) []vellum.GlyphAdvance {
	face := f.face(name, size)
	return vellum.PrefixAdvances(s, face.Advance)
}
