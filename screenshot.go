package vellum

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot. The backend that draws the next
// frame captures it and writes a PNG to ScreenshotDir with a timestamped
// filename (see WriteScreenshots).
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (s *Scene) TakeScreenshots() []string {
	q := s.screenshotQueue
	s.screenshotQueue = nil
	return q
}

// FlushScreenshots writes img once for every queued label. Backends call it
// after drawing a frame; it is a no-op when nothing is queued.
func (s *Scene) FlushScreenshots(img image.Image) {
	labels := s.TakeScreenshots()
	if len(labels) == 0 {
		return
	}
	if err := WriteScreenshots(s.ScreenshotDir, img, labels); err != nil {
		s.logger.Error("screenshot", "err", err)
	}
}

// WriteScreenshots writes img as a PNG under dir for every label and returns
// the first error.
func WriteScreenshots(dir string, img image.Image, labels []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("vellum: screenshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := WritePNG(path, img); err != nil {
			return err
		}
	}
	return nil
}

// WritePNG encodes an image to a PNG file at the given path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vellum: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("vellum: encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
