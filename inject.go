package vellum

import "time"

// Injected input is queued on the scene and delivered one message per
// Update, exactly like input read from a window, so scripted sessions see
// the same frame-by-frame ordering as a user.

// InjectMouseDown queues a left-button press at device coordinates (x, y).
func (s *Scene) InjectMouseDown(x, y float64) {
	s.injectQueue = append(s.injectQueue, MouseDown{X: x, Y: y, Button: MouseButtonLeft})
}

// InjectKey queues a key press followed by its release. Consumes two frames.
func (s *Scene) InjectKey(key Key, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue,
		KeyDown{Key: key, Modifiers: mods},
		KeyUp{Key: key, Modifiers: mods})
}

// InjectChar queues one CharTyped per rune of text, one per frame.
func (s *Scene) InjectChar(text string) {
	for _, r := range text {
		s.injectQueue = append(s.injectQueue, CharTyped{Char: r})
	}
}

// InjectTick queues a DrawTick with the given elapsed time.
func (s *Scene) InjectTick(elapsed time.Duration) {
	s.injectQueue = append(s.injectQueue, DrawTick{Elapsed: elapsed})
}

// InjectResize resizes the scene on the frame the event is consumed.
func (s *Scene) InjectResize(width, height float64) {
	s.injectQueue = append(s.injectQueue, WindowResized{Width: width, Height: height})
}

// Injecting reports whether injected input is still queued.
func (s *Scene) Injecting() bool {
	return len(s.injectQueue) > 0
}

// processInjected pops one event from the inject queue and posts it.
// Returns true if an event was consumed (drivers skip real input then).
func (s *Scene) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if r, ok := evt.(WindowResized); ok {
		s.Resize(r.Width, r.Height)
		return true
	}
	s.Post(evt)
	return true
}
