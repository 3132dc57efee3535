package vellum

import (
	"time"

	"github.com/charmbracelet/log"
)

// EntityStore is the interface for optional ECS integration. When set on a
// Scene, every system message is forwarded after the tree has seen it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries a dispatched system message for the ECS bridge.
type InteractionEvent struct {
	Kind  EventKind
	Msg   SystemMsg
	Frame uint64
	// NodeID is the topmost node under the pointer for mouse events, or 0.
	NodeID         uint32
	LocalX, LocalY float64
}

// Scene drives one component tree frame by frame. Within a frame, queued
// system messages are dispatched first, then the root component's view is
// updated, then geometry is recalculated if anything changed, and finally
// the tree is painted.
type Scene struct {
	root  *Node
	comp  Component
	fonts FontService

	width, height float64
	bound         Rect

	// System messages waiting for the next Update.
	pending []SystemMsg
	// Injected input, delivered one per frame (see inject.go).
	injectQueue []SystemMsg

	resized     bool
	invalidated bool
	laidOut     bool

	store EntityStore

	debug     bool
	logger    *log.Logger
	frame     uint64
	lastStats frameStats

	testRunner *TestRunner

	// ScreenshotDir is where backends write queued screenshots.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewScene creates a scene around root. fonts measures text during
// recalculation and may be nil if the tree has no text.
func NewScene(root Component, fonts FontService) *Scene {
	return &Scene{
		root:          Embed(root),
		comp:          root,
		fonts:         fonts,
		logger:        defaultLogger,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the node embedding the root component.
func (s *Scene) Root() *Node { return s.root }

// Component returns the root component.
func (s *Scene) Component() Component { return s.comp }

// Fonts returns the scene's font service.
func (s *Scene) Fonts() FontService { return s.fonts }

// Size returns the drawable size from the last Resize.
func (s *Scene) Size() (width, height float64) { return s.width, s.height }

// Bound returns the root's bound from the last recalculation pass.
func (s *Scene) Bound() Rect { return s.bound }

// FrameCount returns the number of completed Update calls.
func (s *Scene) FrameCount() uint64 { return s.frame }

// Resize records a new drawable size and queues a WindowResized message.
// The next Update dispatches it to every node before laying out against
// the new size.
func (s *Scene) Resize(width, height float64) {
	if width == s.width && height == s.height && s.laidOut {
		return
	}
	s.width, s.height = width, height
	s.resized = true
	s.Post(WindowResized{Width: width, Height: height})
}

// Post queues a system message for the next Update.
func (s *Scene) Post(msg SystemMsg) {
	s.pending = append(s.pending, msg)
}

// Send delivers a model message directly to the root component. It is
// applied by the next Update.
func (s *Scene) Send(msg any) {
	s.comp.Send(msg)
}

// Invalidate forces the next Update to recalculate every subtree, including
// clean components. Use it after mutating nodes outside a Patch.
func (s *Scene) Invalidate() {
	s.invalidated = true
}

// SetEntityStore sets the ECS bridge, or clears it with nil.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLogger replaces the scene's logger. Node debug checks log through the
// most recently set logger.
func (s *Scene) SetLogger(l *log.Logger) {
	if l == nil {
		l = defaultLogger
	}
	s.logger = l
	debugLogger = l
}

// Logger returns the scene's logger.
func (s *Scene) Logger() *log.Logger { return s.logger }

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-frame timing stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// Update runs the non-painting half of a frame: dispatch, update-view and
// recalculation.
func (s *Scene) Update() {
	var stats frameStats
	var t0 time.Time

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjected()

	if s.debug {
		t0 = time.Now()
	}
	pending := s.pending
	s.pending = nil
	for _, msg := range pending {
		Dispatch(s.root, msg)
		s.emit(msg)
	}
	stats.messages = len(pending)

	if s.debug {
		stats.dispatchTime = time.Since(t0)
		t0 = time.Now()
	}

	stats.verdict = s.comp.UpdateView()

	if s.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	if s.resized || s.invalidated || !s.laidOut || s.comp.NeedRecalc() {
		p := recalcPass{fonts: s.fonts, force: s.resized || s.invalidated || !s.laidOut}
		s.bound = p.node(s.root, Rect{Width: s.width, Height: s.height}, Identity(), Style{})
		s.resized, s.invalidated, s.laidOut = false, false, true
		stats.recalculated = true
		stats.visited, stats.skipped = p.visited, p.skipped
	}

	if s.debug {
		stats.recalcTime = time.Since(t0)
	}
	s.frame++
	s.lastStats = stats
}

func (s *Scene) emit(msg SystemMsg) {
	if s.store == nil {
		return
	}
	ev := InteractionEvent{Kind: msg.Kind(), Msg: msg, Frame: s.frame}
	if md, ok := msg.(MouseDown); ok {
		if hit := HitTest(s.root, md.X, md.Y); hit != nil {
			ev.NodeID = hit.ID
			ev.LocalX, ev.LocalY = hit.toLocal(md.X, md.Y)
		}
	}
	s.store.EmitEvent(ev)
}

// Draw paints the tree into sink using the geometry from the last Update.
func (s *Scene) Draw(sink PaintSink) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	stats := s.lastStats
	stats.painted = Render(s.root, sink)
	if s.debug {
		stats.renderTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// Frame runs a whole frame: it queues a DrawTick for elapsed, then updates
// and draws.
func (s *Scene) Frame(sink PaintSink, elapsed time.Duration) {
	s.Post(DrawTick{Elapsed: elapsed})
	s.Update()
	s.Draw(sink)
}
