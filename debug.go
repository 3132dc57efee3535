package vellum

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// defaultLogger writes warnings and errors to stderr. Scene.SetLogger
// replaces it for a scene and for node debug checks.
var defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "vellum",
	Level:  log.WarnLevel,
})

// debugLogger is the logger node operations warn through. It follows the
// most recent Scene.SetLogger call.
var debugLogger = defaultLogger

// frameStats holds per-frame timing and traversal counts.
// Only populated when Scene.debug is true.
type frameStats struct {
	dispatchTime time.Duration
	updateTime   time.Duration
	recalcTime   time.Duration
	renderTime   time.Duration
	messages     int
	verdict      ChangeView
	visited      int
	skipped      int
	painted      int
	recalculated bool
}

// debugLog reports the frame's stats at debug level.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	total := stats.dispatchTime + stats.updateTime + stats.recalcTime + stats.renderTime
	s.logger.Debug("frame",
		"n", s.frame,
		"dispatch", stats.dispatchTime,
		"update", stats.updateTime,
		"recalc", stats.recalcTime,
		"render", stats.renderTime,
		"total", total)
	s.logger.Debug("frame counts",
		"n", s.frame,
		"messages", stats.messages,
		"verdict", stats.verdict,
		"recalculated", stats.recalculated,
		"visited", stats.visited,
		"skipped", stats.skipped,
		"painted", stats.painted)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("vellum debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogger.Warn("child count exceeds threshold",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
