package vellum

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNoSteps is returned by LoadTestScript for a script without steps.
var ErrNoSteps = errors.New("vellum: test script has no steps")

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Key    string  `json:"key,omitempty"`
	Text   string  `json:"text,omitempty"`
	Millis int     `json:"ms,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and screenshots across frames for
// scripted sessions. Attach to a Scene via SetTestRunner.
//
// Actions: "resize" (width, height), "click" (x, y), "key" (key),
// "type" (text), "tick" (ms), "wait" (frames) and "screenshot" (label).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("vellum: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, ErrNoSteps
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "resize", "click", "key", "type", "tick", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("vellum: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called at the start of every Scene.Update.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// TestRunner returns the attached runner, or nil.
func (s *Scene) TestRunner() *TestRunner { return s.testRunner }

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "resize":
		s.InjectResize(st.Width, st.Height)
	case "click":
		s.InjectMouseDown(st.X, st.Y)
	case "key":
		s.InjectKey(Key(st.Key), 0)
	case "type":
		s.InjectChar(st.Text)
	case "tick":
		s.InjectTick(time.Duration(st.Millis) * time.Millisecond)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
