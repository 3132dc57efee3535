package vellum

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestDebugDisposedChildPanics(t *testing.T) {
	s, _ := newPairScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := group("parent")
	child := group("child")
	child.Dispose()
	assertPanics(t, "AddChild disposed", func() { parent.AddChild(child) })
}

func TestDebugDisposedAllowedOutsideDebugMode(t *testing.T) {
	parent := group("parent")
	child := group("child")
	child.Dispose()
	parent.AddChild(child)
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d", parent.NumChildren())
	}
}

func TestDebugLogsFrameStats(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newPairScene()
	s.SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))
	defer s.SetLogger(nil)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	s.Frame(NewRecorder(), time.Millisecond)
	out := buf.String()
	if !strings.Contains(out, "frame") || !strings.Contains(out, "painted") {
		t.Errorf("log output missing frame stats:\n%s", out)
	}
}

func TestDebugQuietWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newPairScene()
	s.SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))
	defer s.SetLogger(nil)

	s.Frame(NewRecorder(), time.Millisecond)
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestDebugWarnsOnDeepTree(t *testing.T) {
	var buf bytes.Buffer
	s, _ := newPairScene()
	s.SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel}))
	defer s.SetLogger(nil)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := group("0")
	for i := 0; i < debugMaxTreeDepth; i++ {
		c := group("deep")
		n.AddChild(c)
		n = c
	}
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("expected depth warning, got %q", buf.String())
	}
}
