package vellum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRunConfigOverridesDefaults(t *testing.T) {
	path := writeFile(t, "run.toml", `
title = "demo"
width = 320
show_fps = true
clear_color = { r = 1.0, g = 0.5, b = 0.0, a = 1.0 }

[fonts]
mono = "fonts/mono.ttf"
`)
	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "demo" || cfg.Width != 320 || !cfg.ShowFPS {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Height != DefaultRunConfig().Height {
		t.Errorf("Height = %d, want default", cfg.Height)
	}
	if cfg.ClearColor != (Color{1, 0.5, 0, 1}) {
		t.Errorf("ClearColor = %+v", cfg.ClearColor)
	}
	if cfg.Fonts["mono"] != "fonts/mono.ttf" {
		t.Errorf("Fonts = %v", cfg.Fonts)
	}
}

func TestLoadRunConfigUnknownKeys(t *testing.T) {
	path := writeFile(t, "run.toml", "widht = 10\ntitel = \"x\"\n")
	_, err := LoadRunConfig(path)
	if err == nil {
		t.Fatal("expected error for unknown keys")
	}
	if !strings.Contains(err.Error(), "titel, widht") {
		t.Errorf("err = %v, want sorted key list", err)
	}
}

func TestLoadRunConfigMissingFile(t *testing.T) {
	if _, err := LoadRunConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*RunConfig)
		ok   bool
	}{
		{"defaults", func(*RunConfig) {}, true},
		{"zero width", func(c *RunConfig) { c.Width = 0 }, false},
		{"negative height", func(c *RunConfig) { c.Height = -1 }, false},
		{"negative tps", func(c *RunConfig) { c.TPS = -30 }, false},
	}
	for _, tt := range tests {
		cfg := DefaultRunConfig()
		tt.edit(&cfg)
		if err := cfg.Validate(); (err == nil) != tt.ok {
			t.Errorf("%s: Validate() = %v", tt.name, err)
		}
	}
}

func TestRunConfigApply(t *testing.T) {
	script := writeFile(t, "script.json", `{"steps": [{"action": "wait", "frames": 1}]}`)
	cfg := DefaultRunConfig()
	cfg.Width, cfg.Height = 640, 360
	cfg.ScreenshotDir = "out"
	cfg.Script = script

	s, _ := newLogScene()
	if err := cfg.Apply(s); err != nil {
		t.Fatal(err)
	}
	if w, h := s.Size(); w != 640 || h != 360 {
		t.Errorf("Size = %gx%g", w, h)
	}
	if s.ScreenshotDir != "out" || s.TestRunner() == nil {
		t.Errorf("dir = %q, runner = %v", s.ScreenshotDir, s.TestRunner())
	}
}

func TestRunConfigApplyBadScript(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Script = writeFile(t, "script.json", `{"steps": []}`)
	s, _ := newLogScene()
	if err := cfg.Apply(s); err == nil {
		t.Error("expected error for empty script")
	}
}
