package vellum

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// RunConfig configures a windowed or headless run of a scene.
type RunConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	ClearColor Color  `toml:"clear_color"`
	Debug      bool   `toml:"debug"`
	ShowFPS    bool   `toml:"show_fps"`
	// TPS is the update rate; zero keeps the backend default.
	TPS int `toml:"tps"`
	// Fonts maps font names used by Text nodes to font file paths.
	Fonts map[string]string `toml:"fonts"`
	// ScreenshotDir overrides Scene.ScreenshotDir when set.
	ScreenshotDir string `toml:"screenshot_dir"`
	// Script is an optional JSON test script run against the scene.
	Script string `toml:"script"`
}

// DefaultRunConfig returns the configuration used when no file is given.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:      "vellum",
		Width:      800,
		Height:     600,
		ClearColor: Color{0.1, 0.1, 0.12, 1},
	}
}

// LoadRunConfig reads a TOML file over DefaultRunConfig. Unknown keys are
// an error so typos do not silently fall back to defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return RunConfig{}, fmt.Errorf("vellum: load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return RunConfig{}, fmt.Errorf("vellum: load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, fmt.Errorf("vellum: load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("size %dx%d must be positive", c.Width, c.Height)
	}
	if c.TPS < 0 {
		return fmt.Errorf("tps %d must not be negative", c.TPS)
	}
	return nil
}

// Apply copies scene-level settings onto s and attaches the test script,
// if one is configured.
func (c RunConfig) Apply(s *Scene) error {
	s.SetDebugMode(c.Debug)
	if c.ScreenshotDir != "" {
		s.ScreenshotDir = c.ScreenshotDir
	}
	s.Resize(float64(c.Width), float64(c.Height))
	if c.Script == "" {
		return nil
	}
	data, err := os.ReadFile(c.Script)
	if err != nil {
		return fmt.Errorf("vellum: read test script: %w", err)
	}
	runner, err := LoadTestScript(data)
	if err != nil {
		return err
	}
	s.SetTestRunner(runner)
	return nil
}
