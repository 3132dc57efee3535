// Package cli implements the vellum command-line interface.
//
// # Commands
//
//   - run: open the demo scene in a window
//   - render: draw the demo scene headlessly to a PNG
//   - tree: dump the laid-out scene graph as Graphviz DOT or SVG
//
// All commands accept --config (-c) for a TOML run configuration and
// --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/phanxgames/vellum"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "vellum",
		Short:        "vellum draws retained-mode vector scenes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The rasterizer logs through slog; route it to the same output.
			gg.SetLogger(slog.New(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.PersistentFlags().StringP("config", "c", "", "TOML run configuration")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.treeCommand())
	return root
}

// sceneFlags are the run configuration fields every command can override.
type sceneFlags struct {
	width, height int
	script        string
	debug         bool
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 0, "canvas height in pixels")
	cmd.Flags().StringVar(&f.script, "script", "", "JSON test script to play")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "log per-frame stats")
}

// loadConfig reads --config, or the defaults, and applies the flags the user
// set explicitly on top.
func (f *sceneFlags) loadConfig(cmd *cobra.Command) (vellum.RunConfig, error) {
	cfg := vellum.DefaultRunConfig()
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		var err error
		if cfg, err = vellum.LoadRunConfig(path); err != nil {
			return vellum.RunConfig{}, err
		}
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = f.width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = f.height
	}
	if cmd.Flags().Changed("script") {
		cfg.Script = f.script
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = f.debug
	}
	return cfg, cfg.Validate()
}
