package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/vellum"
	"github.com/phanxgames/vellum/ggsink"
	"github.com/phanxgames/vellum/internal/demo"
)

const defaultMaxFrames = 600

type renderOpts struct {
	output    string
	maxFrames int
}

func (c *CLI) renderCommand() *cobra.Command {
	var flags sceneFlags
	opts := renderOpts{output: "vellum.png", maxFrames: defaultMaxFrames}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the demo scene headlessly to a PNG",
		Long: `Render lays out and draws the demo scene without a window. With a test
script it steps frames until the script finishes (screenshot steps are
written to the configured screenshot directory) and then writes the final
frame.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			return c.render(cmd, cfg, opts)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PNG path")
	cmd.Flags().IntVar(&opts.maxFrames, "max-frames", opts.maxFrames, "frame limit while a script plays")
	return cmd
}

func (c *CLI) render(cmd *cobra.Command, cfg vellum.RunConfig, opts renderOpts) error {
	if opts.maxFrames <= 0 {
		return errors.New("max-frames must be positive")
	}
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	fonts := ggsink.NewFonts()
	scene := vellum.NewScene(demo.NewComponent(ggsink.DefaultFont), fonts)
	scene.SetLogger(logger)

	h, err := ggsink.NewHeadless(scene, fonts, cfg)
	if err != nil {
		return err
	}
	defer h.Close()

	frames := h.Run(opts.maxFrames)
	if r := scene.TestRunner(); r != nil && !r.Done() {
		logger.Warn("script did not finish", "frames", frames)
	}
	if n := h.Unsupported(); n > 0 {
		logger.Debug("paints fell back to solid colors", "count", n)
	}
	if err := vellum.WritePNG(opts.output, h.Image()); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d frames to %s", frames, opts.output))
	return nil
}
