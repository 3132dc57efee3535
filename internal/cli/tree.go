package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/vellum"
	"github.com/phanxgames/vellum/ggsink"
	"github.com/phanxgames/vellum/internal/demo"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

type treeOpts struct {
	output string
	format string
	bounds bool
}

func (c *CLI) treeCommand() *cobra.Command {
	var flags sceneFlags
	opts := treeOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Dump the laid-out demo scene graph as DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			return c.tree(cmd, cfg, opts)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot or svg")
	cmd.Flags().BoolVar(&opts.bounds, "bounds", false, "label nodes with their computed bounds")
	return cmd
}

func (c *CLI) tree(cmd *cobra.Command, cfg vellum.RunConfig, opts treeOpts) error {
	logger := loggerFromContext(cmd.Context())

	// One headless frame runs the recalculation pass so bounds are filled in.
	fonts := ggsink.NewFonts()
	scene := vellum.NewScene(demo.NewComponent(ggsink.DefaultFont), fonts)
	scene.SetLogger(logger)
	cfg.Script = ""
	h, err := ggsink.NewHeadless(scene, fonts, cfg)
	if err != nil {
		return err
	}
	defer h.Close()
	h.Step()

	dotOpts := vellum.DOTOptions{Bounds: opts.bounds}
	var out []byte
	switch opts.format {
	case formatDOT:
		out = []byte(vellum.ToDOT(scene.Root(), dotOpts))
	case formatSVG:
		if out, err = vellum.RenderTreeSVG(cmd.Context(), scene.Root(), dotOpts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatDOT, formatSVG)
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	logger.Debug("wrote tree", "format", opts.format, "bytes", len(out))
	return nil
}
