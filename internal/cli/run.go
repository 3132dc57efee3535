package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/vellum"
	"github.com/phanxgames/vellum/ebitensink"
	"github.com/phanxgames/vellum/internal/demo"
)

func (c *CLI) runCommand() *cobra.Command {
	var flags sceneFlags
	var title string
	var fps bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the demo scene in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("title") {
				cfg.Title = title
			}
			if cmd.Flags().Changed("fps") {
				cfg.ShowFPS = fps
			}

			logger := loggerFromContext(cmd.Context())
			fonts := ebitensink.NewFonts()
			scene := vellum.NewScene(demo.NewComponent(ebitensink.DefaultFont), fonts)
			scene.SetLogger(logger)
			logger.Info("opening window", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
			return ebitensink.Run(scene, fonts, cfg)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "window title")
	cmd.Flags().BoolVar(&fps, "fps", false, "show the FPS overlay")
	return cmd
}
