package main

import (
	"github.com/phanxgames/reveal"
	"github.com/phanxgames/reveal/ebitenhost"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		sections   int
		width      int
		height     int
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the demo document in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			scene := reveal.NewScene(float64(width), float64(height))
			buildDocument(scene, sections)

			fade := reveal.NewFadeEffect()
			fade.Zoom = 0.9
			reg := reveal.NewRegistry(scene)
			reg.SetEffect(fade)
			reg.SetDebugMode(debug)

			game := ebitenhost.NewGame(scene, reg, fade)
			reg.SetDevice(game.Device())
			reg.Init(cfg)

			return ebitenhost.Run(game, ebitenhost.RunConfig{
				Title:     "reveal",
				Width:     width,
				Height:    height,
				Resizable: true,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML or TOML reveal config")
	cmd.Flags().IntVar(&sections, "sections", 12, "Number of sections in the demo document")
	cmd.Flags().IntVar(&width, "width", 800, "Window width")
	cmd.Flags().IntVar(&height, "height", 600, "Window height")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log scan statistics")
	return cmd
}
