package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phanxgames/reveal"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	configPath string
	scriptPath string
	sections   int
	width      float64
	height     float64
	fps        int
	maxFrames  int
}

func newSimulateCmd() *cobra.Command {
	opts := simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a JSON script headless and print the snapshots it takes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(opts.scriptPath)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			snaps, err := simulate(opts, data)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snaps)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML or TOML reveal config")
	cmd.Flags().StringVarP(&opts.scriptPath, "script", "s", "", "JSON script to run")
	cmd.Flags().IntVar(&opts.sections, "sections", 12, "Number of sections in the demo document")
	cmd.Flags().Float64Var(&opts.width, "width", 800, "Viewport width")
	cmd.Flags().Float64Var(&opts.height, "height", 600, "Viewport height")
	cmd.Flags().IntVar(&opts.fps, "fps", 60, "Simulated frames per second")
	cmd.Flags().IntVar(&opts.maxFrames, "max-frames", 10000, "Abort if the script has not finished after this many frames")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

// simulate runs script against the demo document and returns its snapshots.
func simulate(opts simulateOptions, script []byte) ([]reveal.Snapshot, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	runner, err := reveal.LoadScript(script)
	if err != nil {
		return nil, err
	}
	if opts.fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", opts.fps)
	}

	scene := reveal.NewScene(opts.width, opts.height)
	buildDocument(scene, opts.sections)

	fade := reveal.NewFadeEffect()
	reg := reveal.NewRegistry(scene)
	reg.SetEffect(fade)
	reg.Init(cfg)

	scene.SetTestRunner(runner)
	dt := 1.0 / float64(opts.fps)
	for frame := 0; !runner.Done(); frame++ {
		if frame >= opts.maxFrames {
			return nil, fmt.Errorf("script did not finish within %d frames", opts.maxFrames)
		}
		scene.Update(dt)
		fade.Update(float32(dt))
	}
	return scene.Snapshots(), nil
}
