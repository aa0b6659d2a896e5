package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/harmonica"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/taigrr/tracer/internal/config"
	"github.com/taigrr/tracer/pkg/math3d"
	"github.com/taigrr/tracer/pkg/projectile"
	"github.com/taigrr/tracer/pkg/render"
)

// projectileOptions holds the flags of the projectile command.
type projectileOptions struct {
	configFile string
	output     string
	scale      int
	graph      bool
	preview    bool
}

func newProjectileCmd() *cobra.Command {
	opts := &projectileOptions{}

	cmd := &cobra.Command{
		Use:   "projectile",
		Short: "simulate a projectile and plot its path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectile(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output PNG path (overrides config)")
	cmd.Flags().IntVar(&opts.scale, "scale", 0, "PNG upscale factor (overrides config)")
	cmd.Flags().BoolVar(&opts.graph, "graph", false, "print the height curve")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "print a terminal preview of the canvas")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

func runProjectile(cmd *cobra.Command, opts *projectileOptions) error {
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.scale != 0 {
		cfg.Canvas.Scale = opts.scale
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := cfg.Launch()
	if err != nil {
		return err
	}

	dt := harmonica.FPS(cfg.TicksPerSecond)
	path, err := projectile.Simulate(cmd.Context(), cfg.Env(), p, dt, cfg.MaxTicks)
	if err != nil {
		return err
	}

	canvas, err := render.NewCanvasFilled(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.Background.Color())
	if err != nil {
		return err
	}
	plotted := projectile.Plot(canvas, path, cfg.Projectile.Color.Color())

	if err := canvas.SavePNG(cfg.Output, cfg.Canvas.Scale); err != nil {
		return err
	}
	slog.Info("wrote canvas", "path", cfg.Output)

	last := path[len(path)-1]
	summary(cmd, "projectile",
		fmt.Sprintf("ticks:   %d (dt %g)", len(path)-1, dt),
		fmt.Sprintf("landed:  %v", last),
		fmt.Sprintf("plotted: %d of %d positions on %dx%d", plotted, len(path), canvas.Width(), canvas.Height()),
		fmt.Sprintf("output:  %s", cfg.Output),
	)

	if opts.graph {
		fmt.Fprintln(cmd.OutOrStdout(), heightGraph(path))
	}
	if opts.preview {
		preview, err := previewCanvas(canvas, previewWidth)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), preview)
	}
	return nil
}

// heightGraph plots the y coordinate of every position in path.
func heightGraph(path []math3d.Tuple) string {
	heights := make([]float64, len(path))
	for i, pos := range path {
		heights[i] = pos.Y
	}
	return asciigraph.Plot(heights,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("height per tick"),
	)
}
