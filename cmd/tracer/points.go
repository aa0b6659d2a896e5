package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/taigrr/tracer/pkg/models"
	"github.com/taigrr/tracer/pkg/render"
)

type pointsOptions struct {
	width   int
	height  int
	scale   int
	output  string
	color   string
	bg      string
	preview bool
}

func newPointsCmd() *cobra.Command {
	opts := &pointsOptions{}

	cmd := &cobra.Command{
		Use:   "points [model.glb|model.gltf]",
		Short: "plot the vertices of a glTF model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoints(cmd, args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 200, "canvas width")
	cmd.Flags().IntVar(&opts.height, "height", 200, "canvas height")
	cmd.Flags().IntVar(&opts.scale, "scale", 1, "PNG upscale factor")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "points.png", "output PNG path")
	cmd.Flags().StringVar(&opts.color, "color", "1,1,1", "point color (R,G,B in 0..1)")
	cmd.Flags().StringVar(&opts.bg, "bg", "0,0,0", "background color (R,G,B in 0..1)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "print a terminal preview of the canvas")
	return cmd
}

func runPoints(cmd *cobra.Command, modelPath string, opts *pointsOptions) error {
	fg, err := render.ParseRGB(opts.color)
	if err != nil {
		return err
	}
	bg, err := render.ParseRGB(opts.bg)
	if err != nil {
		return err
	}

	points, err := models.LoadPoints(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	lo, hi, err := models.Bounds(points)
	if err != nil {
		return fmt.Errorf("%s: %w", modelPath, err)
	}

	canvas, err := render.NewCanvasFilled(opts.width, opts.height, bg)
	if err != nil {
		return err
	}
	plotted, err := models.PlotPoints(canvas, points, fg)
	if err != nil {
		return err
	}

	if err := canvas.SavePNG(opts.output, opts.scale); err != nil {
		return err
	}
	slog.Info("wrote canvas", "path", opts.output)

	summary(cmd, filepath.Base(modelPath),
		fmt.Sprintf("vertices: %d", len(points)),
		fmt.Sprintf("bounds:   %v .. %v", lo, hi),
		fmt.Sprintf("plotted:  %d on %dx%d", plotted, canvas.Width(), canvas.Height()),
		fmt.Sprintf("output:   %s", opts.output),
	)

	if opts.preview {
		preview, err := previewCanvas(canvas, previewWidth)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), preview)
	}
	return nil
}
