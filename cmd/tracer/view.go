package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taigrr/tracer/pkg/render"
)

func newViewCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "view [image.png]",
		Short: "preview a PNG or JPEG in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canvas, err := render.LoadCanvas(args[0])
			if err != nil {
				return err
			}
			preview, err := previewCanvas(canvas, width)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), preview)
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", previewWidth, "preview width in columns")
	return cmd
}
