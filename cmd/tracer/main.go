// tracer - geometry playground for a software ray tracer
// Plots projectile paths and glTF vertex clouds onto a canvas and writes
// them as PNG.
//
// Commands:
//
//	projectile  - Simulate a projectile and plot its path
//	points      - Plot the vertices of a .glb/.gltf model
//	view        - Preview an image in the terminal
//	config init - Write the default configuration file
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/taigrr/tracer/pkg/render"
)

var verbose bool

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := fang.Execute(ctx, newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tracer",
		Short: "ray tracer geometry playground",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newProjectileCmd(), newPointsCmd(), newViewCmd(), newConfigCmd())
	return rootCmd
}

// setupLogging installs a stderr text logger for the CLI and the libraries.
func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	render.SetLogger(logger)
}

// summary prints a styled heading followed by dimmed detail lines.
func summary(cmd *cobra.Command, title string, lines ...string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(title))
	for _, l := range lines {
		fmt.Fprintln(out, dimStyle.Render("  "+l))
	}
}
