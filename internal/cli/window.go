package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-deck/internal/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show or change the saved launcher window geometry",
	Args:  cobra.NoArgs,
	RunE:  runWindowShow,
}

var windowShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved geometry, repaired for the configured displays",
	Args:  cobra.NoArgs,
	RunE:  runWindowShow,
}

var windowSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the saved geometry",
	Long: `Update the saved window geometry. Only the given flags change.

Sizes below the minimum are raised to it, and a position that lies on none
of the displays listed in config.yaml is dropped.`,
	Args: cobra.NoArgs,
	RunE: runWindowSet,
}

func init() {
	f := windowSetCmd.Flags()
	f.Int("width", 0, "Window width")
	f.Int("height", 0, "Window height")
	f.Int("x", 0, "Left edge (requires --y)")
	f.Int("y", 0, "Top edge (requires --x)")
	f.Bool("maximized", false, "Start maximized")
	f.Bool("center", false, "Forget the saved position")
	windowSetCmd.MarkFlagsRequiredTogether("x", "y")
	windowSetCmd.MarkFlagsMutuallyExclusive("x", "center")

	windowCmd.AddCommand(windowShowCmd, windowSetCmd)
	rootCmd.AddCommand(windowCmd)
}

func runWindowShow(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	writeWindowState(cmd, window.Load(d.Window, d.displays()))
	return nil
}

func runWindowSet(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	displays := d.displays()
	next := window.Load(d.Window, displays)

	f := cmd.Flags()
	if f.Changed("width") {
		next.Width, _ = f.GetInt("width")
	}
	if f.Changed("height") {
		next.Height, _ = f.GetInt("height")
	}
	if f.Changed("x") {
		x, _ := f.GetInt("x")
		y, _ := f.GetInt("y")
		next.X, next.Y = window.Position(x, y)
	}
	if center, _ := f.GetBool("center"); center {
		next.X, next.Y = nil, nil
	}
	if f.Changed("maximized") {
		next.Maximized, _ = f.GetBool("maximized")
	}
	next = window.Normalize(next, displays)

	saver := window.NewSaver(d.Window, d.Config.Debounce(), d.Logger.With("module", "window"))
	saver.Update(next)
	if err := saver.Flush(); err != nil {
		return fmt.Errorf("save window state: %w", err)
	}

	writeWindowState(cmd, next)
	return nil
}

func writeWindowState(cmd *cobra.Command, s window.State) {
	pos := "centered"
	if s.X != nil && s.Y != nil {
		pos = strconv.Itoa(*s.X) + "," + strconv.Itoa(*s.Y)
	}
	rows := renderKeyValues([][2]string{
		{"Size", fmt.Sprintf("%dx%d", s.Width, s.Height)},
		{"Position", pos},
		{"Maximized", strconv.FormatBool(s.Maximized)},
	})
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderCard("Window", rows...))
}
