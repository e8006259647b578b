package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

var iconCmd = &cobra.Command{
	Use:   "icon",
	Short: "Show or change project icons",
	Args:  cobra.NoArgs,
	RunE:  runIconList,
}

var iconListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show custom icons",
	Args:  cobra.NoArgs,
	RunE:  runIconList,
}

var iconSetCmd = &cobra.Command{
	Use:   "set <path> [glyph]",
	Short: "Set a project's icon; omit the glyph to restore the default",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runIconSet,
}

func init() {
	iconCmd.AddCommand(iconListCmd, iconSetCmd)
	rootCmd.AddCommand(iconCmd)
}

func runIconList(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	icons := d.Metadata.Icons()
	if len(icons) == 0 {
		_, _ = fmt.Fprintln(out, d.Theme.Muted().Render("No custom icons. Default: "+d.Metadata.DefaultIcon()))
		return nil
	}

	paths := make([]string, 0, len(icons))
	for p := range icons {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	for _, p := range paths {
		_, _ = fmt.Fprintf(out, "%s %s\n", icons[p], p)
	}
	return nil
}

func runIconSet(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	path, err := absPath(args[0])
	if err != nil {
		return err
	}
	var glyph string
	if len(args) > 1 {
		glyph = args[1]
	}

	if err := d.Metadata.SetIcon(path, glyph); err != nil {
		return fmt.Errorf("set icon: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", d.Metadata.Icon(path), path)
	return nil
}
