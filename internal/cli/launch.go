package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-deck/internal/launch"
	"github.com/modu-ai/moai-deck/internal/ui"
)

var launchCmd = &cobra.Command{
	Use:     "launch [path]",
	Aliases: []string{"l", "run"},
	Short:   "Start the assistant in a project folder",
	Long: `Start the assistant in a new terminal (or tmux session) rooted at a
project folder. The folder defaults to the current directory.

  --pick     browse for the folder, then choose the model and permission mode
  --select   choose among registered projects

The launcher returns as soon as the terminal is started; the assistant
itself is never waited on.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLaunch,
}

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Open a folder in the system file manager",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpen,
}

var urlCmd = &cobra.Command{
	Use:   "url <url>",
	Short: "Open an http(s) URL in the default browser",
	Args:  cobra.ExactArgs(1),
	RunE:  runURL,
}

func init() {
	launchCmd.Flags().StringP("model", "m", "", "Model to start the assistant with")
	launchCmd.Flags().Bool("skip-permissions", false, "Start with "+launch.SkipPermissionsFlag)
	launchCmd.Flags().Bool("pick", false, "Browse for the folder and choose options interactively")
	launchCmd.Flags().Bool("select", false, "Choose among registered projects")
	launchCmd.MarkFlagsMutuallyExclusive("pick", "select")

	rootCmd.AddCommand(launchCmd, openCmd, urlCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	model, _ := cmd.Flags().GetString("model")
	skip, _ := cmd.Flags().GetBool("skip-permissions")
	pick, _ := cmd.Flags().GetBool("pick")
	sel, _ := cmd.Flags().GetBool("select")

	if (pick || sel) && len(args) > 0 {
		return fmt.Errorf("a path cannot be combined with --pick or --select")
	}

	var dir string
	switch {
	case pick:
		start, err := os.UserHomeDir()
		if err != nil {
			start = "."
		}
		if dir, err = d.Picker.Directory(start); err != nil {
			return err
		}
	case sel:
		choices := make([]ui.ProjectChoice, 0)
		for _, p := range d.Registry.List() {
			choices = append(choices, ui.ProjectChoice{Path: p, Icon: d.Metadata.Icon(p)})
		}
		if dir, err = d.Picker.Project(choices); err != nil {
			return err
		}
	default:
		var arg string
		if len(args) > 0 {
			arg = args[0]
		}
		if dir, err = absPath(arg); err != nil {
			return err
		}
	}

	if pick {
		if !cmd.Flags().Changed("model") {
			if model, err = d.Picker.Model(d.Config.Launch.Models, d.Settings.Model()); err != nil {
				return err
			}
		}
		if !cmd.Flags().Changed("skip-permissions") {
			if skip, err = d.Picker.ConfirmSkipPermissions(); err != nil {
				return err
			}
		}
	}

	req := launch.Request{Dir: dir, Model: model, SkipPermissions: skip}
	if err := d.Launcher.Launch(cmd.Context(), req); err != nil {
		return fmt.Errorf("launch: %w", err)
	}

	details := []string{dir}
	if model != "" {
		details = append(details, "model: "+model)
	}
	if skip {
		details = append(details, d.Theme.Warning().Render("permission prompts skipped"))
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Assistant started", details...))
	return nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	path, err := absPath(args[0])
	if err != nil {
		return err
	}
	if err := d.Opener.OpenPath(cmd.Context(), path); err != nil {
		return fmt.Errorf("open folder: %w", err)
	}
	return nil
}

func runURL(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	if err := d.Opener.OpenURL(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("open url: %w", err)
	}
	return nil
}
