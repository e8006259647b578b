package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-deck/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect or patch the assistant's user settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings document",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsModelCmd = &cobra.Command{
	Use:   "model [name]",
	Short: "Show or set the default model",
	Long: `Show the configured default model, or set it.

Pass --clear to remove the model field so the assistant picks its own
default. Every other field of the settings file is kept as is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsModel,
}

var securityCmd = &cobra.Command{
	Use:   "security",
	Short: "Report deny rules and pre-tool hooks in the assistant settings",
	Args:  cobra.NoArgs,
	RunE:  runSecurity,
}

func init() {
	settingsModelCmd.Flags().Bool("clear", false, "Remove the model field")

	settingsCmd.AddCommand(settingsShowCmd, settingsModelCmd)
	rootCmd.AddCommand(settingsCmd, securityCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(d.Settings.Get(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runSettingsModel(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	clearModel, _ := cmd.Flags().GetBool("clear")

	switch {
	case clearModel:
		if len(args) > 0 {
			return fmt.Errorf("--clear does not take a model name")
		}
		if err := d.Settings.SetModel(""); err != nil {
			return fmt.Errorf("clear model: %w", err)
		}
		_, _ = fmt.Fprintln(out, renderSuccessCard("Model cleared", d.Settings.Path()))
	case len(args) == 1:
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("model name is empty; use --clear to remove it")
		}
		if err := d.Settings.SetModel(name); err != nil {
			return fmt.Errorf("set model: %w", err)
		}
		_, _ = fmt.Fprintln(out, renderSuccessCard("Model set to "+name, d.Settings.Path()))
	default:
		model := d.Settings.Model()
		if model == "" {
			model = d.Theme.Muted().Render("(assistant default)")
		}
		_, _ = fmt.Fprintln(out, model)
	}
	return nil
}

func runSecurity(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	status := d.Settings.SecurityStatus()

	hook := "not configured"
	if status.HasHook {
		hook = "configured"
	}

	var b strings.Builder
	b.WriteString("# Security\n\n")
	fmt.Fprintf(&b, "Settings: `%s`\n\n", d.Settings.Path())
	b.WriteString("| Check | Status |\n|---|---|\n")
	fmt.Fprintf(&b, "| Deny rules | %d |\n", status.DenyCount)
	fmt.Fprintf(&b, "| PreToolUse hook | %s |\n", hook)
	if status.DenyCount == 0 && !status.HasHook {
		b.WriteString("\n> No deny rules or pre-tool hooks. Launching with `--skip-permissions` runs every tool unchecked.\n")
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.RenderMarkdown(d.Theme, b.String(), 0))
	return nil
}
