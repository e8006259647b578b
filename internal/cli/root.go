package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-deck/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "deck",
	Short: "MoAI Deck: project launcher for the Claude coding assistant",
	Long: `MoAI Deck keeps an ordered list of project folders and starts the
assistant in any of them, optionally with a model and the permission-bypass
flag. It also edits the assistant's model setting, reports the security
posture of its settings, and summarizes token usage from recent logs.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if deps != nil {
			return nil
		}
		return InitDependencies()
	},
}

// Execute runs the root command. Dependencies are initialized before the
// first subcommand runs unless a test has injected them.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), renderErrorCard(err))
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("moai-deck %s\n", version.GetFullVersion()))
}
