package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-deck/internal/ui"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Summarize token usage from recent assistant logs",
	Args:  cobra.NoArgs,
	RunE:  runUsage,
}

func init() {
	rootCmd.AddCommand(usageCmd)
}

func runUsage(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	spin := ui.NewSpinner(d.Theme, d.Headless, cmd.ErrOrStderr(), "Scanning "+d.Config.Paths.Logs)
	snap := d.Usage.GetWithProgress(cmd.Context(), func(done, total int) {
		spin.SetTitle(fmt.Sprintf("Scanned %d/%d logs", done, total))
	})
	spin.Stop()

	title := fmt.Sprintf("Usage, last %d days", d.Config.Usage.WindowDays)
	if snap.IsZero() {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderCard(title, d.Theme.Muted().Render("No sessions found.")))
		return nil
	}

	rows := renderKeyValues([][2]string{
		{"Sessions", humanize.Comma(snap.Sessions)},
		{"Input tokens", humanize.Comma(snap.Input)},
		{"Output tokens", humanize.Comma(snap.Output)},
		{"Total tokens", humanize.Comma(snap.Total())},
	})
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderCard(title, rows...))
	return nil
}
