package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-deck/internal/defs"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration and where it came from",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	cfg := d.Config
	source := filepath.Join(cfg.DataDir, defs.ConfigYAML)
	if !d.ConfigLoaded {
		source = d.Theme.Muted().Render("defaults (" + source + " not loaded)")
	}

	rows := renderKeyValues([][2]string{
		{"Source", source},
		{"Data dir", cfg.DataDir},
		{"Command", cfg.Launch.Command},
		{"Mode", string(cfg.Launch.Mode)},
		{"Settings", cfg.Paths.Settings},
		{"Logs", cfg.Paths.Logs},
		{"Usage window", strconv.Itoa(cfg.Usage.WindowDays) + " days"},
		{"Log level", cfg.System.LogLevel},
	})
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderCard("Configuration", rows...))
	return nil
}
