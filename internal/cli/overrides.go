package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-deck/internal/project"
)

var overridesCmd = &cobra.Command{
	Use:   "overrides",
	Short: "Show or change per-project launch overrides",
	Args:  cobra.NoArgs,
	RunE:  runOverridesList,
}

var overridesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all overrides as JSON",
	Args:  cobra.NoArgs,
	RunE:  runOverridesList,
}

var overridesSetCmd = &cobra.Command{
	Use:   "set <path> [key=value ...]",
	Short: "Replace a project's overrides; no pairs clears them",
	Long: `Replace a project's override document with the given key=value pairs.

Values that parse as JSON (numbers, booleans, arrays, objects, quoted
strings) are stored as such; anything else is stored as a plain string.
Running without pairs removes the project's overrides.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOverridesSet,
}

func init() {
	overridesCmd.AddCommand(overridesListCmd, overridesSetCmd)
	rootCmd.AddCommand(overridesCmd)
}

func runOverridesList(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(d.Metadata.Overrides(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal overrides: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runOverridesSet(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	path, err := absPath(args[0])
	if err != nil {
		return err
	}
	doc, err := parseOverridePairs(args[1:])
	if err != nil {
		return err
	}

	if err := d.Metadata.SetOverrides(path, doc); err != nil {
		return fmt.Errorf("set overrides: %w", err)
	}

	if len(doc) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Overrides cleared", path))
		return nil
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Overrides saved", path))
	return nil
}

// parseOverridePairs turns key=value arguments into an override document.
func parseOverridePairs(pairs []string) (project.Overrides, error) {
	doc := project.Overrides{}
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q: want key=value", pair)
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		doc[key] = v
	}
	return doc, nil
}
