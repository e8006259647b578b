package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modu-ai/moai-deck/internal/project"
)

var errNotInitialized = errors.New("dependencies not initialized")

var projectsCmd = &cobra.Command{
	Use:     "projects",
	Aliases: []string{"p"},
	Short:   "Manage the project list",
	Args:    cobra.NoArgs,
	RunE:    runProjectsList,
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show registered projects in order",
	Args:  cobra.NoArgs,
	RunE:  runProjectsList,
}

var projectsAddCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Register a project folder (defaults to the current directory)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProjectsAdd,
}

var projectsRemoveCmd = &cobra.Command{
	Use:     "remove <path>",
	Aliases: []string{"rm"},
	Short:   "Unregister a project folder",
	Args:    cobra.ExactArgs(1),
	RunE:    runProjectsRemove,
}

var projectsReorderCmd = &cobra.Command{
	Use:   "reorder <path>...",
	Short: "Replace the project list with the given order",
	Long: `Replace the project list with the given paths, in order.

The list is stored exactly as given. Paths left out are removed and new
paths are added.`,
	Args: cobra.ArbitraryArgs,
	RunE: runProjectsReorder,
}

var projectsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the project list whenever it changes on disk",
	Args:  cobra.NoArgs,
	RunE:  runProjectsWatch,
}

func init() {
	projectsCmd.AddCommand(projectsListCmd, projectsAddCmd, projectsRemoveCmd, projectsReorderCmd, projectsWatchCmd)
	rootCmd.AddCommand(projectsCmd)
}

func requireDeps() (*Dependencies, error) {
	if deps == nil {
		return nil, errNotInitialized
	}
	return deps, nil
}

// absPath resolves p against the working directory. An empty p means ".".
func absPath(p string) (string, error) {
	if p == "" {
		p = "."
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", p, err)
	}
	return abs, nil
}

func runProjectsList(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	paths := d.Registry.List()
	if len(paths) == 0 {
		_, _ = fmt.Fprintln(out, d.Theme.Muted().Render("No projects registered. Add one with 'deck projects add <path>'."))
		return nil
	}
	writeProjectLines(cmd, d, paths)
	return nil
}

func writeProjectLines(cmd *cobra.Command, d *Dependencies, paths []string) {
	out := cmd.OutOrStdout()
	for i, p := range paths {
		_, _ = fmt.Fprintf(out, "%2d. %s %s\n", i+1, d.Metadata.Icon(p), p)
	}
}

func runProjectsAdd(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	path, err := absPath(arg)
	if err != nil {
		return err
	}
	if info, statErr := os.Stat(path); statErr != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", path)
	}

	added, ok, err := d.Registry.Add(path)
	if err != nil {
		return fmt.Errorf("add project: %w", err)
	}

	out := cmd.OutOrStdout()
	if !ok {
		_, _ = fmt.Fprintln(out, d.Theme.Warning().Render("Already registered: ")+project.NormalizePath(path))
		return nil
	}
	_, _ = fmt.Fprintln(out, renderSuccessCard("Project added", added))
	return nil
}

func runProjectsRemove(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	path, err := absPath(args[0])
	if err != nil {
		return err
	}
	if _, err := d.Registry.Remove(path); err != nil {
		return fmt.Errorf("remove project: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Project removed", path))
	return nil
}

func runProjectsReorder(cmd *cobra.Command, args []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(args))
	for _, a := range args {
		p, err := absPath(a)
		if err != nil {
			return err
		}
		paths = append(paths, project.NormalizePath(p))
	}

	if _, err := d.Registry.Reorder(paths); err != nil {
		return fmt.Errorf("reorder projects: %w", err)
	}
	writeProjectLines(cmd, d, d.Registry.List())
	return nil
}

func runProjectsWatch(cmd *cobra.Command, _ []string) error {
	d, err := requireDeps()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(d.Registry.Path()), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, d.Theme.Muted().Render("Watching "+d.Registry.Path()+" (Ctrl+C to stop)"))
	writeProjectLines(cmd, d, d.Registry.List())

	return project.Watch(ctx, d.Registry, d.Logger.With("module", "project"), func(paths []string) {
		_, _ = fmt.Fprintln(out, d.Theme.Title().Render("Projects changed"))
		writeProjectLines(cmd, d, paths)
	})
}
