// Package cli provides the Cobra command tree and dependency injection
// wiring for the deck CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/modu-ai/moai-deck/internal/config"
	"github.com/modu-ai/moai-deck/internal/launch"
	"github.com/modu-ai/moai-deck/internal/project"
	"github.com/modu-ai/moai-deck/internal/settings"
	"github.com/modu-ai/moai-deck/internal/store"
	"github.com/modu-ai/moai-deck/internal/ui"
	"github.com/modu-ai/moai-deck/internal/usage"
	"github.com/modu-ai/moai-deck/internal/window"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config *config.Config
	// ConfigLoaded is true when Config was read from config.yaml rather
	// than built from defaults.
	ConfigLoaded bool

	Registry *project.Registry
	Metadata *project.Metadata
	Settings *settings.Store
	Usage    *usage.Aggregator
	Launcher launch.Launcher
	Opener   *launch.Opener
	Window   *store.Store[window.State]
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Picker   *ui.Picker
	Logger   *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
// CLI commands access this through the package-level variable.
var deps *Dependencies

// InitDependencies resolves the data directory, loads config.yaml and wires
// every store and service from it.
func InitDependencies() error {
	dataDir, err := config.ResolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data directory: %w", err)
	}

	bootstrap := newLogger(os.Stderr, slog.LevelWarn, config.DefaultLogFormat)
	loader := config.NewLoader(config.WithLogger(bootstrap.With("module", "config")))
	cfg, err := loader.Load(dataDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(os.Stderr, cfg.SlogLevel(), cfg.System.LogFormat)
	slog.SetDefault(logger)

	deps = NewDependencies(cfg, logger)
	deps.ConfigLoaded = loader.Loaded()
	return nil
}

// NewDependencies builds the services for cfg.
func NewDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	storeOpts := []store.Option{store.WithLogger(logger.With("module", "store"))}

	theme := ui.NewTheme(ui.ThemeConfig{NoColor: cfg.UI.NoColor})
	hm := ui.NewHeadlessManager()

	return &Dependencies{
		Config:   cfg,
		Registry: project.NewRegistry(cfg.ProjectsPath(), storeOpts...),
		Metadata: project.NewMetadata(cfg.IconsPath(), cfg.OverridesPath(), storeOpts,
			project.WithDefaultIcon(cfg.UI.DefaultIcon)),
		Settings: settings.NewStore(cfg.Paths.Settings, storeOpts...),
		Usage: usage.NewAggregator(cfg.Paths.Logs,
			usage.WithWindow(cfg.UsageWindow()),
			usage.WithConcurrency(cfg.Usage.Concurrency),
			usage.WithLogger(logger.With("module", "usage")),
		),
		Launcher: launch.NewDispatcher(
			launch.WithCommand(cfg.Launch.Command),
			launch.WithMode(cfg.Launch.Mode),
			launch.WithTerminal(cfg.Launch.Terminal),
			launch.WithLogger(logger.With("module", "launch")),
		),
		Opener:   launch.NewOpener(),
		Window:   window.NewStore(cfg.WindowStatePath(), storeOpts...),
		Theme:    theme,
		Headless: hm,
		Picker:   ui.NewPicker(theme, hm),
		Logger:   logger,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// displays converts the configured monitors to window rectangles.
func (d *Dependencies) displays() []window.Rect {
	rects := make([]window.Rect, 0, len(d.Config.Window.Displays))
	for _, disp := range d.Config.Window.Displays {
		rects = append(rects, window.Rect{X: disp.X, Y: disp.Y, Width: disp.Width, Height: disp.Height})
	}
	return rects
}
