package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/moai-deck/internal/defs"
	"github.com/modu-ai/moai-deck/pkg/models"
)

// Loader reads config.yaml from a data directory.
type Loader struct {
	homeDir string
	logger  *slog.Logger
	loaded  bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHomeDir sets the home directory used for default and "~" paths.
func WithHomeDir(dir string) LoaderOption {
	return func(l *Loader) {
		l.homeDir = dir
	}
}

// WithLogger sets the logger used to report skipped files.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a new Loader instance.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		homeDir: homeDir(),
		logger:  slog.Default().With("module", "config"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load builds the configuration for dataDir. A missing config.yaml yields
// defaults; an invalid one is skipped with a warning. Environment variables
// override file values. The result is validated before it is returned.
func (l *Loader) Load(dataDir string) (*Config, error) {
	cfg := NewDefaultConfig(l.homeDir)

	loaded, err := loadYAMLFile(dataDir, defs.ConfigYAML, cfg)
	if err != nil {
		l.logger.Warn("failed to load config, using defaults", "error", err)
		cfg = NewDefaultConfig(l.homeDir)
	}
	l.loaded = loaded && err == nil

	applyEnvOverrides(cfg)

	cfg.DataDir = filepath.Clean(dataDir)
	cfg.Paths.Settings = expandHome(cfg.Paths.Settings, l.homeDir)
	cfg.Paths.Logs = expandHome(cfg.Paths.Logs, l.homeDir)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Loaded reports whether the last Load read values from config.yaml.
func (l *Loader) Loaded() bool {
	return l.loaded
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables have higher priority than file-based values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DECK_CLAUDE_SETTINGS"); v != "" {
		cfg.Paths.Settings = v
	}
	if v := os.Getenv("DECK_LOG_DIR"); v != "" {
		cfg.Paths.Logs = v
	}
	if v := os.Getenv("DECK_COMMAND"); v != "" {
		cfg.Launch.Command = v
	}
	if v := os.Getenv("DECK_LAUNCH_MODE"); v != "" {
		cfg.Launch.Mode = models.LaunchMode(v)
	}
	if v := os.Getenv("DECK_LOG_LEVEL"); v != "" {
		cfg.System.LogLevel = v
	}
	if v := os.Getenv("DECK_LOG_FORMAT"); v != "" {
		cfg.System.LogFormat = v
	}
	if v := os.Getenv("DECK_NO_COLOR"); v == "true" || v == "1" {
		cfg.UI.NoColor = true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.UI.NoColor = true
	}
}

// expandHome replaces a leading "~" with homeDir.
func expandHome(p, homeDir string) string {
	if p == "~" {
		return homeDir
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(homeDir, p[2:])
	}
	return p
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals it
// into the target struct. Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
