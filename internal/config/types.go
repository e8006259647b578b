package config

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/modu-ai/moai-deck/internal/defs"
	"github.com/modu-ai/moai-deck/pkg/models"
)

// Config is the root configuration aggregate read from config.yaml.
type Config struct {
	Launch LaunchConfig `yaml:"launch"`
	Paths  PathsConfig  `yaml:"paths"`
	UI     UIConfig     `yaml:"ui"`
	Usage  UsageConfig  `yaml:"usage"`
	Window WindowConfig `yaml:"window"`
	System SystemConfig `yaml:"system"`

	// DataDir is where the launcher keeps its own files. It is resolved at
	// load time and never read from config.yaml.
	DataDir string `yaml:"-"`
}

// LaunchConfig controls how the assistant is started.
type LaunchConfig struct {
	Command  string            `yaml:"command"`
	Mode     models.LaunchMode `yaml:"mode"`
	Terminal []string          `yaml:"terminal"`
	// Models lists the choices offered by the interactive picker.
	Models []string `yaml:"models"`
}

// PathsConfig locates files owned by the assistant.
type PathsConfig struct {
	Settings string `yaml:"settings"`
	Logs     string `yaml:"logs"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DefaultIcon string `yaml:"default_icon"`
	NoColor     bool   `yaml:"no_color"`
}

// UsageConfig controls the usage scan.
type UsageConfig struct {
	WindowDays  int `yaml:"window_days"`
	Concurrency int `yaml:"concurrency"`
}

// WindowConfig controls window state persistence.
type WindowConfig struct {
	DebounceMS int       `yaml:"debounce_ms"`
	Displays   []Display `yaml:"displays"`
}

// Display is one monitor work area in global coordinates.
type Display struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SystemConfig represents the system configuration section.
type SystemConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// ProjectsPath returns the registry file path.
func (c *Config) ProjectsPath() string {
	return filepath.Join(c.DataDir, defs.ProjectsJSON)
}

// IconsPath returns the project icon map file path.
func (c *Config) IconsPath() string {
	return filepath.Join(c.DataDir, defs.ProjectIconsJSON)
}

// OverridesPath returns the project override map file path.
func (c *Config) OverridesPath() string {
	return filepath.Join(c.DataDir, defs.ProjectOverridesJSON)
}

// WindowStatePath returns the window geometry file path.
func (c *Config) WindowStatePath() string {
	return filepath.Join(c.DataDir, defs.WindowStateJSON)
}

// UsageWindow returns the usage scan window as a duration.
func (c *Config) UsageWindow() time.Duration {
	return time.Duration(c.Usage.WindowDays) * 24 * time.Hour
}

// Debounce returns the window state debounce delay.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Window.DebounceMS) * time.Millisecond
}

// SlogLevel maps System.LogLevel to a slog level. Unknown values map to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.System.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
