package config

import (
	"os"
	"path/filepath"

	"github.com/modu-ai/moai-deck/internal/defs"
	"github.com/modu-ai/moai-deck/pkg/models"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultCommand    = "claude"
	DefaultLaunchMode = models.LaunchTerminal

	DefaultIcon = "📁"

	DefaultUsageWindowDays  = 7
	DefaultUsageConcurrency = 8

	DefaultDebounceMS = 600

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// DefaultTerminal is the Linux terminal prefix.
var DefaultTerminal = []string{"x-terminal-emulator", "-e"}

// DefaultModels are offered by the interactive model picker.
var DefaultModels = []string{"opus", "sonnet", "haiku"}

// NewDefaultConfig returns a Config populated with compiled defaults.
// Paths under the assistant's directory are rooted at homeDir.
func NewDefaultConfig(homeDir string) *Config {
	claudeDir := filepath.Join(homeDir, defs.ClaudeDir)
	return &Config{
		Launch: LaunchConfig{
			Command:  DefaultCommand,
			Mode:     DefaultLaunchMode,
			Terminal: append([]string(nil), DefaultTerminal...),
			Models:   append([]string(nil), DefaultModels...),
		},
		Paths: PathsConfig{
			Settings: filepath.Join(claudeDir, defs.SettingsJSON),
			Logs:     filepath.Join(claudeDir, defs.LogsSubdir),
		},
		UI: UIConfig{
			DefaultIcon: DefaultIcon,
		},
		Usage: UsageConfig{
			WindowDays:  DefaultUsageWindowDays,
			Concurrency: DefaultUsageConcurrency,
		},
		Window: WindowConfig{
			DebounceMS: DefaultDebounceMS,
		},
		System: SystemConfig{
			LogLevel:  DefaultLogLevel,
			LogFormat: DefaultLogFormat,
		},
	}
}

// homeDir returns the user's home directory, falling back to $HOME.
func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil && h != "" {
		return h
	}
	return os.Getenv("HOME")
}

// ResolveDataDir returns DECK_DATA_DIR if set, otherwise the launcher's
// directory under the user config dir.
func ResolveDataDir() (string, error) {
	if dir := os.Getenv("DECK_DATA_DIR"); dir != "" {
		return filepath.Clean(dir), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, defs.AppDir), nil
}
