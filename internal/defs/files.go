package defs

// Common file names used across the project.
const (
	// ProjectsJSON holds the ordered list of registered project folders.
	ProjectsJSON = "projects.json"

	// ProjectIconsJSON maps project folders to their icon glyph.
	ProjectIconsJSON = "project-icons.json"

	// ProjectOverridesJSON maps project folders to their button override document.
	ProjectOverridesJSON = "project-overrides.json"

	// WindowStateJSON holds the last saved window geometry.
	WindowStateJSON = "window-state.json"

	// ConfigYAML is the launcher configuration file inside the data directory.
	ConfigYAML = "config.yaml"

	// SettingsJSON is the assistant's user settings file.
	SettingsJSON = "settings.json"
)

// Directory names.
const (
	// AppDir is the launcher's directory under the user config dir.
	AppDir = "moai-deck"

	// ClaudeDir is the assistant's per-user directory under $HOME.
	ClaudeDir = ".claude"

	// LogsSubdir holds the assistant's session logs under ClaudeDir.
	LogsSubdir = "logs"
)
