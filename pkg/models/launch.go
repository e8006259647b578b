package models

// LaunchMode selects how the assistant process is started.
type LaunchMode string

const (
	// LaunchTerminal opens a new terminal window running the assistant.
	LaunchTerminal LaunchMode = "terminal"

	// LaunchTmux starts the assistant in a detached tmux session.
	LaunchTmux LaunchMode = "tmux"
)

// ValidLaunchModes returns all valid launch mode values.
func ValidLaunchModes() []LaunchMode {
	return []LaunchMode{LaunchTerminal, LaunchTmux}
}

// IsValid checks if the launch mode is a valid value.
func (m LaunchMode) IsValid() bool {
	switch m {
	case LaunchTerminal, LaunchTmux:
		return true
	}
	return false
}
