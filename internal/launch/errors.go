package launch

import "errors"

// Sentinel errors for launch operations.
var (
	// ErrNoDir indicates the launch folder is empty or not a directory.
	ErrNoDir = errors.New("launch: folder does not exist or is not a directory")

	// ErrUnsupportedURL indicates a URL whose scheme is not http or https.
	ErrUnsupportedURL = errors.New("launch: only http and https URLs can be opened")

	// ErrNoTerminal indicates no terminal command is configured.
	ErrNoTerminal = errors.New("launch: no terminal command configured")

	// ErrSessionsExhausted indicates every candidate tmux session name is taken.
	ErrSessionsExhausted = errors.New("launch: no free tmux session name")
)
