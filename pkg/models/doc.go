// Package models provides shared value types for moai-deck.
//
// These are the results handed across the boundary between the stores and
// the command layer: usage snapshots, the security projection of the
// assistant settings, and the launch mode enum.
//
// # Launch Modes
//
// The launcher can start the assistant in two ways:
//   - Terminal: a new terminal window chosen per platform (default)
//   - Tmux: a detached tmux session started in the project folder
//
// Use [LaunchMode] and its constants:
//
//	mode := models.LaunchTmux
//	if mode.IsValid() {
//	    fmt.Println("Valid mode:", mode)
//	}
package models
