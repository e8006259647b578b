package ui

import "errors"

var (
	// ErrCancelled is returned when the user aborts a picker.
	ErrCancelled = errors.New("ui: cancelled by user")

	// ErrHeadless is returned when a picker needs a terminal and none is attached.
	ErrHeadless = errors.New("ui: interactive input requires a terminal")

	// ErrNoChoices is returned when a picker has nothing to offer.
	ErrNoChoices = errors.New("ui: nothing to choose from")
)
