package launch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// sessionPrefix marks tmux sessions created by the launcher.
const sessionPrefix = "deck-"

// maxSessionSuffix bounds the search for a free session name.
const maxSessionSuffix = 9

// SessionResult holds the outcome of a tmux launch.
type SessionResult struct {
	// SessionName is the name of the created session.
	SessionName string
}

// TmuxLauncher starts the assistant inside a detached tmux session.
type TmuxLauncher struct {
	run    RunFunc
	logger *slog.Logger
}

// TmuxOption configures a TmuxLauncher.
type TmuxOption func(*TmuxLauncher)

// WithTmuxRunFunc sets a custom command runner (used for testing).
func WithTmuxRunFunc(fn RunFunc) TmuxOption {
	return func(t *TmuxLauncher) {
		t.run = fn
	}
}

// WithTmuxLogger sets the logger for the tmux launcher.
func WithTmuxLogger(l *slog.Logger) TmuxOption {
	return func(t *TmuxLauncher) {
		t.logger = l
	}
}

// NewTmuxLauncher creates a TmuxLauncher.
func NewTmuxLauncher(opts ...TmuxOption) *TmuxLauncher {
	t := &TmuxLauncher{
		run:    defaultRun,
		logger: slog.Default().With("module", "launch.tmux"),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start creates a detached session named after dir, with dir as its start
// directory, and types argv into its first pane.
//
// The session name is "deck-<folder>"; if that session already exists a
// numeric suffix is appended ("deck-<folder>-2" and so on).
func (t *TmuxLauncher) Start(ctx context.Context, dir string, argv []string) (*SessionResult, error) {
	name, err := t.freeSessionName(ctx, SessionName(dir))
	if err != nil {
		return nil, err
	}

	// Step 1: Create the session in the project folder.
	if _, err := t.run(ctx, "tmux", "new-session", "-d", "-s", name, "-c", dir); err != nil {
		return nil, fmt.Errorf("create session %q: %w", name, err)
	}
	t.logger.Debug("tmux session created", "name", name, "dir", dir)

	// Step 2: Send the assistant command to the first pane.
	target := name + ":0.0"
	if _, err := t.run(ctx, "tmux", "send-keys", "-t", target, ShellJoin(argv), "Enter"); err != nil {
		return nil, fmt.Errorf("send command to %q: %w", target, err)
	}

	t.logger.Info("tmux session ready", "name", name)
	return &SessionResult{SessionName: name}, nil
}

// freeSessionName returns base, or base with the lowest free suffix from 2
// to maxSessionSuffix.
func (t *TmuxLauncher) freeSessionName(ctx context.Context, base string) (string, error) {
	name := base
	for i := 2; ; i++ {
		if _, err := t.run(ctx, "tmux", "has-session", "-t", "="+name); err != nil {
			return name, nil
		}
		if i > maxSessionSuffix {
			break
		}
		name = fmt.Sprintf("%s-%d", base, i)
	}
	return "", fmt.Errorf("%w: %s through %s-%d", ErrSessionsExhausted, base, base, maxSessionSuffix)
}

// SessionName derives a tmux-safe session name from a folder path. tmux
// rejects '.' and ':' in session names.
func SessionName(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "root"
	}
	base = strings.Map(func(r rune) rune {
		switch r {
		case '.', ':', ' ':
			return '-'
		}
		return r
	}, base)
	return sessionPrefix + base
}
