// Package launch starts the assistant in a project folder and opens paths
// and URLs with the OS shell handler. Started processes are never waited on
// or supervised.
package launch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/modu-ai/moai-deck/pkg/models"
)

// DefaultCommand is the assistant executable.
const DefaultCommand = "claude"

// DefaultTerminal is the terminal invocation used on Linux and other Unixes.
var DefaultTerminal = []string{"x-terminal-emulator", "-e"}

// Launcher starts the assistant for a request.
type Launcher interface {
	Launch(ctx context.Context, req Request) error
}

// Dispatcher implements Launcher for the current platform.
type Dispatcher struct {
	command  string
	mode     models.LaunchMode
	terminal []string
	goos     string
	start    StartFunc
	tmux     *TmuxLauncher
	logger   *slog.Logger
}

// Compile-time interface compliance check.
var _ Launcher = (*Dispatcher)(nil)

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithCommand sets the assistant executable.
func WithCommand(cmd string) DispatcherOption {
	return func(d *Dispatcher) {
		if cmd != "" {
			d.command = cmd
		}
	}
}

// WithMode selects terminal or tmux launching.
func WithMode(m models.LaunchMode) DispatcherOption {
	return func(d *Dispatcher) {
		if m.IsValid() {
			d.mode = m
		}
	}
}

// WithTerminal sets the terminal prefix used on Linux, e.g. ["kitty", "-e"].
func WithTerminal(argv []string) DispatcherOption {
	return func(d *Dispatcher) {
		if len(argv) > 0 {
			d.terminal = argv
		}
	}
}

// WithGOOS overrides platform detection (used for testing).
func WithGOOS(goos string) DispatcherOption {
	return func(d *Dispatcher) {
		d.goos = goos
	}
}

// WithStartFunc sets a custom process starter (used for testing).
func WithStartFunc(fn StartFunc) DispatcherOption {
	return func(d *Dispatcher) {
		d.start = fn
	}
}

// WithTmux sets the tmux launcher used in tmux mode.
func WithTmux(t *TmuxLauncher) DispatcherOption {
	return func(d *Dispatcher) {
		d.tmux = t
	}
}

// WithLogger sets the logger for the dispatcher.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// NewDispatcher creates a Dispatcher for the running platform.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		command:  DefaultCommand,
		mode:     models.LaunchTerminal,
		terminal: DefaultTerminal,
		goos:     runtime.GOOS,
		start:    defaultStart,
		logger:   slog.Default().With("module", "launch"),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.tmux == nil {
		d.tmux = NewTmuxLauncher(WithTmuxLogger(d.logger))
	}
	return d
}

// Launch starts the assistant in req.Dir. It returns once the terminal or
// tmux session has been started; the assistant itself is not observed.
func (d *Dispatcher) Launch(ctx context.Context, req Request) error {
	if err := checkDir(req.Dir); err != nil {
		return err
	}

	argv := BuildArgs(d.command, req)
	d.logger.Info("launching assistant",
		"dir", req.Dir,
		"model", req.Model,
		"skip_permissions", req.SkipPermissions,
		"mode", d.mode,
	)

	if d.mode == models.LaunchTmux && d.goos != "windows" {
		_, err := d.tmux.Start(ctx, req.Dir, argv)
		return err
	}

	name, args, err := d.terminalInvocation(req.Dir, argv)
	if err != nil {
		return err
	}
	return d.start(ctx, req.Dir, name, args...)
}

// terminalInvocation returns the platform command that opens a terminal
// running argv in dir.
func (d *Dispatcher) terminalInvocation(dir string, argv []string) (string, []string, error) {
	switch d.goos {
	case "darwin":
		line := "cd " + ShellQuote(dir) + " && " + ShellJoin(argv)
		return "osascript", []string{
			"-e", "tell application \"Terminal\" to do script " + appleScriptString(line),
			"-e", "tell application \"Terminal\" to activate",
		}, nil
	case "windows":
		args := append([]string{"/c", "start", "", "/D", dir, "cmd", "/k"}, argv...)
		return "cmd", args, nil
	default:
		if len(d.terminal) == 0 || d.terminal[0] == "" {
			return "", nil, ErrNoTerminal
		}
		args := append(append([]string{}, d.terminal[1:]...), argv...)
		return d.terminal[0], args, nil
	}
}

func checkDir(dir string) error {
	if dir == "" {
		return ErrNoDir
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNoDir, dir)
	}
	return nil
}
