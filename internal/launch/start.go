package launch

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// StartFunc starts name with args in dir without waiting for it to exit.
type StartFunc func(ctx context.Context, dir, name string, args ...string) error

// RunFunc runs a command to completion and returns its combined output.
type RunFunc func(ctx context.Context, name string, args ...string) (string, error)

// defaultStart starts the process detached: it is never waited on, and its
// handle is released so no zombie bookkeeping stays with the launcher.
func defaultStart(_ context.Context, dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	return cmd.Process.Release()
}

func defaultRun(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
