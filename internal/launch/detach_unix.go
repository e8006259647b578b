//go:build !windows

package launch

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own session so it outlives the launcher's
// terminal.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
