//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// setSysProcAttr places the backend in its own process group so terminal
// signals aimed at the shell are not also delivered to the backend.
func setSysProcAttr(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
