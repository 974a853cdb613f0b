//go:build windows

package process

import "os/exec"

// setSysProcAttr is a no-op on Windows; there is no Setpgid equivalent.
func setSysProcAttr(cmd *exec.Cmd) {}
