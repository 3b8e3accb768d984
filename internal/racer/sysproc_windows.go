//go:build windows

package racer

import "syscall"

// sysProcAttr keeps the child from flashing a console window when the host
// editor runs without one attached.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{HideWindow: true}
}
