//go:build !windows

package racer

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
