//go:build !windows

package process

import "syscall"

// KillProcessGroup kills the headless browser started for PDF export along
// with its renderer and GPU helpers, which share the browser's process group.
// When pid does not lead a group, only pid itself is killed. Errors are
// ignored: the browser may already have exited after Browser.Close.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	if err := syscall.Kill(-pid, syscall.SIGKILL); err != nil {
		_ = syscall.Kill(pid, syscall.SIGKILL)
	}
}
