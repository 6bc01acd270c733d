//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup kills the headless browser started for PDF export and
// its child processes. Windows has no process groups to signal, so the tree
// is walked by taskkill. Errors are ignored: the browser may already have
// exited after Browser.Close.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
