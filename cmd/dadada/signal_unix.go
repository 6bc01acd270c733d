//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// shutdownSignals cancel a render. SIGHUP is included so closing the
// terminal during a PDF export still reaches the deferred browser cleanup.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// notifyContext derives the render context from parent. A shutdown signal
// cancels it, which aborts a pending page load in the PDF exporter and lets
// Close kill the browser process group before exit.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
