//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// shutdownSignals cancel a render. Windows delivers only os.Interrupt.
var shutdownSignals = []os.Signal{os.Interrupt}

// notifyContext derives the render context from parent. Ctrl+C cancels it so
// the PDF exporter stops waiting on the page and the browser tree is killed.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
