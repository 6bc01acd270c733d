package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-dadada/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	env := DefaultEnv()

	// Loaded before DADADA_FLAGS so the file can provide it.
	if err := config.LoadDotEnv(""); err != nil {
		fmt.Fprintln(env.Stderr, "warning: reading .env:", err)
	}

	args, err := expandArgs(os.Args[1:], os.Getenv(flagsEnvVar))
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		os.Exit(ExitUsage)
	}

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, args, env)
	stop()
	os.Exit(code)
}
