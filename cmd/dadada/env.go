package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-dadada/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	// LoadEnv reads DADADA_* overrides. Tests replace it to avoid
	// depending on the process environment.
	LoadEnv func() (config.EnvConfig, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		LoadEnv: config.LoadFromEnv,
	}
}
