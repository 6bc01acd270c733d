package main

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// newLogger builds the CLI logger. verbose and quiet win over level, which
// comes from DADADA_LOG_LEVEL; an unknown level falls back to info.
func newLogger(w io.Writer, level string, verbose, quiet bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})

	lvl := log.InfoLevel
	if level != "" {
		if parsed, err := log.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}
	switch {
	case quiet:
		lvl = log.ErrorLevel
	case verbose:
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger
}
