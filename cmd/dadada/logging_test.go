package main

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestNewLogger_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		verbose bool
		quiet   bool
		want    log.Level
	}{
		{"default", "", false, false, log.InfoLevel},
		{"env level", "warn", false, false, log.WarnLevel},
		{"unknown env level", "chatty", false, false, log.InfoLevel},
		{"verbose", "warn", true, false, log.DebugLevel},
		{"quiet wins", "debug", true, true, log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger := newLogger(&bytes.Buffer{}, tt.level, tt.verbose, tt.quiet)
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewLogger_Fields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(&buf, "", false, false).WithField("path", "out.html").Info("rendered")

	want := "level=info msg=rendered path=out.html\n"
	if got := buf.String(); got != want {
		t.Errorf("log line = %q, want %q", got, want)
	}
}
