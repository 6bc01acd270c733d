package main

// Notes:
// - exitCodeFor: we test the sentinel errors of each package plus wrapped
//   errors to verify the errors.Is() chain works correctly.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	dadada "github.com/alnah/go-dadada"
	"github.com/alnah/go-dadada/internal/config"
	"github.com/alnah/go-dadada/internal/workspace"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", dadada.ErrBrowserConnect, ExitBrowser},
		{"page create", dadada.ErrPageCreate, ExitBrowser},
		{"page load", dadada.ErrPageLoad, ExitBrowser},
		{"pdf generation", dadada.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("failed: %w", dadada.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"file access", dadada.ErrFileAccess, ExitIO},
		{"output access", dadada.ErrOutputAccess, ExitIO},
		{"decode", dadada.ErrDecode, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"wrapped open", fmt.Errorf("%w: %w", dadada.ErrFileAccess, os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"pdf needs output", ErrPDFNeedsOutput, ExitUsage},
		{"no out dir", ErrNoOutDir, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"invalid options", dadada.ErrInvalidOptions, ExitUsage},
		{"style not found", dadada.ErrStyleNotFound, ExitUsage},
		{"template set not found", dadada.ErrTemplateSetNotFound, ExitUsage},
		{"incomplete template set", dadada.ErrIncompleteTemplateSet, ExitUsage},
		{"invalid asset path", dadada.ErrInvalidAssetPath, ExitUsage},
		{"manifest not found", workspace.ErrManifestNotFound, ExitUsage},
		{"manifest not found wrapping ENOENT", fmt.Errorf("%w: %w", workspace.ErrManifestNotFound, os.ErrNotExist), ExitUsage},
		{"manifest parse", workspace.ErrManifestParse, ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"doctor failed", ErrDoctorFailed, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_UnixConventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1, 2 must follow Unix conventions")
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code >= 126 {
			t.Errorf("custom exit code %d must be below 126", code)
		}
	}
}
