package main

import (
	"errors"
	"os"

	dadada "github.com/alnah/go-dadada"
	"github.com/alnah/go-dadada/internal/config"
	"github.com/alnah/go-dadada/internal/workspace"
)

// Exit codes for the dadada CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful rendering
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, undecodable input
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, dadada.ErrBrowserConnect) ||
		errors.Is(err, dadada.ErrPageCreate) ||
		errors.Is(err, dadada.ErrPageLoad) ||
		errors.Is(err, dadada.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrPDFNeedsOutput) ||
		errors.Is(err, ErrNoOutDir) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dadada.ErrInvalidOptions) ||
		errors.Is(err, dadada.ErrStyleNotFound) ||
		errors.Is(err, dadada.ErrScriptNotFound) ||
		errors.Is(err, dadada.ErrTemplateSetNotFound) ||
		errors.Is(err, dadada.ErrIncompleteTemplateSet) ||
		errors.Is(err, dadada.ErrInvalidAssetPath) ||
		errors.Is(err, workspace.ErrManifestNotFound) ||
		errors.Is(err, workspace.ErrManifestParse) ||
		errors.Is(err, workspace.ErrNoModulePath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, dadada.ErrFileAccess) ||
		errors.Is(err, dadada.ErrOutputAccess) ||
		errors.Is(err, dadada.ErrDecode) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	return ExitGeneral
}
