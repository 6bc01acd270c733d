// Package hints builds short, actionable suggestions appended to CLI error
// messages. Every hint renders as "\n  hint: <text>".
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-dadada/internal/fileutil"
)

// IsInContainer detects a Docker container through the /.dockerenv marker.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect suggests rod environment variables when headless Chrome
// cannot be launched, taking CI and containers into account.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	hints = append(hints, "or drop --pdf to write HTML only")

	return formatHints(hints)
}

// ForTimeout suggests raising the PDF timeout.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound suggests --config and a user-level location to create.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(filepath2slash(p), ".config/dadada") || strings.Contains(filepath2slash(p), "/dadada/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory is shown when the output file or directory cannot be written.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInputFile is shown when a source or include file cannot be read.
func ForInputFile() string {
	return format("check the path and that the file is UTF-8 text")
}

// ForAssetNotFound lists the asset names that do exist.
func ForAssetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForWorkspace is shown when no go.work or go.mod can be located.
func ForWorkspace() string {
	return format("run inside a module or pass --manifest-path path/to/go.work")
}

func filepath2slash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
