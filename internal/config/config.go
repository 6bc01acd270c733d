// Package config loads the YAML configuration file and environment
// overrides for the dadada command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-dadada/internal/fileutil"
	"github.com/alnah/go-dadada/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory under the user config dir searched for named configs.
const AppDirName = "dadada"

// Field length limits.
const (
	MaxPathLength      = 4096 // Include and directory paths
	MaxNameLength      = 64   // Asset and style names
	MaxPatternLength   = 256  // Workspace glob pattern
	MaxPageSizeLength  = 10   // "letter", "a4", "legal"
	MaxOrientationLen  = 10   // "portrait", "landscape"
	MaxTimeoutLength   = 20   // "30s", "2m"
	MaxWorkspaceFilter = 64   // Patterns per include/exclude list
)

// Config holds all configuration for a rendering run.
type Config struct {
	Document  DocumentConfig  `yaml:"document"`
	Assets    AssetsConfig    `yaml:"assets"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	PDF       PDFConfig       `yaml:"pdf"`
	Workspace WorkspaceConfig `yaml:"workspace"`
}

// DocumentConfig defines the page wrapper around the rendered blocks.
type DocumentConfig struct {
	Title  string `yaml:"title"`
	CSS    *bool  `yaml:"css"`    // nil = default (on)
	JS     *bool  `yaml:"js"`     // nil = default (on)
	Meta   string `yaml:"meta"`   // Include inserted in <head>
	Header string `yaml:"header"` // Include inserted before <main>
	Footer string `yaml:"footer"` // Include inserted after </main>
}

// AssetsConfig selects and overrides the inlined assets.
type AssetsConfig struct {
	BasePath       string `yaml:"basePath"`       // Empty = embedded assets only
	Style          string `yaml:"style"`          // Stylesheet name
	Template       string `yaml:"template"`       // Fragment set name
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style for fenced code in comments
}

// MarkdownConfig tunes comment rendering.
type MarkdownConfig struct {
	RawHTML *bool `yaml:"rawHTML"` // nil = default (allowed)
}

// PDFConfig defines optional PDF export.
type PDFConfig struct {
	Enabled bool       `yaml:"enabled"`
	Timeout string     `yaml:"timeout"` // Go duration, e.g. "30s"
	Page    PageConfig `yaml:"page"`
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
}

// WorkspaceConfig defines the defaults of the workspace command.
type WorkspaceConfig struct {
	ManifestPath string   `yaml:"manifestPath"`
	OutDir       string   `yaml:"outDir"`
	SplitPackage bool     `yaml:"splitPackage"`
	SplitExample bool     `yaml:"splitExample"`
	Include      []string `yaml:"include"`
	Exclude      []string `yaml:"exclude"`
}

// Validate checks field lengths and enumerated values.
// Called by LoadConfig; also usable on hand-built configs.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"document.meta", c.Document.Meta, MaxPathLength},
		{"document.header", c.Document.Header, MaxPathLength},
		{"document.footer", c.Document.Footer, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.style", c.Assets.Style, MaxNameLength},
		{"assets.template", c.Assets.Template, MaxNameLength},
		{"assets.highlightStyle", c.Assets.HighlightStyle, MaxNameLength},
		{"pdf.timeout", c.PDF.Timeout, MaxTimeoutLength},
		{"pdf.page.size", c.PDF.Page.Size, MaxPageSizeLength},
		{"pdf.page.orientation", c.PDF.Page.Orientation, MaxOrientationLen},
		{"workspace.manifestPath", c.Workspace.ManifestPath, MaxPathLength},
		{"workspace.outDir", c.Workspace.OutDir, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.PDF.Timeout != "" {
		d, err := time.ParseDuration(c.PDF.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: pdf.timeout: %q is not a positive duration", ErrInvalidValue, c.PDF.Timeout)
		}
	}
	if err := validateEnum("pdf.page.size", c.PDF.Page.Size, "letter", "a4", "legal"); err != nil {
		return err
	}
	if err := validateEnum("pdf.page.orientation", c.PDF.Page.Orientation, "portrait", "landscape"); err != nil {
		return err
	}
	if c.PDF.Page.Margin < 0 || c.PDF.Page.Margin > 3 {
		return fmt.Errorf("%w: pdf.page.margin: must be between 0 and 3, got %.2f", ErrInvalidValue, c.PDF.Page.Margin)
	}

	for name, list := range map[string][]string{
		"workspace.include": c.Workspace.Include,
		"workspace.exclude": c.Workspace.Exclude,
	} {
		if len(list) > MaxWorkspaceFilter {
			return fmt.Errorf("%w: %s (%d patterns, max %d)", ErrFieldTooLong, name, len(list), MaxWorkspaceFilter)
		}
		for i, p := range list {
			if err := validateFieldLength(fmt.Sprintf("%s[%d]", name, i), p, MaxPatternLength); err != nil {
				return err
			}
		}
	}

	return nil
}

// PDFTimeout returns the parsed PDF timeout, or zero when unset.
func (c *Config) PDFTimeout() time.Duration {
	d, err := time.ParseDuration(c.PDF.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts an empty value or one of allowed, case-insensitively.
func validateEnum(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns a configuration where every field is unset, so
// library defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a file path; otherwise it is a name
// searched as {name}.yaml and {name}.yml in the working directory and then in
// the user config directory. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
