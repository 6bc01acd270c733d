package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed styles/*.css
var styles embed.FS

//go:embed scripts/*.js
var scripts embed.FS

//go:embed templates/*.html
var templates embed.FS

// EmbeddedLoader loads assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a stylesheet from embedded assets by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// LoadScript loads a script from embedded assets by name.
func (e *EmbeddedLoader) LoadScript(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := scripts.ReadFile("scripts/" + name + ".js")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrScriptNotFound, name)
	}
	return string(content), nil
}

// LoadTemplateSet loads a fragment set from embedded assets by name.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	return &TemplateSet{Name: name, Source: string(content)}, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)

// StyleNames lists the embedded stylesheet names.
func StyleNames() []string {
	return embeddedNames(styles, "styles/*.css")
}

// TemplateSetNames lists the embedded template set names.
func TemplateSetNames() []string {
	return embeddedNames(templates, "templates/*.html")
}

func embeddedNames(fsys embed.FS, pattern string) []string {
	// Error ignored: fs.Glob only fails on a malformed pattern.
	matches, _ := fs.Glob(fsys, pattern)
	names := make([]string, len(matches))
	for i, m := range matches {
		base := path.Base(m)
		names[i] = strings.TrimSuffix(base, path.Ext(base))
	}
	return names
}
