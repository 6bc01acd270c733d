package dadada

import (
	"fmt"
	"regexp"

	"github.com/alnah/go-dadada/internal/pipeline"
)

// Options controls the page wrapper around the rendered blocks.
// The zero value renders a bare document without CSS or JS; use
// DefaultOptions for the usual page.
type Options struct {
	Title       string // Emitted verbatim in <title>
	WithCSS     bool   // Inline the stylesheet
	WithJS      bool   // Inline the highlighter, grammars and line numbering
	ExtraMeta   string // Include path inserted at the end of <head>
	ExtraHeader string // Include path inserted before the main container
	ExtraFooter string // Include path inserted after the main container
	Language    string // Code panel language class, e.g. "go"
}

// DefaultOptions returns Options with CSS and JS enabled.
func DefaultOptions() Options {
	return Options{WithCSS: true, WithJS: true}
}

// languagePattern restricts Language to characters safe in a class attribute.
var languagePattern = regexp.MustCompile(`^[A-Za-z0-9_+#-]*$`)

// Validate checks Options for values that cannot be emitted safely.
// Title is not checked: it is emitted verbatim at any length.
func (o Options) Validate() error {
	if !languagePattern.MatchString(o.Language) {
		return fmt.Errorf("%w: language %q contains invalid characters", ErrInvalidOptions, o.Language)
	}
	return nil
}

// DetectLanguage returns the code-panel language for a source file name,
// or "" when it is not recognised.
func DetectLanguage(filename string) string {
	return pipeline.DetectLanguage(filename)
}
