package dadada

import (
	"errors"

	"github.com/alnah/go-dadada/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// ErrFileAccess indicates a source or include file could not be opened or read.
	ErrFileAccess = errors.New("cannot access file")

	// ErrOutputAccess indicates the output destination could not be created or written.
	ErrOutputAccess = errors.New("cannot write output")

	// ErrDecode indicates file content is not valid UTF-8 text.
	ErrDecode = errors.New("cannot decode file as text")

	// ErrHTMLConversion indicates the Markdown renderer failed.
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// ErrInvalidOptions indicates Options failed validation.
	ErrInvalidOptions = errors.New("invalid options")

	// PDF export errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Asset loading errors.
	ErrStyleNotFound         = errors.New("style not found")
	ErrScriptNotFound        = errors.New("script not found")
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required fragment")
	ErrInvalidAssetPath      = errors.New("invalid asset path")
)
