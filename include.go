package dadada

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-dadada/internal/pipeline"
)

// IncludeKind tells how an include file's content is emitted.
type IncludeKind int

const (
	IncludeRaw      IncludeKind = iota // inserted verbatim
	IncludeMarkdown                    // rendered to HTML first
)

func (k IncludeKind) String() string {
	if k == IncludeMarkdown {
		return "markdown"
	}
	return "raw"
}

// Include is an extra file resolved once at load time. HTML is ready to
// insert whatever the kind.
type Include struct {
	Kind IncludeKind
	Path string
	HTML string
}

// LoadInclude reads path and resolves it to an Include. Files ending in
// .md or .markdown are rendered with r; anything else is kept verbatim.
// Returns ErrFileAccess if the file cannot be read.
func LoadInclude(path string, r pipeline.Renderer) (Include, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided input
	if err != nil {
		return Include{}, fmt.Errorf("%w: include: %w", ErrFileAccess, err)
	}

	inc := Include{Kind: includeKindFor(path), Path: path, HTML: string(data)}
	if inc.Kind == IncludeMarkdown {
		html, err := r.Render(inc.HTML)
		if err != nil {
			return Include{}, fmt.Errorf("%s: %w", path, err)
		}
		inc.HTML = html
	}
	return inc, nil
}

func includeKindFor(path string) IncludeKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return IncludeMarkdown
	default:
		return IncludeRaw
	}
}

// pageIncludes holds the resolved includes of one document; nil fields are unset.
type pageIncludes struct {
	meta, header, footer *Include
}

// loadIncludes resolves every include named in opts before any output is produced.
func loadIncludes(opts Options, r pipeline.Renderer) (pageIncludes, error) {
	var p pageIncludes
	for _, slot := range []struct {
		path string
		dst  **Include
	}{
		{opts.ExtraMeta, &p.meta},
		{opts.ExtraHeader, &p.header},
		{opts.ExtraFooter, &p.footer},
	} {
		if slot.path == "" {
			continue
		}
		inc, err := LoadInclude(slot.path, r)
		if err != nil {
			return pageIncludes{}, err
		}
		*slot.dst = &inc
	}
	return p, nil
}
