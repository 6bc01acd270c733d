package dadada

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-dadada/internal/pipeline"
)

func TestLoadInclude(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	renderer := pipeline.NewGoldmarkRenderer()

	tests := []struct {
		name     string
		file     string
		content  string
		wantKind IncludeKind
		wantHTML string
	}{
		{"markdown by .md", "note.md", "*hi*", IncludeMarkdown, "<p><em>hi</em></p>"},
		{"markdown by .markdown", "note.markdown", "**hi**", IncludeMarkdown, "<p><strong>hi</strong></p>"},
		{"extension is case-insensitive", "UPPER.MD", "# Hi", IncludeMarkdown, `<h1 id="hi">Hi</h1>`},
		{"html verbatim", "meta.html", "<meta charset=\"utf-8\">", IncludeRaw, "<meta charset=\"utf-8\">"},
		{"no extension verbatim", "footer", "*kept*", IncludeRaw, "*kept*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.content)

			inc, err := LoadInclude(path, renderer)
			if err != nil {
				t.Fatalf("LoadInclude() error = %v", err)
			}
			if inc.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", inc.Kind, tt.wantKind)
			}
			if inc.Path != path {
				t.Errorf("Path = %q, want %q", inc.Path, path)
			}
			if !strings.Contains(inc.HTML, tt.wantHTML) {
				t.Errorf("HTML = %q, want it to contain %q", inc.HTML, tt.wantHTML)
			}
		})
	}
}

func TestLoadInclude_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadInclude(filepath.Join(t.TempDir(), "absent.md"), pipeline.NewGoldmarkRenderer())
	if !errors.Is(err, ErrFileAccess) {
		t.Errorf("LoadInclude() error = %v, want ErrFileAccess", err)
	}
}

type errRenderer struct{}

func (errRenderer) Render(string) (string, error) {
	return "", pipeline.ErrHTMLConversion
}

func TestLoadInclude_RenderError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "x.md")
	writeFile(t, path, "text")

	_, err := LoadInclude(path, errRenderer{})
	if !errors.Is(err, ErrHTMLConversion) {
		t.Errorf("LoadInclude() error = %v, want ErrHTMLConversion", err)
	}
}

func TestIncludeKind_String(t *testing.T) {
	t.Parallel()

	if IncludeRaw.String() != "raw" || IncludeMarkdown.String() != "markdown" {
		t.Errorf("String() = %q, %q", IncludeRaw.String(), IncludeMarkdown.String())
	}
}
