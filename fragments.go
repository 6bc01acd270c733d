package dadada

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// Fragment names a template set must define.
const (
	fragHead     = "head"
	fragStyle    = "style"
	fragScript   = "script"
	fragBody     = "body"
	fragMain     = "main"
	fragBlock    = "block"
	fragComment  = "comment"
	fragCode     = "code"
	fragEndBlock = "endblock"
	fragEndMain  = "endmain"
	fragFoot     = "foot"
)

var requiredFragments = []string{
	fragHead, fragStyle, fragScript, fragBody, fragMain,
	fragBlock, fragComment, fragCode, fragEndBlock, fragEndMain, fragFoot,
}

// Fragment data.
type (
	headData struct {
		Title string
	}
	blockData struct {
		Index  int
		Header bool
	}
	codeData struct {
		Code         string // already escaped
		StartingLine int
		Language     string
	}
)

// fragmentSet is a parsed template set.
type fragmentSet struct {
	name string
	tmpl *template.Template
}

// parseFragments parses ts and checks that every required fragment is defined.
func parseFragments(ts *TemplateSet) (*fragmentSet, error) {
	tmpl, err := template.New(ts.Name).Option("missingkey=error").Parse(ts.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrIncompleteTemplateSet, ts.Name, err)
	}

	var missing []string
	for _, name := range requiredFragments {
		if tmpl.Lookup(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q lacks %s", ErrIncompleteTemplateSet, ts.Name, strings.Join(missing, ", "))
	}

	return &fragmentSet{name: ts.Name, tmpl: tmpl}, nil
}

func (f *fragmentSet) execute(w io.Writer, name string, data any) error {
	if err := f.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("template set %q: fragment %q: %w", f.name, name, err)
	}
	return nil
}
