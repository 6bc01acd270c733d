package dadada

import "strings"

// CommentKind classifies a comment line by its marker style.
type CommentKind int

// Comment kinds. KindAny means no kind has been established for the block
// under construction.
const (
	KindAny    CommentKind = iota
	KindSimple             // "//"
	KindBang               // "//!" or "// !"
	KindDoc                // "///"
)

// String returns the marker-style name of the kind.
func (k CommentKind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindBang:
		return "bang"
	case KindDoc:
		return "doc"
	default:
		return "any"
	}
}

// Block is a contiguous run of source lines: the comment lines that open it
// followed by the code lines they annotate.
type Block struct {
	Comment      []string // comment bodies, markers stripped and trimmed
	Code         []string // code lines, verbatim
	StartingLine int      // 1-based line of the first code line, or of block creation
	Header       bool     // synthetic file-header block
}

// NewFileBlock creates the header block that marks the start of a source
// file when several files are rendered into one document.
func NewFileBlock(title, dir string) Block {
	comment := []string{"# " + title}
	if dir != "" {
		comment = append(comment, "", "`"+dir+"`")
	}
	return Block{
		Comment:      comment,
		StartingLine: 1,
		Header:       true,
	}
}

// HasCode reports whether the block holds at least one non-blank code line.
func (b Block) HasCode() bool {
	for _, line := range b.Code {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}

// CommentText joins the comment lines for Markdown rendering.
func (b Block) CommentText() string {
	return strings.Join(b.Comment, "\n")
}

// CodeText joins the code lines with newlines.
func (b Block) CodeText() string {
	return strings.Join(b.Code, "\n")
}
