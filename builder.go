package dadada

import (
	"bytes"

	"github.com/alnah/go-dadada/internal/pipeline"
)

// docBuilder appends typed fragments to one buffer. The first error sticks
// and turns later appends into no-ops.
type docBuilder struct {
	buf      bytes.Buffer
	set      *fragmentSet
	renderer pipeline.Renderer
	err      error
}

// fragment appends a named template fragment.
func (b *docBuilder) fragment(name string, data any) {
	if b.err != nil {
		return
	}
	b.err = b.set.execute(&b.buf, name, data)
}

// markdown renders comment text and wraps it in the comment fragment.
func (b *docBuilder) markdown(text string) {
	if b.err != nil {
		return
	}
	html, err := b.renderer.Render(text)
	if err != nil {
		b.err = err
		return
	}
	b.fragment(fragComment, html)
}

// code appends the code panel of block with only '<' escaped.
func (b *docBuilder) code(block Block, language string) {
	b.fragment(fragCode, codeData{
		Code:         pipeline.EscapeCode(block.CodeText()),
		StartingLine: block.StartingLine,
		Language:     language,
	})
}

// include appends a resolved include; nil is skipped.
func (b *docBuilder) include(inc *Include) {
	if b.err != nil || inc == nil {
		return
	}
	b.buf.WriteString(inc.HTML)
	if inc.HTML != "" && inc.HTML[len(inc.HTML)-1] != '\n' {
		b.buf.WriteByte('\n')
	}
}
