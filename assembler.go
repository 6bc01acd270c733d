package dadada

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-dadada/internal/assets"
	"github.com/alnah/go-dadada/internal/pipeline"
)

// Assembler turns extracted blocks into one HTML document. Assets and the
// fragment set are loaded once by NewAssembler; Build and Write may then be
// called any number of times.
type Assembler struct {
	cfg      assemblerConfig
	loader   AssetLoader
	renderer pipeline.Renderer

	fragments *fragmentSet
	style     string   // sanitized stylesheet payload
	scripts   []string // sanitized script payloads, in emission order
}

type assemblerConfig struct {
	styleName      string
	templateSet    string
	highlightStyle string
	rawHTML        bool
	scriptNames    []string
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithAssetLoader sets the loader for the stylesheet, scripts and fragments.
// Defaults to the embedded assets.
func WithAssetLoader(l AssetLoader) AssemblerOption {
	return func(a *Assembler) { a.loader = l }
}

// WithRenderer replaces the Markdown renderer used for comments and
// Markdown includes. WithRawHTML and WithHighlightStyle then have no effect.
func WithRenderer(r pipeline.Renderer) AssemblerOption {
	return func(a *Assembler) { a.renderer = r }
}

// WithStyle selects the stylesheet by name.
func WithStyle(name string) AssemblerOption {
	return func(a *Assembler) { a.cfg.styleName = name }
}

// WithTemplateSet selects the fragment set by name.
func WithTemplateSet(name string) AssemblerOption {
	return func(a *Assembler) { a.cfg.templateSet = name }
}

// WithHighlightStyle selects the chroma style used for fenced code in comments.
func WithHighlightStyle(name string) AssemblerOption {
	return func(a *Assembler) { a.cfg.highlightStyle = name }
}

// WithRawHTML controls whether raw HTML in comments passes through.
// Enabled by default.
func WithRawHTML(enabled bool) AssemblerOption {
	return func(a *Assembler) { a.cfg.rawHTML = enabled }
}

// NewAssembler loads the assets and fragment set and returns a ready Assembler.
func NewAssembler(opts ...AssemblerOption) (*Assembler, error) {
	a := &Assembler{
		cfg: assemblerConfig{
			styleName:      DefaultStyle,
			templateSet:    DefaultTemplateSet,
			highlightStyle: pipeline.DefaultHighlightStyle,
			rawHTML:        true,
			scriptNames:    assets.DefaultScriptNames,
		},
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.loader == nil {
		loader, err := NewAssetLoader("")
		if err != nil {
			return nil, err
		}
		a.loader = loader
	}
	if a.renderer == nil {
		a.renderer = pipeline.NewGoldmarkRenderer(
			pipeline.WithRawHTML(a.cfg.rawHTML),
			pipeline.WithHighlightStyle(a.cfg.highlightStyle),
		)
	}

	if err := a.loadAssets(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Assembler) loadAssets() error {
	ts, err := a.loader.LoadTemplateSet(a.cfg.templateSet)
	if err != nil {
		return err
	}
	if a.fragments, err = parseFragments(ts); err != nil {
		return err
	}

	layout, err := a.loader.LoadStyle(a.cfg.styleName)
	if err != nil {
		return err
	}
	chroma, err := pipeline.HighlightCSS(a.cfg.highlightStyle)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStyleNotFound, err)
	}
	a.style = pipeline.SanitizeStyle(strings.TrimRight(layout, "\n") + "\n" + chroma)

	a.scripts = make([]string, 0, len(a.cfg.scriptNames))
	for _, name := range a.cfg.scriptNames {
		js, err := a.loader.LoadScript(name)
		if err != nil {
			return err
		}
		a.scripts = append(a.scripts, pipeline.SanitizeScript(js))
	}
	return nil
}

// Renderer returns the Markdown renderer in use, e.g. for LoadInclude.
func (a *Assembler) Renderer() pipeline.Renderer {
	return a.renderer
}

// Build renders blocks into a complete HTML document.
func (a *Assembler) Build(blocks []Block, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := a.Write(&buf, blocks, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders blocks into w. The document is assembled in memory first so
// nothing reaches w when rendering or include loading fails.
func (a *Assembler) Write(w io.Writer, blocks []Block, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	incs, err := loadIncludes(opts, a.renderer)
	if err != nil {
		return err
	}

	b := &docBuilder{set: a.fragments, renderer: a.renderer}

	b.fragment(fragHead, headData{Title: opts.Title})
	if opts.WithCSS {
		b.fragment(fragStyle, a.style)
	}
	if opts.WithJS {
		for _, js := range a.scripts {
			b.fragment(fragScript, js)
		}
	}
	b.include(incs.meta)
	b.fragment(fragBody, nil)
	b.include(incs.header)
	b.fragment(fragMain, nil)

	for i, block := range blocks {
		b.fragment(fragBlock, blockData{Index: i, Header: block.Header})
		b.markdown(block.CommentText())
		if block.HasCode() {
			b.code(block, opts.Language)
		}
		b.fragment(fragEndBlock, nil)
	}

	b.fragment(fragEndMain, nil)
	b.include(incs.footer)
	b.fragment(fragFoot, nil)

	if b.err != nil {
		return b.err
	}
	if _, err := w.Write(b.buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputAccess, err)
	}
	return nil
}
