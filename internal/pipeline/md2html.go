package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the Chroma style used for fenced code in comments.
const DefaultHighlightStyle = "github"

// Renderer turns Markdown text into an HTML fragment.
type Renderer interface {
	Render(markdown string) (string, error)
}

// RendererOption configures a GoldmarkRenderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	rawHTML        bool
	highlightStyle string
}

// WithRawHTML lets raw HTML in comments and Markdown includes pass through.
func WithRawHTML(enabled bool) RendererOption {
	return func(c *rendererConfig) {
		c.rawHTML = enabled
	}
}

// WithHighlightStyle sets the Chroma style name for fenced code blocks.
func WithHighlightStyle(name string) RendererOption {
	return func(c *rendererConfig) {
		if name != "" {
			c.highlightStyle = name
		}
	}
}

// GoldmarkRenderer renders Markdown using goldmark (pure Go).
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with GFM extensions and
// class-based syntax highlighting for fenced code.
func NewGoldmarkRenderer(opts ...RendererOption) *GoldmarkRenderer {
	cfg := rendererConfig{highlightStyle: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(&cfg)
	}

	rendererOpts := []goldmark.Option{}
	htmlOpts := []renderer.Option{html.WithXHTML()}
	if cfg.rawHTML {
		htmlOpts = append(htmlOpts, html.WithUnsafe())
	}
	rendererOpts = append(rendererOpts,
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithStyle(cfg.highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // styled by HighlightCSS
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(htmlOpts...),
	)

	return &GoldmarkRenderer{md: goldmark.New(rendererOpts...)}
}

// Render converts Markdown to an HTML fragment. Empty input renders to "".
func (r *GoldmarkRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(Preprocess(markdown)), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

// Compile-time interface check.
var _ Renderer = (*GoldmarkRenderer)(nil)
