package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds the page wrapper flags.
type documentFlags struct {
	title    string
	noCSS    bool
	noJS     bool
	meta     string
	header   string
	footer   string
	language string
}

// assetFlags holds asset selection flags.
type assetFlags struct {
	assetPath      string
	style          string
	template       string
	highlightStyle string
	noRawHTML      bool
}

// pageFlags holds PDF page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// pdfFlags holds PDF export flags.
type pdfFlags struct {
	enabled bool
	timeout string
	page    pageFlags
}

// renderFlags holds all flags for the root render command.
type renderFlags struct {
	common      commonFlags
	output      string
	fileHeaders bool
	document    documentFlags
	assets      assetFlags
	pdf         pdfFlags
}

// workspaceFlags holds all flags for the workspace command.
type workspaceFlags struct {
	common       commonFlags
	manifestPath string
	outDir       string
	splitPackage bool
	splitExample bool
	include      []string
	exclude      []string
	document     documentFlags
	assets       assetFlags
	pdf          pdfFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addDocumentFlags adds page wrapper flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags, withTitle bool) {
	if withTitle {
		fs.StringVar(&f.title, "title", "", "document title")
	}
	fs.BoolVar(&f.noCSS, "no-css", false, "do not inline the stylesheet")
	fs.BoolVar(&f.noJS, "no-js", false, "do not inline the highlighter scripts")
	fs.StringVar(&f.meta, "meta", "", "file inserted at the end of <head>")
	fs.StringVar(&f.header, "header", "", "file inserted before the blocks (.md is rendered)")
	fs.StringVar(&f.footer, "footer", "", "file inserted after the blocks (.md is rendered)")
	fs.StringVar(&f.language, "language", "", "code language class (default: detected from file name)")
}

// addAssetFlags adds asset selection flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding the embedded assets")
	fs.StringVar(&f.style, "style", "", "stylesheet name")
	fs.StringVar(&f.template, "template", "", "template set name")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for fenced code in comments")
	fs.BoolVar(&f.noRawHTML, "no-raw-html", false, "escape raw HTML in comments")
}

// addPDFFlags adds PDF export flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.BoolVar(&f.enabled, "pdf", false, "also print a PDF next to each HTML output")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g. 30s, 2m)")
	fs.StringVarP(&f.page.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.page.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.page.margin, "margin", 0, "page margin in inches (0-3)")
}

// addWorkspaceFlags adds workspace selection flags to a FlagSet.
func addWorkspaceFlags(fs *flag.FlagSet, f *workspaceFlags) {
	fs.StringVar(&f.manifestPath, "manifest-path", "", "path to go.work or go.mod (default: search upward)")
	fs.StringVarP(&f.outDir, "out-dir", "o", "", "output directory (default: docs)")
	fs.BoolVar(&f.splitPackage, "split-package", false, "one document per module")
	fs.BoolVar(&f.splitExample, "split-example", false, "one document per example")
	fs.StringSliceVar(&f.include, "include", nil, "example file glob to include (repeatable)")
	fs.StringSliceVar(&f.exclude, "exclude", nil, "example file glob to exclude (repeatable)")
}
