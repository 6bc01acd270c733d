// Package dadada renders annotated source files as literate HTML: each
// comment passage is shown beside the code it introduces.
//
// # Quick Start
//
// Extract blocks from a file, then assemble them into a page:
//
//	blocks, err := dadada.Extract("main.go")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	asm, err := dadada.NewAssembler()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opts := dadada.DefaultOptions()
//	opts.Title = "main.go"
//	html, err := asm.Build(blocks, opts)
//
// # Blocks
//
// Extraction is a single forward pass over the lines of one file. A line is
// a comment when its trimmed text starts with "//"; "///" and "//!" (or
// "// !") are distinct kinds. A new block starts when a comment follows code
// or when the comment kind changes. Every other line is code and joins the
// current block, blank lines included: a blank line after comments switches
// the block to code.
//
// # Several Files
//
// Collect extracts several files in order and can prefix each with a
// file-header block:
//
//	blocks, err := dadada.Collect(dadada.Paths("a.go", "b.go"), true)
//
// # Custom Assets
//
// The stylesheet, scripts and page fragments come from an AssetLoader:
//
//	loader, err := dadada.NewAssetLoader("/path/to/assets")
//	asm, err := dadada.NewAssembler(dadada.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── default.css
//	├── scripts/
//	│   └── highlight.js
//	└── templates/
//	    └── default.html
//
// A template set is a text/template file with one define per fragment.
//
// # PDF Export
//
// PDFExporter prints an assembled page with headless Chrome (go-rod), which
// downloads a managed Chromium on first run. For containers and CI, set
// ROD_NO_SANDBOX=1; use ROD_BROWSER_BIN to point at a custom binary.
package dadada
