// Package pipeline implements the text stages between extracted blocks and
// the assembled page:
//   - Markdown preprocessing (line normalization, blank-line compression)
//   - Markdown to HTML rendering via Goldmark, with Chroma highlighting for
//     fenced code inside comments
//   - language detection for code panels
//   - sanitizing stylesheet and script payloads for inlining
//
// The Assembler in the root dadada package owns page structure; this package
// only turns text into HTML fragments.
package pipeline
