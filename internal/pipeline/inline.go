package pipeline

import "strings"

// SanitizeStyle escapes sequences that could close a <style> element early.
func SanitizeStyle(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// SanitizeScript escapes sequences that could close a <script> element early.
func SanitizeScript(js string) string {
	return strings.ReplaceAll(js, "</script", `<\/script`)
}

// EscapeCode applies the code-panel escaping policy: only '<' is replaced.
// Code is shown preformatted, so other characters stay literal.
func EscapeCode(code string) string {
	return strings.ReplaceAll(code, "<", "&lt;")
}
