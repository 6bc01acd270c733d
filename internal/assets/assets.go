package assets

// Names of the built-in assets.
const (
	DefaultStyleName       = "default"
	DefaultTemplateSetName = "default"
)

// DefaultScriptNames lists the built-in script payloads in inlining order:
// the highlighter, its language grammars, then the line-number helper.
var DefaultScriptNames = []string{"highlight", "grammar", "line-numbers"}

// TemplateSet holds the source of a page fragment set.
type TemplateSet struct {
	Name   string // Identifier (name or path)
	Source string // text/template source with one define per fragment
}

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a stylesheet by name using the embedded loader.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadScript loads a script by name using the embedded loader.
func LoadScript(name string) (string, error) {
	return defaultLoader.LoadScript(name)
}

// LoadTemplateSet loads a fragment set by name using the embedded loader.
func LoadTemplateSet(name string) (*TemplateSet, error) {
	return defaultLoader.LoadTemplateSet(name)
}
