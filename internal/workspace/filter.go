package workspace

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Default file patterns.
var (
	DefaultInclude = []string{"*.go"}
	DefaultExclude = []string{"*_test.go"}
)

// Filter selects example files by base name. A file is kept when it matches
// at least one include pattern and no exclude pattern.
type Filter struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewFilter compiles the patterns. Empty include means DefaultInclude; a nil
// exclude means DefaultExclude, while an empty non-nil exclude disables it.
func NewFilter(include, exclude []string) (*Filter, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}
	if exclude == nil {
		exclude = DefaultExclude
	}

	inc, err := compileAll(include)
	if err != nil {
		return nil, err
	}
	exc, err := compileAll(exclude)
	if err != nil {
		return nil, err
	}
	return &Filter{include: inc, exclude: exc}, nil
}

// DefaultFilter keeps Go sources and drops tests.
func DefaultFilter() *Filter {
	f, err := NewFilter(nil, nil)
	if err != nil {
		panic(err) // default patterns are constant
	}
	return f
}

// Match reports whether a file with the given base name is kept.
func (f *Filter) Match(name string) bool {
	for _, g := range f.exclude {
		if g.Match(name) {
			return false
		}
	}
	for _, g := range f.include {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func compileAll(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}
