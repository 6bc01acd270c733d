package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// ExamplesDir is the conventional directory of runnable examples in a module.
const ExamplesDir = "examples"

// mainFile is listed first within a multi-file example.
const mainFile = "main.go"

// File is one source file of an example.
type File struct {
	Path   string // filesystem path
	Name   string // base name
	RelDir string // parent directory relative to the manifest, slash-separated
}

// Example is one runnable example: a single examples/<name>.go file or an
// examples/<name>/ directory.
type Example struct {
	Name  string
	Files []File
}

// Examples lists the examples of member in name order. A member without an
// examples directory has none.
func Examples(member Member, filter *Filter) ([]Example, error) {
	if filter == nil {
		filter = DefaultFilter()
	}

	root := filepath.Join(member.Dir, ExamplesDir)
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	relRoot := path.Join(member.RelDir, ExamplesDir)

	var examples []Example
	for _, e := range entries {
		switch {
		case e.IsDir():
			files, err := dirFiles(filepath.Join(root, e.Name()), path.Join(relRoot, e.Name()), filter)
			if err != nil {
				return nil, err
			}
			if len(files) > 0 {
				examples = append(examples, Example{Name: e.Name(), Files: files})
			}
		case e.Type().IsRegular() && filter.Match(e.Name()):
			examples = append(examples, Example{
				Name:  strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
				Files: []File{{Path: filepath.Join(root, e.Name()), Name: e.Name(), RelDir: relRoot}},
			})
		}
	}

	sort.SliceStable(examples, func(i, j int) bool { return examples[i].Name < examples[j].Name })
	return examples, nil
}

// dirFiles lists the matching files directly inside dir, main.go first and
// the rest by name.
func dirFiles(dir, relDir string, filter *Filter) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var files []File
	for _, e := range entries {
		if !e.Type().IsRegular() || !filter.Match(e.Name()) {
			continue
		}
		files = append(files, File{Path: filepath.Join(dir, e.Name()), Name: e.Name(), RelDir: relDir})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if (files[i].Name == mainFile) != (files[j].Name == mainFile) {
			return files[i].Name == mainFile
		}
		return files[i].Name < files[j].Name
	})
	return files, nil
}
