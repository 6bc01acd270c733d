package dadada

import (
	"io/fs"
	"path/filepath"
)

// Source names one input file. FS, when set, is read instead of the OS
// filesystem. Title and Dir label the file-header block and default to the
// base name and parent directory of Path.
type Source struct {
	Path  string
	FS    fs.FS
	Title string
	Dir   string
}

func (s Source) header() Block {
	title, dir := s.Title, s.Dir
	if title == "" {
		title = filepath.Base(s.Path)
	}
	if dir == "" {
		dir = filepath.Dir(s.Path)
	}
	return NewFileBlock(title, dir)
}

// Collect extracts every source in order and concatenates the blocks.
// With headers, each file's blocks are preceded by its file-header block.
// Stops at the first failing source.
func Collect(sources []Source, headers bool) ([]Block, error) {
	var all []Block
	for _, src := range sources {
		blocks, err := src.extract()
		if err != nil {
			return nil, err
		}
		if headers {
			all = append(all, src.header())
		}
		all = append(all, blocks...)
	}
	return all, nil
}

func (s Source) extract() ([]Block, error) {
	if s.FS != nil {
		return ExtractFS(s.FS, s.Path)
	}
	return Extract(s.Path)
}

// Paths wraps plain file paths as Sources.
func Paths(paths ...string) []Source {
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = Source{Path: p}
	}
	return sources
}
