package dadada

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// Comment markers, longest first within each family.
const (
	markerComment    = "//"
	markerDoc        = "///"
	markerBang       = "//!"
	markerSpacedBang = "// !"
)

const utf8BOM = "\uFEFF"

// classifyLine reports whether raw is a comment line and, if so, its kind
// and body with the marker stripped.
func classifyLine(raw string) (kind CommentKind, text string, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, markerComment) {
		return KindAny, "", false
	}

	switch {
	case strings.HasPrefix(trimmed, markerDoc):
		return KindDoc, strings.TrimSpace(trimmed[len(markerDoc):]), true
	case strings.HasPrefix(trimmed, markerBang):
		return KindBang, strings.TrimSpace(trimmed[len(markerBang):]), true
	case strings.HasPrefix(trimmed, markerSpacedBang):
		return KindBang, strings.TrimSpace(trimmed[len(markerSpacedBang):]), true
	default:
		return KindSimple, strings.TrimSpace(trimmed[len(markerComment):]), true
	}
}

// extractState is the scan state carried from one line to the next.
type extractState struct {
	inCode  bool
	kind    CommentKind
	current Block
	hasCode bool // current has received a code line
	blocks  []Block
}

func newExtractState() *extractState {
	return &extractState{current: Block{StartingLine: 1}}
}

// feed consumes one line. lineNo is 1-based.
func (s *extractState) feed(lineNo int, raw string) {
	kind, text, isComment := classifyLine(raw)

	if !isComment {
		s.inCode = true
		s.kind = KindAny
		if !s.hasCode {
			s.current.StartingLine = lineNo
			s.hasCode = true
		}
		s.current.Code = append(s.current.Code, raw)
		return
	}

	switch {
	case s.inCode:
		s.split(lineNo)
	case s.kind != KindAny && kind != s.kind:
		s.split(lineNo)
	}

	s.inCode = false
	s.kind = kind
	s.current.Comment = append(s.current.Comment, text)
}

// split pushes the block under construction and opens a new one at lineNo.
func (s *extractState) split(lineNo int) {
	s.blocks = append(s.blocks, s.current)
	s.current = Block{StartingLine: lineNo}
	s.hasCode = false
}

// finish pushes the open block and returns the extracted sequence.
// The trailing block is kept even when empty so every file yields at least
// one block and line bookkeeping stays deterministic.
func (s *extractState) finish() []Block {
	s.blocks = append(s.blocks, s.current)
	return s.blocks
}

// ExtractLines partitions the lines of one source file into blocks.
func ExtractLines(lines []string) []Block {
	s := newExtractState()
	for i, line := range lines {
		s.feed(i+1, line)
	}
	return s.finish()
}

// ExtractReader reads a source file from r and partitions it into blocks.
// Lines are split on '\n' with a trailing '\r' removed; a leading UTF-8 BOM
// is dropped. Returns ErrDecode for a line that is not valid UTF-8.
func ExtractReader(r io.Reader) ([]Block, error) {
	br := bufio.NewReader(r)
	s := newExtractState()

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: line %d: %v", ErrFileAccess, lineNo, err)
		}
		if line == "" && errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: line %d is not valid UTF-8", ErrDecode, lineNo)
		}

		s.feed(lineNo, line)

		if errors.Is(err, io.EOF) {
			break
		}
	}

	return s.finish(), nil
}

// Extract opens the source file at path and partitions it into blocks.
// Returns ErrFileAccess if the file cannot be opened or read and ErrDecode
// if its content is not valid text. Both errors name the path.
func Extract(path string) ([]Block, error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided input
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	blocks, err := ExtractReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return blocks, nil
}

// ExtractFS is Extract over an fs.FS.
func ExtractFS(fsys fs.FS, name string) ([]Block, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	blocks, err := ExtractReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return blocks, nil
}
