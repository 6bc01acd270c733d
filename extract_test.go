package dadada

// Notes:
// - Partition completeness is checked against a fixture that mixes every
//   comment kind, blank lines and indented code; the reconstruction compares
//   classified lines, since comment markers are stripped on extraction.
// - The read-error branch of ExtractReader (non-EOF error from the reader) is
//   exercised with a failing io.Reader.

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/liamg/memoryfs"
)

// ---------------------------------------------------------------------------
// TestClassifyLine - Comment marker recognition
// ---------------------------------------------------------------------------

func TestClassifyLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		wantKind  CommentKind
		wantText  string
		isComment bool
	}{
		{"simple", "// hello", KindSimple, "hello", true},
		{"simple no space", "//hello", KindSimple, "hello", true},
		{"indented simple", "    // nested", KindSimple, "nested", true},
		{"doc", "/// Title", KindDoc, "Title", true},
		{"bang", "//! Crate docs", KindBang, "Crate docs", true},
		{"spaced bang", "// ! Module docs", KindBang, "Module docs", true},
		{"four slashes is doc", "//// x", KindDoc, "/ x", true},
		{"empty comment", "//", KindSimple, "", true},
		{"code", "fn main() {}", KindAny, "", false},
		{"trailing comment is code", "x := 1 // note", KindAny, "", false},
		{"block comment is code", "/* not handled */", KindAny, "", false},
		{"blank", "   ", KindAny, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kind, text, ok := classifyLine(tt.line)
			if ok != tt.isComment {
				t.Fatalf("classifyLine(%q) comment = %v, want %v", tt.line, ok, tt.isComment)
			}
			if kind != tt.wantKind {
				t.Errorf("classifyLine(%q) kind = %v, want %v", tt.line, kind, tt.wantKind)
			}
			if text != tt.wantText {
				t.Errorf("classifyLine(%q) text = %q, want %q", tt.line, text, tt.wantText)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExtractLines - Block boundaries
// ---------------------------------------------------------------------------

func TestExtractLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "doc comment then code is one block",
			input: "/// Title\npub fn f() {}",
			want: []Block{
				{Comment: []string{"Title"}, Code: []string{"pub fn f() {}"}, StartingLine: 2},
			},
		},
		{
			name:  "blank line after comments is code, comment after code splits",
			input: "// a\n// b\n\nfn g() {}\n// c",
			want: []Block{
				{Comment: []string{"a", "b"}, Code: []string{"", "fn g() {}"}, StartingLine: 3},
				{Comment: []string{"c"}, StartingLine: 5},
			},
		},
		{
			name:  "blank line between comments separates them",
			input: "// a\n\n// b",
			want: []Block{
				{Comment: []string{"a"}, Code: []string{""}, StartingLine: 2},
				{Comment: []string{"b"}, StartingLine: 3},
			},
		},
		{
			name:  "comment-only block keeps its creation line",
			input: "x()\n// one\n/// two",
			want: []Block{
				{Code: []string{"x()"}, StartingLine: 1},
				{Comment: []string{"one"}, StartingLine: 2},
				{Comment: []string{"two"}, StartingLine: 3},
			},
		},
		{
			name:  "code then comment starts a new block",
			input: "x := 1\n// note\ny := 2",
			want: []Block{
				{Code: []string{"x := 1"}, StartingLine: 1},
				{Comment: []string{"note"}, Code: []string{"y := 2"}, StartingLine: 3},
			},
		},
		{
			name:  "comment kind change splits without code",
			input: "// plain\n/// doc",
			want: []Block{
				{Comment: []string{"plain"}, StartingLine: 1},
				{Comment: []string{"doc"}, StartingLine: 2},
			},
		},
		{
			name:  "spaced bang and bang are the same kind",
			input: "//! one\n// ! two",
			want: []Block{
				{Comment: []string{"one", "two"}, StartingLine: 1},
			},
		},
		{
			name:  "code accumulates until the next comment",
			input: "// intro\na()\nb()\n\nc()",
			want: []Block{
				{Comment: []string{"intro"}, Code: []string{"a()", "b()", "", "c()"}, StartingLine: 2},
			},
		},
		{
			name:  "blank lines in code mode are code",
			input: "a()\n\n// next",
			want: []Block{
				{Code: []string{"a()", ""}, StartingLine: 1},
				{Comment: []string{"next"}, StartingLine: 3},
			},
		},
		{
			name:  "indented code kept verbatim",
			input: "// body\n\treturn nil  ",
			want: []Block{
				{Comment: []string{"body"}, Code: []string{"\treturn nil  "}, StartingLine: 2},
			},
		},
		{
			name:  "kind tracking resets after code",
			input: "/// doc\nf()\n// plain",
			want: []Block{
				{Comment: []string{"doc"}, Code: []string{"f()"}, StartingLine: 2},
				{Comment: []string{"plain"}, StartingLine: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractLines(strings.Split(tt.input, "\n"))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractLines() =\n%#v\nwant\n%#v", got, tt.want)
			}
		})
	}
}

func TestExtractLines_EmptyInput(t *testing.T) {
	t.Parallel()

	got := ExtractLines(nil)
	if len(got) != 1 {
		t.Fatalf("ExtractLines(nil) returned %d blocks, want the single trailing block", len(got))
	}
	if got[0].HasCode() || len(got[0].Comment) != 0 {
		t.Errorf("trailing block = %#v, want empty", got[0])
	}
	if got[0].StartingLine != 1 {
		t.Errorf("StartingLine = %d, want 1", got[0].StartingLine)
	}
}

// ---------------------------------------------------------------------------
// TestExtractLines_PartitionCompleteness - Every line lands in one block
// ---------------------------------------------------------------------------

func TestExtractLines_PartitionCompleteness(t *testing.T) {
	t.Parallel()

	lines := []string{
		"//! Package docs",
		"// ! more package docs",
		"",
		"package demo",
		"",
		"/// Doc for F",
		"// plain remark",
		"func F() {",
		"\t// inner comment",
		"\treturn",
		"}",
		"",
		"// trailing",
	}

	blocks := ExtractLines(lines)

	// Rebuild the file in block order. Within a block comments precede code.
	var rebuilt []string
	for _, b := range blocks {
		rebuilt = append(rebuilt, b.Comment...)
		rebuilt = append(rebuilt, b.Code...)
	}

	var want []string
	for _, l := range lines {
		if _, text, ok := classifyLine(l); ok {
			want = append(want, text)
			continue
		}
		want = append(want, l)
	}

	if !reflect.DeepEqual(rebuilt, want) {
		t.Errorf("partition mismatch:\n got %q\nwant %q", rebuilt, want)
	}
}

// ---------------------------------------------------------------------------
// TestExtractReader - Line splitting and decoding
// ---------------------------------------------------------------------------

func TestExtractReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Block
	}{
		{
			name:  "CRLF line endings",
			input: "// a\r\nx()\r\n",
			want:  []Block{{Comment: []string{"a"}, Code: []string{"x()"}, StartingLine: 2}},
		},
		{
			name:  "no trailing newline",
			input: "// a\nx()",
			want:  []Block{{Comment: []string{"a"}, Code: []string{"x()"}, StartingLine: 2}},
		},
		{
			name:  "trailing newline adds no phantom line",
			input: "x()\n",
			want:  []Block{{Code: []string{"x()"}, StartingLine: 1}},
		},
		{
			name:  "byte order mark removed",
			input: "\uFEFF// a\n",
			want:  []Block{{Comment: []string{"a"}, StartingLine: 1}},
		},
		{
			name:  "non-ASCII text kept",
			input: "// héllo 🦀\nlet s = \"ünï\";\n",
			want:  []Block{{Comment: []string{"héllo 🦀"}, Code: []string{`let s = "ünï";`}, StartingLine: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractReader(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ExtractReader() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractReader() =\n%#v\nwant\n%#v", got, tt.want)
			}
		})
	}
}

func TestExtractReader_InvalidUTF8(t *testing.T) {
	t.Parallel()

	_, err := ExtractReader(strings.NewReader("// ok\nbad \xff\xfe line\n"))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("ExtractReader() error = %v, want ErrDecode", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name line 2", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestExtractReader_ReadError(t *testing.T) {
	t.Parallel()

	_, err := ExtractReader(failingReader{})
	if !errors.Is(err, ErrFileAccess) {
		t.Errorf("ExtractReader() error = %v, want ErrFileAccess", err)
	}
}

// ---------------------------------------------------------------------------
// TestExtract - Files on disk and in fs.FS
// ---------------------------------------------------------------------------

func TestExtract(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "main.go")
	if err := os.WriteFile(path, []byte("/// Title\npub fn f() {}\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	blocks, err := Extract(path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("Extract() returned %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if !reflect.DeepEqual(b.Comment, []string{"Title"}) || !reflect.DeepEqual(b.Code, []string{"pub fn f() {}"}) {
		t.Errorf("block = %#v", b)
	}
	if !b.HasCode() {
		t.Error("HasCode() = false, want true")
	}
}

func TestExtract_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.go")
	_, err := Extract(path)

	if !errors.Is(err, ErrFileAccess) {
		t.Errorf("error = %v, want ErrFileAccess", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist in chain", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the path", err)
	}
	if !strings.Contains(err.Error(), "no such file or directory") {
		t.Errorf("error %q should carry the OS message", err)
	}
}

func TestExtract_DecodeErrorNamesPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bin.go")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, '\n'}, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Extract(path)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("error = %v, want ErrDecode", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the path", err)
	}
}

func TestExtractFS(t *testing.T) {
	t.Parallel()

	mfs := memoryfs.New()
	if err := mfs.MkdirAll("examples/hello", 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := mfs.WriteFile("examples/hello/main.go", []byte("// Say hi.\nfunc main() {}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	blocks, err := ExtractFS(mfs, "examples/hello/main.go")
	if err != nil {
		t.Fatalf("ExtractFS() error = %v", err)
	}
	want := []Block{{Comment: []string{"Say hi."}, Code: []string{"func main() {}"}, StartingLine: 2}}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("ExtractFS() = %#v, want %#v", blocks, want)
	}

	_, err = ExtractFS(mfs, "examples/missing.go")
	if !errors.Is(err, ErrFileAccess) {
		t.Errorf("ExtractFS(missing) error = %v, want ErrFileAccess", err)
	}
}
