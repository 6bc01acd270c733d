// Package workspace enumerates the examples of a Go module or go.work
// workspace and plans one output document per group of examples.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// Manifest file names, in search preference order.
const (
	WorkFileName = "go.work"
	ModFileName  = "go.mod"
)

// Sentinel errors for workspace discovery.
var (
	ErrManifestNotFound = errors.New("no go.work or go.mod found")
	ErrManifestParse    = errors.New("failed to parse manifest")
	ErrNoModulePath     = errors.New("go.mod has no module directive")
)

// Member is one module of the workspace.
type Member struct {
	Name       string // last element of the module path, major version suffix dropped
	ModulePath string
	Dir        string // absolute module root
	RelDir     string // module root relative to the manifest directory, slash-separated
}

// Manifest is a parsed go.work or go.mod.
type Manifest struct {
	Path    string // absolute manifest file path
	Dir     string // directory holding the manifest
	Members []Member
}

// Discover loads the manifest at manifestPath. An empty path searches the
// working directory and its parents, preferring go.work over go.mod at each
// level. manifestPath may also name a directory.
func Discover(manifestPath string) (*Manifest, error) {
	resolved, err := resolveManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	m := &Manifest{Path: resolved, Dir: filepath.Dir(resolved)}
	if filepath.Base(resolved) == WorkFileName {
		err = m.loadWork()
	} else {
		err = m.loadMod()
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func resolveManifest(manifestPath string) (string, error) {
	if manifestPath != "" {
		abs, err := filepath.Abs(manifestPath)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrManifestNotFound, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrManifestNotFound, err)
		}
		if !info.IsDir() {
			return abs, nil
		}
		if found, ok := manifestIn(abs); ok {
			return found, nil
		}
		return "", fmt.Errorf("%w: in %s", ErrManifestNotFound, abs)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrManifestNotFound, err)
	}
	for dir := wd; ; {
		if found, ok := manifestIn(dir); ok {
			return found, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: searched upward from %s", ErrManifestNotFound, wd)
		}
		dir = parent
	}
}

func manifestIn(dir string) (string, bool) {
	for _, name := range []string{WorkFileName, ModFileName} {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

func (m *Manifest) loadWork() error {
	data, err := os.ReadFile(m.Path) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifestNotFound, err)
	}
	wf, err := modfile.ParseWork(m.Path, data, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	for _, use := range wf.Use {
		dir := use.Path
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(m.Dir, filepath.FromSlash(dir))
		}
		member, err := m.memberAt(dir)
		if err != nil {
			return err
		}
		m.Members = append(m.Members, member)
	}
	return nil
}

func (m *Manifest) loadMod() error {
	member, err := m.memberAt(m.Dir)
	if err != nil {
		return err
	}
	m.Members = []Member{member}
	return nil
}

// memberAt reads dir/go.mod and builds the Member rooted there.
func (m *Manifest) memberAt(dir string) (Member, error) {
	modPath := filepath.Join(dir, ModFileName)
	data, err := os.ReadFile(modPath) // #nosec G304 -- path derived from manifest
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Member{}, fmt.Errorf("%w: %s", ErrManifestNotFound, modPath)
		}
		return Member{}, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return Member{}, fmt.Errorf("%w: %s", ErrNoModulePath, modPath)
	}

	rel, err := filepath.Rel(m.Dir, dir)
	if err != nil {
		rel = dir
	}

	return Member{
		Name:       memberName(modulePath),
		ModulePath: modulePath,
		Dir:        dir,
		RelDir:     filepath.ToSlash(rel),
	}, nil
}

// memberName is the last element of the module path, ignoring a /vN suffix.
func memberName(modulePath string) string {
	if prefix, _, ok := module.SplitPathVersion(modulePath); ok && prefix != "" {
		return path.Base(prefix)
	}
	return path.Base(modulePath)
}
