package manifest

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// Locator yields the manifest paths found under root, calling fn once per
// path in discovery order. Returning an error from fn stops the walk and
// that error is returned from Locate.
type Locator interface {
	Locate(ctx context.Context, root string, fn func(path string) error) error
}

// WalkLocator finds manifests with a depth-first, lexically ordered
// directory walk. Symbolic links to directories are not followed; a
// symbolic link named like a manifest counts if it resolves to a regular file.
type WalkLocator struct {
	FileName string               // Manifest basename (default: Cargo.toml)
	Exclude  []string             // Directory basenames not descended into
	Logger   func(string, ...any) // Receives skipped walk entries (optional)
}

// NewWalkLocator returns a locator for Cargo.toml that skips the named
// directories.
func NewWalkLocator(exclude ...string) *WalkLocator {
	return &WalkLocator{FileName: FileName, Exclude: exclude}
}

// Locate implements [Locator]. Entries that cannot be read are logged and
// skipped; a root that does not exist yields no paths and no error.
func (l *WalkLocator) Locate(ctx context.Context, root string, fn func(path string) error) error {
	name := l.FileName
	if name == "" {
		name = FileName
	}
	skip := make(map[string]bool, len(l.Exclude))
	for _, dir := range l.Exclude {
		skip[dir] = true
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			l.logf("walk %s: %v", path, err)
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != name || !isRegularFile(path, d) {
			return nil
		}
		return fn(path)
	})
}

func (l *WalkLocator) logf(format string, args ...any) {
	if l.Logger != nil {
		l.Logger(format, args...)
	}
}

func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
