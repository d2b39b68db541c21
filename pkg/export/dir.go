package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
)

// Dir writes files below a local directory.
type Dir struct {
	root string

	once    sync.Once
	rootErr error
}

// NewDir creates a Dir exporter rooted at root. The root is validated and
// created on the first export.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the export root.
func (d *Dir) Root() string {
	return d.root
}

// Export writes data to root/path, creating parent directories.
func (d *Dir) Export(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.once.Do(func() { d.rootErr = ensureRoot(d.root) })
	if d.rootErr != nil {
		return d.rootErr
	}

	target := filepath.Join(d.root, filepath.FromSlash(strings.TrimLeft(path, "/")))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("%w: create directory for %s: %w", ErrWriteFailed, path, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}

// ensureRoot checks that root is usable as a directory, creating it when
// it does not exist.
func ensureRoot(root string) error {
	if root == "" {
		return ErrRootPathUndefined
	}

	info, err := os.Stat(root)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrRootPathNotDirectory, root)
		}
		return nil
	case errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%w: parent of %s is not a directory", ErrRootPathNotDirectory, root)
	case !os.IsNotExist(err):
		return fmt.Errorf("stat export root: %w", err)
	}

	// A dangling symlink reports not-exist through Stat but is still there.
	if linfo, lerr := os.Lstat(root); lerr == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		return fmt.Errorf("%w: %s is a broken symlink", ErrRootPathNotDirectory, root)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		if errors.Is(err, syscall.ENOTDIR) {
			return fmt.Errorf("%w: parent of %s is not a directory", ErrRootPathNotDirectory, root)
		}
		return fmt.Errorf("create export root: %w", err)
	}
	return nil
}
