package batch

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/arloliu/jsonxl/errs"
	"github.com/arloliu/jsonxl/format"
)

// DefaultFileMode is the permission of newly created output files.
const DefaultFileMode iofs.FileMode = 0o644

// FS is the filesystem the batch drivers read from and write to.
type FS interface {
	// ReadFile returns the contents of path. A missing file yields errs.ErrFileNotFound.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces path with data. Readers never observe a partial file.
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	// ListJSON returns the paths of the JSON documents directly inside dir,
	// sorted by name. Compressed documents (.json.zst, .json.s2, .json.lz4)
	// are included.
	ListJSON(dir string) ([]string, error)
	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir string) error
	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)
}

// OSFS implements FS on the local filesystem.
type OSFS struct{}

var _ FS = OSFS{}

func (OSFS) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pathError(path, err)
	}

	return data, nil
}

// WriteFile writes data to a temporary file in the target directory and
// renames it over path. An existing file keeps its permission bits.
func (OSFS) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrWriteFailed, path, err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("%w: %s: %w", errs.ErrWriteFailed, path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", errs.ErrWriteFailed, path, err)
	}

	return nil
}

func (OSFS) ListJSON(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, pathError(dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", errs.ErrNotADirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pathError(dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !format.IsJSON(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	slices.Sort(paths)

	return paths, nil
}

func (OSFS) MkdirAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %s: %w", errs.ErrWriteFailed, dir, err)
	}

	return nil
}

func (OSFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return info.IsDir(), nil
}

func pathError(path string, err error) error {
	if errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("%w: %s", errs.ErrFileNotFound, path)
	}

	return fmt.Errorf("%s: %w", path, err)
}
