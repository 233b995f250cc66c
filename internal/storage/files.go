package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/ca-racing/internal/core"
)

// ReadFile reads a data file. A missing file is reported as core.ErrNotFound.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("storage: %s: %w", path, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w: %w", path, core.ErrIO, err)
	}
	return data, nil
}

// WriteFileAtomic replaces path with data. The content is written to a
// temporary file in the same directory and renamed over the target, so
// readers see either the old or the new file, never a partial one.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w: %w", dir, core.ErrIO, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: write %s: %w: %w", path, core.ErrIO, err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: write %s: %w: %w", path, core.ErrIO, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: write %s: %w: %w", path, core.ErrIO, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: write %s: %w: %w", path, core.ErrIO, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: write %s: %w: %w", path, core.ErrIO, err)
	}
	return nil
}

// isReadableFile reports whether path is a regular file that can be opened.
func isReadableFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && info.Mode().IsRegular()
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// OpenLogFile opens dataDir/name for appending, creating the directory if
// needed.
func OpenLogFile(dataDir, name string) (*os.File, error) {
	root, err := expandHome(dataDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w: %w", root, core.ErrIO, err)
	}
	path := filepath.Join(root, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w: %w", path, core.ErrIO, err)
	}
	return f, nil
}
