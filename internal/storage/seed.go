package storage

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// defaultData mirrors the data directory layout: the save template, the game
// database and one file per shipped language.
//
//go:embed defaults
var defaultData embed.FS

// Seed writes every bundled data file that is missing from the data
// directory and returns how many were written. Existing files are left alone.
func (s *Store) Seed() (int, error) {
	written := 0
	err := fs.WalkDir(defaultData, "defaults", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel("defaults", filepath.FromSlash(path))
		if err != nil {
			return err
		}
		target := filepath.Join(s.root, rel)
		if _, err := os.Stat(target); err == nil {
			return nil
		}

		data, err := defaultData.ReadFile(path)
		if err != nil {
			return err
		}
		if err := WriteFileAtomic(target, data); err != nil {
			return err
		}
		s.logger.Debug("seeded data file", "path", target)
		written++
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("storage: seed %s: %w", s.root, err)
	}
	if written > 0 {
		s.logger.Info("seeded data directory", "files", written)
	}
	return written, nil
}
