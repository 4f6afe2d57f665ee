package store

import (
	"os"
	"path/filepath"
)

// FS archives uploaded syllabi on disk, one directory per job.
type FS struct{ Root string }

func New(root string) (*FS, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{Root: root}, nil
}

func (s *FS) JobDir(id string) string { return filepath.Join(s.Root, id) }

// Archive writes the original PDF under a fresh job directory and returns
// the stored path.
func (s *FS) Archive(id, filename string, data []byte) (string, error) {
	dir := s.JobDir(id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	p := filepath.Join(dir, filepath.Base(filename))
	return p, os.WriteFile(p, data, 0o644)
}
