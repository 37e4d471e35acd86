// Package store provides the storage abstraction config writers operate on.
//
// A Store is a minimal read/write/exists interface over named text streams.
// Production code uses OS, which is backed by the real filesystem with
// atomic writes. Tests use Mem, an in-memory map that can be pre-seeded
// with initial content so merge-into-existing-file behavior is testable
// without disk I/O.
package store

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Dave-London/pare/internal/errors"
	"github.com/Dave-London/pare/pkg/fileutil"
)

// Store abstracts reading and writing named text streams.
// No component above this layer may touch storage any other way.
type Store interface {
	// Read returns the content at path. ok is false if path does not exist.
	// A non-nil error indicates an I/O failure, not absence.
	Read(path string) (text string, ok bool, err error)

	// Write replaces the content at path, creating it if necessary.
	Write(path string, text string) error

	// Exists reports whether path is present.
	Exists(path string) (bool, error)
}

// DefaultFilePerm is the permission applied to files created by OS.
const DefaultFilePerm = 0o644

// OS is a Store backed by the real filesystem.
// Writes are atomic (temp file + rename) and create parent directories.
type OS struct{}

// NewOS creates a filesystem-backed store.
func NewOS() *OS {
	return &OS{}
}

// Read returns the file content at path, or ok=false if it does not exist.
func (s *OS) Read(path string) (string, bool, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "reading %s", path)
	}
	return string(data), true, nil
}

// Write atomically replaces the file at path, creating parent directories.
func (s *OS) Write(path string, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating directory %s", dir)
	}
	return errors.Wrapf(fileutil.AtomicWriteFile(path, []byte(text), DefaultFilePerm), "writing %s", path)
}

// Exists reports whether the file at path is present.
func (s *OS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "stat %s", path)
	}
	return true, nil
}

// Mem is an in-memory Store for tests. It is safe for concurrent use.
type Mem struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewMem creates an in-memory store, optionally pre-seeded with initial
// content keyed by path.
func NewMem(seed map[string]string) *Mem {
	files := make(map[string]string, len(seed))
	for path, text := range seed {
		files[path] = text
	}
	return &Mem{files: files}
}

// Read returns the seeded or previously written content at path.
func (s *Mem) Read(path string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.files[path]
	return text, ok, nil
}

// Write replaces the content at path.
func (s *Mem) Write(path string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[path] = text
	return nil
}

// Exists reports whether path has been seeded or written.
func (s *Mem) Exists(path string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.files[path]
	return ok, nil
}

// Paths returns all stored paths in sorted order.
func (s *Mem) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.files))
	for path := range s.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
