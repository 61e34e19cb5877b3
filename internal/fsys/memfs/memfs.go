// Package memfs provides an in-memory fsys.FileSystem for tests.
package memfs

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// FileSystem keeps files in an fstest.MapFS. Paths are cleaned and stored
// without a leading slash, so "/a/b" and "a/b" name the same file.
type FileSystem struct {
	mu          sync.RWMutex
	files       fstest.MapFS
	modTime     time.Time
	readErrors  map[string]error
	writeErrors map[string]error
}

func New() *FileSystem {
	return &FileSystem{
		files:       make(fstest.MapFS),
		modTime:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		readErrors:  make(map[string]error),
		writeErrors: make(map[string]error),
	}
}

// AddFile stores content at p.
func (m *FileSystem) AddFile(p string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[clean(p)] = &fstest.MapFile{
		Data:    append([]byte(nil), content...),
		Mode:    0644,
		ModTime: m.modTime,
	}
}

// FailReads makes every read of p return err.
func (m *FileSystem) FailReads(p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErrors[clean(p)] = err
}

// FailWrites makes every write to p return err.
func (m *FileSystem) FailWrites(p string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErrors[clean(p)] = err
}

// Content returns the stored bytes of p.
func (m *FileSystem) Content(p string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[clean(p)]
	if !ok {
		return nil, false
	}
	return f.Data, true
}

// Paths lists all stored files in sorted order.
func (m *FileSystem) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (m *FileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	name = clean(name)
	if err := m.readErrors[name]; err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return fs.ReadFile(m.files, name)
}

func (m *FileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = clean(name)
	if err := m.writeErrors[name]; err != nil {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	m.files[name] = &fstest.MapFile{
		Data:    append([]byte(nil), data...),
		Mode:    perm,
		ModTime: m.modTime,
	}
	return nil
}

func (m *FileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, clean(name))
}

// Exists reports whether p is a stored file or a directory holding one.
func (m *FileSystem) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p = clean(p)
	if p == "." {
		return len(m.files) > 0
	}
	if _, ok := m.files[p]; ok {
		return true
	}
	prefix := p + "/"
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (m *FileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadDir(m.files, clean(name))
}

func (m *FileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(clean(name))
}

func clean(p string) string {
	cleaned := path.Clean("/" + p)
	if cleaned == "/" {
		return "."
	}
	return strings.TrimPrefix(cleaned, "/")
}
