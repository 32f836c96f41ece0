package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ifile/internal/ports"
)

// Compile-time interface compliance check
var _ ports.FileSystem = (*TestFileSystem)(nil)

// TestFileSystem provides real file system operations sandboxed within a temporary directory.
// All paths are resolved relative to the sandbox directory, and "~" maps to the sandbox itself.
// For unit tests that mock file system calls, use MockFileSystem instead.
type TestFileSystem struct {
	baseDir string
}

// NewTestFileSystem creates a sandboxed file system within a temporary directory.
// The directory is automatically cleaned up when the test completes.
func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{baseDir: t.TempDir()}
}

// BaseDir returns the sandbox base directory path.
func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

// Resolve returns the real location of path inside the sandbox. Paths already inside
// the sandbox are returned unchanged.
func (f *TestFileSystem) Resolve(path string) string {
	cleanPath := filepath.Clean(path)
	if cleanPath == "~" {
		return f.baseDir
	}
	if cleanPath == f.baseDir || strings.HasPrefix(cleanPath, f.baseDir+string(filepath.Separator)) {
		return cleanPath
	}
	cleanPath = strings.TrimPrefix(cleanPath, "~"+string(filepath.Separator))
	if filepath.IsAbs(cleanPath) {
		cleanPath = strings.TrimPrefix(cleanPath, filepath.VolumeName(cleanPath))
		cleanPath = strings.TrimLeft(cleanPath, string(filepath.Separator))
	}
	return filepath.Join(f.baseDir, cleanPath)
}

func (f *TestFileSystem) ExpandPath(path string) (string, error) {
	return f.Resolve(path), nil
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(f.Resolve(path))
}

func (f *TestFileSystem) WriteFile(path string, content []byte, _ ports.AccessMode) error {
	resolved := f.Resolve(path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0700); err != nil {
		return err
	}
	return os.WriteFile(resolved, content, 0600)
}

func (f *TestFileSystem) AppendFile(path string, content []byte, _ ports.AccessMode) (err error) {
	file, err := os.OpenFile(f.Resolve(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	_, err = file.Write(content)
	return err
}

func (f *TestFileSystem) EnsureDirExists(path string) error {
	return os.MkdirAll(filepath.Dir(f.Resolve(path)), 0700)
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Lstat(f.Resolve(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *TestFileSystem) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(f.Resolve(dir))
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func (f *TestFileSystem) Remove(path string) error {
	return os.Remove(f.Resolve(path))
}

func (f *TestFileSystem) MkdirAll(path string, _ ports.AccessMode) error {
	return os.MkdirAll(f.Resolve(path), 0700)
}

func (f *TestFileSystem) RemoveAll(path string) error {
	return os.RemoveAll(f.Resolve(path))
}
