package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"ifile/internal/ports"
)

// Compile-time interface compliance check
var _ ports.FileSystem = (*OsFileSystem)(nil)

// OsFileSystem is the ports.FileSystem backed by the host OS. Every path is
// validated against the private directory before use.
type OsFileSystem struct{}

func ProvideOsFileSystem() *OsFileSystem {
	return &OsFileSystem{}
}

// ExpandPath returns the absolute form of path with "~" replaced by the home
// directory. Symlinks are left in place.
func (f *OsFileSystem) ExpandPath(path string) (string, error) {
	if _, err := validatePath(path); err != nil {
		return "", err
	}
	return absolutePath(path)
}

func (f *OsFileSystem) ReadFile(path string) ([]byte, error) {
	resolved, err := validatePath(path)
	if err != nil {
		return nil, err
	}

	return os.ReadFile(resolved)
}

func (f *OsFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	resolved, err := validatePath(path)
	if err != nil {
		return err
	}

	err = f.EnsureDirExists(resolved)
	if err != nil {
		return fmt.Errorf("failed to ensure directory exists: %w", err)
	}

	if err := os.WriteFile(resolved, content, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (f *OsFileSystem) AppendFile(path string, content []byte, accessMode ports.AccessMode) (err error) {
	resolved, err := validatePath(path)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(resolved, os.O_APPEND|os.O_CREATE|os.O_WRONLY, getOsFileModeForAccessMode(accessMode))
	if err != nil {
		return fmt.Errorf("failed to open file for append: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	if _, err := file.Write(content); err != nil {
		return fmt.Errorf("failed to append to file: %w", err)
	}
	return nil
}

func (f *OsFileSystem) EnsureDirExists(path string) error {
	resolved, err := validatePath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(resolved), getOsFileModeForAccessMode(ports.ReadWriteExecute)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}

// FileExists reports whether any entry is at path. A symlink counts even when its
// target is missing.
func (f *OsFileSystem) FileExists(path string) (bool, error) {
	resolved, err := validateEntryPath(path)
	if err != nil {
		return false, err
	}

	_, err = os.Lstat(resolved)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists: %w", err)
}

// ListFiles returns the names of the regular files directly inside dir, sorted by name.
func (f *OsFileSystem) ListFiles(dir string) ([]string, error) {
	resolved, err := validatePath(dir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Remove deletes the entry at path. A symlink is removed itself, never its target.
func (f *OsFileSystem) Remove(path string) error {
	resolved, err := validateEntryPath(path)
	if err != nil {
		return err
	}

	if err := os.Remove(resolved); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

func (f *OsFileSystem) MkdirAll(path string, accessMode ports.AccessMode) error {
	resolved, err := validatePath(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(resolved, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

func (f *OsFileSystem) RemoveAll(path string) error {
	resolved, err := validatePath(path)
	if err != nil {
		return err
	}

	if err := os.RemoveAll(resolved); err != nil {
		return fmt.Errorf("failed to remove: %w", err)
	}
	return nil
}

func getOsFileModeForAccessMode(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.ReadWrite:
		return 0600
	case ports.ReadWriteExecute:
		return 0700
	case ports.ReadAllWriteOwner:
		return 0644
	default:
		return 0600
	}
}
