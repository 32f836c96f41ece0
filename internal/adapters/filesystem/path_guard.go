package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	privateDirName = ".ifile"
	configFileName = ".ifile-config.yaml"
)

// ErrAccessDenied is returned for any path outside the private directory and the config file.
var ErrAccessDenied = errors.New("access denied")

// validatePath expands and resolves path, then checks that it stays within ~/.ifile/ or
// points at ~/.ifile-config.yaml. Symlinks are resolved so a link cannot lead outside.
func validatePath(path string) (string, error) {
	absolute, err := absolutePath(path)
	if err != nil {
		return "", err
	}
	resolved, err := resolveSymlinks(absolute)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrAccessDenied, path, err)
	}
	return confine(path, resolved)
}

// validateEntryPath is validatePath for operations on the entry itself. When the last
// segment is a symlink only its parent is resolved, so the result names the link. A
// live link must still point inside the allowed paths; a dangling one is accepted.
func validateEntryPath(path string) (string, error) {
	absolute, err := absolutePath(path)
	if err != nil {
		return "", err
	}
	info, err := os.Lstat(absolute)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return validatePath(path)
	}
	if _, err := os.Stat(absolute); err == nil {
		if _, err := validatePath(path); err != nil {
			return "", err
		}
	}

	parent, err := resolveSymlinks(filepath.Dir(absolute))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrAccessDenied, path, err)
	}
	return confine(path, filepath.Join(parent, filepath.Base(absolute)))
}

func absolutePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrAccessDenied)
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", err
	}
	absolute, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve %s: %v", ErrAccessDenied, path, err)
	}
	return absolute, nil
}

// confine returns resolved if it is the private directory, lies below it, or is the
// config file.
func confine(path string, resolved string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	privateDir, err := resolveSymlinks(filepath.Join(home, privateDirName))
	if err != nil {
		return "", fmt.Errorf("failed to resolve private directory: %w", err)
	}
	configFile, err := resolveSymlinks(filepath.Join(home, configFileName))
	if err != nil {
		return "", fmt.Errorf("failed to resolve config file: %w", err)
	}

	if pathsEqual(resolved, privateDir) ||
		pathHasPrefix(resolved, privateDir+string(filepath.Separator)) ||
		pathsEqual(resolved, configFile) {
		return resolved, nil
	}
	return "", fmt.Errorf("%w: %s is outside %s", ErrAccessDenied, path, privateDir)
}

// resolveSymlinks evaluates symlinks on the longest existing prefix of path and
// re-appends the part that does not exist yet.
func resolveSymlinks(path string) (string, error) {
	current := filepath.Clean(path)
	remainder := ""
	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			if remainder == "" {
				return resolved, nil
			}
			return filepath.Join(resolved, remainder), nil
		}
		if info, lstatErr := os.Lstat(current); lstatErr == nil && info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("dangling symlink %s", current)
		}

		parent := filepath.Dir(current)
		if parent == current {
			return filepath.Join(current, remainder), nil
		}
		remainder = filepath.Join(filepath.Base(current), remainder)
		current = parent
	}
}

func expandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~\\") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, normalizePathSeparators(path[2:])), nil
}

func normalizePathSeparators(path string) string {
	sep := string(filepath.Separator)
	path = strings.ReplaceAll(path, "/", sep)
	return strings.ReplaceAll(path, "\\", sep)
}

// Windows paths compare case-insensitively.
func pathsEqual(a, b string) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}

func pathHasPrefix(path, prefix string) bool {
	if len(path) < len(prefix) {
		return false
	}
	return pathsEqual(path[:len(prefix)], prefix)
}
