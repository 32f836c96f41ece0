package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"

	"ifile/internal/core/domain"
	"ifile/internal/ports"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrFileIO       = errors.New("file i/o failed")
)

// InternalFile is a handle on one line-oriented file inside the private storage
// directory. The handle caches nothing: every read goes back to disk. There is no
// locking, concurrent writers may interleave.
type InternalFile struct {
	fileSystem    ports.FileSystem
	name          string
	path          string
	lineSeparator string
	logger        *slog.Logger
}

type InternalFileOption func(*InternalFile)

// WithLineSeparator overrides the separator appended after each written line.
func WithLineSeparator(separator string) InternalFileOption {
	return func(f *InternalFile) {
		f.lineSeparator = separator
	}
}

func WithLogger(logger *slog.Logger) InternalFileOption {
	return func(f *InternalFile) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewInternalFile composes the path of filename under rootDir. No I/O happens and
// filename is not validated, see FileStore.Open for a validating constructor.
func NewInternalFile(
	fileSystem ports.FileSystem,
	rootDir string,
	filename string,
	opts ...InternalFileOption,
) *InternalFile {
	f := &InternalFile{
		fileSystem:    fileSystem,
		name:          filename,
		path:          filepath.Join(rootDir, filename),
		lineSeparator: domain.PlatformLineSeparator(),
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *InternalFile) Name() string {
	return f.name
}

func (f *InternalFile) Path() string {
	return f.path
}

// Exists reports whether anything is present at the path. Errors count as absent.
func (f *InternalFile) Exists() bool {
	exists, err := f.fileSystem.FileExists(f.path)
	if err != nil {
		f.logger.Debug("existence check failed", "path", f.path, "error", err)
		return false
	}
	return exists
}

// ReadLines loads the whole file and splits it into lines. It returns
// ErrFileNotFound when the file is absent and an error wrapping ErrFileIO for any
// other failure. An empty file yields an empty, non-nil slice.
func (f *InternalFile) ReadLines() ([]string, error) {
	exists, err := f.fileSystem.FileExists(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: check %s: %w", ErrFileIO, f.path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, f.path)
	}

	data, err := f.fileSystem.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, f.path)
		}
		return nil, fmt.Errorf("%w: read %s: %w", ErrFileIO, f.path, err)
	}
	return splitLines(string(data)), nil
}

// ReadAllLines is ReadLines with every failure collapsed into a nil result.
func (f *InternalFile) ReadAllLines() []string {
	lines, err := f.ReadLines()
	if err != nil {
		f.logger.Debug("read failed", "path", f.path, "error", err)
		return nil
	}
	return lines
}

// IsLineExisting reports whether a line equal to search is present. A file that
// cannot be read contains no lines.
func (f *InternalFile) IsLineExisting(search string) bool {
	lines, err := f.ReadLines()
	if err != nil {
		f.logger.Debug("search treated as miss", "path", f.path, "error", err)
		return false
	}
	return slices.Contains(lines, search)
}

// AppendLine writes text followed by one line separator at the end of the file,
// creating the file if needed. text is written verbatim, an embedded separator
// produces two lines. After a failure the file may end with a partial line.
func (f *InternalFile) AppendLine(text string) error {
	content := make([]byte, 0, len(text)+len(f.lineSeparator))
	content = append(content, text...)
	content = append(content, f.lineSeparator...)

	if err := f.fileSystem.AppendFile(f.path, content, ports.ReadWrite); err != nil {
		return fmt.Errorf("%w: append to %s: %w", ErrFileIO, f.path, err)
	}
	return nil
}

func (f *InternalFile) WriteLine(text string) bool {
	if err := f.AppendLine(text); err != nil {
		f.logger.Debug("write failed", "path", f.path, "error", err)
		return false
	}
	return true
}

// Delete removes the file. A missing file counts as deleted. Success means the
// entry is gone afterwards.
func (f *InternalFile) Delete() error {
	exists, err := f.fileSystem.FileExists(f.path)
	if err != nil {
		return fmt.Errorf("%w: check %s: %w", ErrFileIO, f.path, err)
	}
	if !exists {
		return nil
	}

	removeErr := f.fileSystem.Remove(f.path)
	exists, err = f.fileSystem.FileExists(f.path)
	if err == nil && !exists {
		return nil
	}
	if removeErr != nil {
		return fmt.Errorf("%w: remove %s: %w", ErrFileIO, f.path, removeErr)
	}
	return fmt.Errorf("%w: %s still present after removal", ErrFileIO, f.path)
}

func (f *InternalFile) Remove() bool {
	if err := f.Delete(); err != nil {
		f.logger.Debug("remove failed", "path", f.path, "error", err)
		return false
	}
	return true
}
