package handler

import (
	"errors"
	"fmt"

	"ifile/internal/cli/output"
	"ifile/internal/core"
	"ifile/internal/ports"
)

// ErrNegativeResult signals a query answered with "no" so the CLI can exit non-zero.
var ErrNegativeResult = errors.New("negative result")

type FileCommandHandler struct {
	fileStore     core.FileStore
	terminalInput ports.TerminalInput
}

func ProvideFileCommandHandler(
	fileStore core.FileStore,
	terminalInput ports.TerminalInput,
) FileCommandHandler {
	return FileCommandHandler{
		fileStore:     fileStore,
		terminalInput: terminalInput,
	}
}

func (h *FileCommandHandler) HandleExists(name string) error {
	file, err := h.fileStore.Open(name)
	if err != nil {
		return err
	}
	if !file.Exists() {
		output.PrintInfo(fmt.Sprintf("File '%s' does not exist", name))
		return ErrNegativeResult
	}
	output.PrintSuccess(fmt.Sprintf("File '%s' exists", name))
	return nil
}

// HandleRead prints the lines of the file verbatim, one per line, so the output can be piped.
func (h *FileCommandHandler) HandleRead(name string) error {
	file, err := h.fileStore.Open(name)
	if err != nil {
		return err
	}
	lines, err := file.ReadLines()
	if errors.Is(err, core.ErrFileNotFound) {
		return fmt.Errorf("file '%s' does not exist", name)
	}
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", name, err)
	}
	for _, line := range lines {
		fmt.Fprintln(output.Stdout, line)
	}
	return nil
}

func (h *FileCommandHandler) HandleContains(name string, line string) error {
	file, err := h.fileStore.Open(name)
	if err != nil {
		return err
	}
	if !file.IsLineExisting(line) {
		output.PrintInfo(fmt.Sprintf("Line not found in '%s'", name))
		return ErrNegativeResult
	}
	output.PrintSuccess(fmt.Sprintf("Line found in '%s'", name))
	return nil
}

// HandleWrite appends lines in order. Without lines, they are read from piped stdin.
// With unique set, lines already present in the file (or earlier in the same call)
// are skipped.
func (h *FileCommandHandler) HandleWrite(name string, lines []string, unique bool) error {
	file, err := h.fileStore.Open(name)
	if err != nil {
		return err
	}

	if len(lines) == 0 {
		if h.terminalInput.IsTerminal() {
			return errors.New("no lines given: pass them as arguments or pipe them to stdin")
		}
		lines, err = h.terminalInput.ReadLines()
		if err != nil {
			return err
		}
	}

	var present map[string]bool
	if unique {
		if present, err = existingLines(file); err != nil {
			return fmt.Errorf("failed to read '%s': %w", name, err)
		}
	}

	written := 0
	for _, line := range lines {
		if unique {
			if present[line] {
				continue
			}
			present[line] = true
		}
		if err := file.AppendLine(line); err != nil {
			return fmt.Errorf("failed to write to '%s' after %d %s: %w",
				name, written, output.Plural(written, "line", "lines"), err)
		}
		written++
	}

	output.PrintSuccess(fmt.Sprintf("Wrote %d %s to '%s'", written, output.Plural(written, "line", "lines"), name))
	return nil
}

func (h *FileCommandHandler) HandleRemove(name string) error {
	file, err := h.fileStore.Open(name)
	if err != nil {
		return err
	}
	if err := file.Delete(); err != nil {
		return fmt.Errorf("failed to remove '%s': %w", name, err)
	}
	output.PrintSuccess(fmt.Sprintf("File '%s' removed", name))
	return nil
}

func (h *FileCommandHandler) HandleList() error {
	names, err := h.fileStore.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		output.PrintInfo("No files stored")
		return nil
	}

	output.PrintHeader("Files")
	for _, name := range names {
		output.PrintBullet(output.Bold(name))
	}
	return nil
}

func (h *FileCommandHandler) HandlePath(name string) error {
	file, err := h.fileStore.Open(name)
	if err != nil {
		return err
	}
	fmt.Fprintln(output.Stdout, file.Path())
	return nil
}

// existingLines returns the set of lines in file. A missing file has none.
func existingLines(file *core.InternalFile) (map[string]bool, error) {
	lines, err := file.ReadLines()
	if err != nil && !errors.Is(err, core.ErrFileNotFound) {
		return nil, err
	}
	present := make(map[string]bool, len(lines))
	for _, line := range lines {
		present[line] = true
	}
	return present, nil
}
