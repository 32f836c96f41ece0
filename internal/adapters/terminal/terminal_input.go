package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"ifile/internal/ports"

	"golang.org/x/term"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput reads from stdin, using golang.org/x/term for terminal detection.
type TerminalInput struct {
	stdin *os.File
}

// ProvideTerminalInput creates a new TerminalInput adapter.
func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{stdin: os.Stdin}
}

// ReadLines reads stdin until EOF. Line terminators ("\n" or "\r\n") are stripped.
func (t *TerminalInput) ReadLines() ([]string, error) {
	return readLines(t.stdin)
}

// IsTerminal returns true if stdin is connected to a terminal.
func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(int(t.stdin.Fd()))
}

func readLines(r io.Reader) ([]string, error) {
	lines := []string{}
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = line[:len(line)-len(trailingTerminator(line))]
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
	}
}

func trailingTerminator(line string) string {
	switch {
	case len(line) >= 2 && line[len(line)-2:] == "\r\n":
		return "\r\n"
	case line[len(line)-1] == '\n':
		return "\n"
	default:
		return ""
	}
}
