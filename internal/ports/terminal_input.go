package ports

// TerminalInput provides access to standard input.
type TerminalInput interface {
	// ReadLines reads standard input to the end and returns its lines.
	ReadLines() ([]string, error)
	// IsTerminal returns true if stdin is connected to a terminal.
	IsTerminal() bool
}
