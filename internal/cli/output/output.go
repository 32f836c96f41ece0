package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolInfo    = "*"
	SymbolBullet  = "-"
)

type style string

// ANSI color codes
const (
	reset style = "\033[0m"
	bold  style = "\033[1m"
	red   style = "\033[31m"
	green style = "\033[32m"
	cyan  style = "\033[36m"
	white style = "\033[37m"
)

// Stdout and Stderr are the destinations of the Print helpers.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	file, ok := Stdout.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func paint(text string, styles ...style) string {
	if !ColorsEnabled() {
		return text
	}
	var prefix string
	for _, s := range styles {
		prefix += string(s)
	}
	return prefix + text + string(reset)
}

func Bold(text string) string {
	return paint(text, bold)
}

func Success(text string) string {
	return paint(text, green)
}

func Error(text string) string {
	return paint(text, red)
}

func Info(text string) string {
	return paint(text, cyan)
}

func Header(text string) string {
	return paint(text, bold, white)
}

func PrintHeader(text string) {
	fmt.Fprintln(Stdout, Header(text))
}

func PrintSuccess(message string) {
	fmt.Fprintf(Stdout, "%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError writes to Stderr.
func PrintError(message string) {
	fmt.Fprintf(Stderr, "%s %s\n", Error(SymbolError), Error(message))
}

func PrintInfo(message string) {
	fmt.Fprintf(Stdout, "%s %s\n", Info(SymbolInfo), Info(message))
}

func PrintBullet(text string) {
	fmt.Fprintf(Stdout, "  %s %s\n", SymbolBullet, text)
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
