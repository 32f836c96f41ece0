package domain

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const (
	LineEndingPlatform = "platform"
	LineEndingLF       = "lf"
	LineEndingCRLF     = "crlf"
)

const DefaultStorageDir = "files"

var ErrInvalidFileName = errors.New("invalid file name")

// Config holds the application configuration stored in ~/.ifile-config.yaml
type Config struct {
	StorageDir string  `yaml:"storageDir"`
	LineEnding string  `yaml:"lineEnding"`
	Logging    Logging `yaml:"logging"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func CreateDefaultConfig() Config {
	return Config{
		StorageDir: DefaultStorageDir,
		LineEnding: LineEndingPlatform,
		Logging: Logging{
			Level:  "warn",
			Format: "text",
		},
	}
}

// ApplyDefaults fills in values left empty in the config file.
func (c *Config) ApplyDefaults() {
	defaults := CreateDefaultConfig()
	if c.StorageDir == "" {
		c.StorageDir = defaults.StorageDir
	}
	if c.LineEnding == "" {
		c.LineEnding = defaults.LineEnding
	} else {
		c.LineEnding = strings.ToLower(c.LineEnding)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
}

func (c Config) Validate() error {
	var errs []string

	if err := ValidateFileName(c.StorageDir); err != nil {
		errs = append(errs, fmt.Sprintf("storageDir: %v", err))
	}

	switch c.LineEnding {
	case LineEndingPlatform, LineEndingLF, LineEndingCRLF:
	default:
		errs = append(errs, fmt.Sprintf("lineEnding must be %s, %s or %s, got '%s'",
			LineEndingPlatform, LineEndingLF, LineEndingCRLF, c.LineEnding))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level '%s' is not supported", c.Logging.Level))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format '%s' is not supported", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// LineSeparator returns the separator appended after each written line.
func (c Config) LineSeparator() string {
	switch c.LineEnding {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	default:
		return PlatformLineSeparator()
	}
}

func PlatformLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// ValidateFileName checks that name is a single path segment that cannot escape
// the storage directory.
func ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidFileName)
	}
	if name == "." ||
		strings.Contains(name, "..") ||
		strings.Contains(name, "/") ||
		strings.Contains(name, "\\") ||
		strings.Contains(name, "\x00") {
		return fmt.Errorf("%w: '%s' contains invalid characters", ErrInvalidFileName, name)
	}
	return nil
}
