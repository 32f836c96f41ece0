package domain

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateDefaultConfig_IsValid(t *testing.T) {
	config := CreateDefaultConfig()

	assert.NoError(t, config.Validate())
	assert.Equal(t, "files", config.StorageDir)
	assert.Equal(t, LineEndingPlatform, config.LineEnding)
}

func TestConfig_ApplyDefaults(t *testing.T) {
	config := Config{LineEnding: "CRLF"}

	config.ApplyDefaults()

	assert.Equal(t, DefaultStorageDir, config.StorageDir)
	assert.Equal(t, LineEndingCRLF, config.LineEnding)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "text", config.Logging.Format)
	assert.NoError(t, config.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{"storage dir traversal", func(c *Config) { c.StorageDir = "../elsewhere" }, "storageDir"},
		{"storage dir nested", func(c *Config) { c.StorageDir = "a/b" }, "storageDir"},
		{"unknown line ending", func(c *Config) { c.LineEnding = "cr" }, "lineEnding"},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := CreateDefaultConfig()
			tt.mutate(&config)

			err := config.Validate()

			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestConfig_LineSeparator(t *testing.T) {
	platform := "\n"
	if runtime.GOOS == "windows" {
		platform = "\r\n"
	}

	assert.Equal(t, "\n", Config{LineEnding: LineEndingLF}.LineSeparator())
	assert.Equal(t, "\r\n", Config{LineEnding: LineEndingCRLF}.LineSeparator())
	assert.Equal(t, platform, Config{LineEnding: LineEndingPlatform}.LineSeparator())
	assert.Equal(t, platform, PlatformLineSeparator())
}

func TestValidateFileName(t *testing.T) {
	valid := []string{"favorites", "hidden.txt", "shortcuts-2", ".dotfile"}
	for _, name := range valid {
		assert.NoError(t, ValidateFileName(name), name)
	}

	invalid := []string{"", ".", "..", "../escape", "a/b", "a\\b", "bad\x00name", "foo..bar"}
	for _, name := range invalid {
		assert.ErrorIs(t, ValidateFileName(name), ErrInvalidFileName, name)
	}
}
