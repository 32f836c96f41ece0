package core

import (
	"fmt"
	"path/filepath"

	"ifile/internal/core/domain"
	"ifile/internal/ports"

	"gopkg.in/yaml.v3"
)

var configFilePath = filepath.Join("~", ".ifile-config.yaml")

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
}

type FileSystemConfigRepository struct {
	fileService ports.FileSystem
	config      *domain.Config
}

func ProvideFileSystemConfigRepository(fileService ports.FileSystem) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{
		fileService: fileService,
	}
}

// LoadConfig reads ~/.ifile-config.yaml, falling back to the defaults when the file
// does not exist. The result is cached for the lifetime of the repository.
func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	exists, err := c.fileService.FileExists(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}

	config := domain.CreateDefaultConfig()
	if exists {
		data, err := c.fileService.ReadFile(configFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		config = domain.Config{}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		config.ApplyDefaults()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	c.config = &config
	return &config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := c.fileService.WriteFile(configFilePath, data, ports.ReadWrite); err != nil {
		return err
	}
	c.config = nil
	return nil
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(configFilePath)
}
