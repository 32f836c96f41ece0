package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"ifile/internal/core/domain"
	"ifile/internal/ports"
)

var privateDirPath = filepath.Join("~", ".ifile")

// FileStore hands out InternalFile handles inside the private storage directory.
type FileStore interface {
	Open(name string) (*InternalFile, error)
	List() ([]string, error)
	Root() (string, error)
}

type PrivateFileStore struct {
	fileSystem       ports.FileSystem
	configRepository ConfigRepository
	logger           *slog.Logger
}

func ProvideFileStore(
	fileSystem ports.FileSystem,
	configRepository ConfigRepository,
	logger *slog.Logger,
) *PrivateFileStore {
	return &PrivateFileStore{
		fileSystem:       fileSystem,
		configRepository: configRepository,
		logger:           logger,
	}
}

// Root returns the absolute path of the storage directory.
func (s *PrivateFileStore) Root() (string, error) {
	config, err := s.configRepository.LoadConfig()
	if err != nil {
		return "", err
	}
	return s.root(config)
}

func (s *PrivateFileStore) root(config *domain.Config) (string, error) {
	root, err := s.fileSystem.ExpandPath(filepath.Join(privateDirPath, config.StorageDir))
	if err != nil {
		return "", fmt.Errorf("failed to resolve storage directory: %w", err)
	}
	return root, nil
}

// Open validates name and returns a handle on it. The storage directory is created
// if missing; the file itself is not.
func (s *PrivateFileStore) Open(name string) (*InternalFile, error) {
	if err := domain.ValidateFileName(name); err != nil {
		return nil, err
	}
	config, err := s.configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}

	root, err := s.root(config)
	if err != nil {
		return nil, err
	}
	if err := s.fileSystem.MkdirAll(root, ports.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed to prepare storage directory: %w", err)
	}

	return NewInternalFile(
		s.fileSystem,
		root,
		name,
		WithLineSeparator(config.LineSeparator()),
		WithLogger(s.logger.With("file", name)),
	), nil
}

// List returns the sorted names of the files in the storage directory.
func (s *PrivateFileStore) List() ([]string, error) {
	root, err := s.Root()
	if err != nil {
		return nil, err
	}

	names, err := s.fileSystem.ListFiles(root)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list storage directory: %w", err)
	}
	return names, nil
}
