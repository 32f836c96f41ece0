package handler

import (
	"ifile/internal/core"

	"github.com/stretchr/testify/mock"
)

var _ core.FileStore = (*MockFileStore)(nil)

// MockFileStore provides a testify mock for core.FileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Open(name string) (*core.InternalFile, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.InternalFile), args.Error(1)
}

func (m *MockFileStore) List() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileStore) Root() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
