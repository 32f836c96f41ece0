package handler

import (
	"bytes"
	"errors"
	"testing"

	"ifile/internal/cli/output"
	"ifile/internal/core"
	"ifile/internal/core/domain"
	"ifile/internal/ports"
	"ifile/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const storageRoot = "~/.ifile/files"

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	old := output.Stdout
	output.Stdout = buf
	t.Cleanup(func() { output.Stdout = old })
	return buf
}

// sandboxedStore returns a mock store that opens real files in a sandboxed file system.
func sandboxedStore(t *testing.T, name string) (*MockFileStore, *core.InternalFile) {
	t.Helper()
	fileSystem := testutil.NewTestFileSystem(t)
	require.NoError(t, fileSystem.MkdirAll(storageRoot, ports.ReadWriteExecute))
	file := core.NewInternalFile(fileSystem, storageRoot, name, core.WithLineSeparator("\n"))
	fileStore := new(MockFileStore)
	fileStore.On("Open", name).Return(file, nil)
	return fileStore, file
}

func TestFileCommandHandler_HandleExists(t *testing.T) {
	stdout := captureStdout(t)
	fileStore, file := sandboxedStore(t, "favorites")
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	err := sut.HandleExists("favorites")
	assert.ErrorIs(t, err, ErrNegativeResult)
	assert.Contains(t, stdout.String(), "does not exist")

	require.True(t, file.WriteLine("alpha"))
	assert.NoError(t, sut.HandleExists("favorites"))
	assert.Contains(t, stdout.String(), "File 'favorites' exists")
	fileStore.AssertExpectations(t)
}

func TestFileCommandHandler_HandleRead(t *testing.T) {
	stdout := captureStdout(t)
	fileStore, file := sandboxedStore(t, "favorites")
	for _, line := range []string{"alpha", "beta", "alpha"} {
		require.True(t, file.WriteLine(line))
	}
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	err := sut.HandleRead("favorites")

	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\nalpha\n", stdout.String())
}

func TestFileCommandHandler_HandleRead_MissingFile(t *testing.T) {
	captureStdout(t)
	fileStore, _ := sandboxedStore(t, "favorites")
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	err := sut.HandleRead("favorites")

	assert.EqualError(t, err, "file 'favorites' does not exist")
}

func TestFileCommandHandler_HandleContains(t *testing.T) {
	captureStdout(t)
	fileStore, file := sandboxedStore(t, "favorites")
	require.True(t, file.WriteLine("alpha"))
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	assert.NoError(t, sut.HandleContains("favorites", "alpha"))
	assert.ErrorIs(t, sut.HandleContains("favorites", "gamma"), ErrNegativeResult)
}

func TestFileCommandHandler_HandleWrite(t *testing.T) {
	stdout := captureStdout(t)
	fileStore, file := sandboxedStore(t, "favorites")
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	err := sut.HandleWrite("favorites", []string{"alpha", "beta", "alpha"}, false)

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "alpha"}, file.ReadAllLines())
	assert.Contains(t, stdout.String(), "Wrote 3 lines to 'favorites'")
}

func TestFileCommandHandler_HandleWrite_Unique(t *testing.T) {
	stdout := captureStdout(t)
	fileStore, file := sandboxedStore(t, "favorites")
	require.True(t, file.WriteLine("alpha"))
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	err := sut.HandleWrite("favorites", []string{"alpha", "beta", "beta"}, true)

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, file.ReadAllLines())
	assert.Contains(t, stdout.String(), "Wrote 1 line to 'favorites'")
}

func TestFileCommandHandler_HandleWrite_Failure(t *testing.T) {
	captureStdout(t)
	fileSystem := testutil.NewTestFileSystem(t)
	file := core.NewInternalFile(fileSystem, "~/.ifile/missing-dir", "favorites")
	fileStore := new(MockFileStore)
	fileStore.On("Open", "favorites").Return(file, nil)
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	err := sut.HandleWrite("favorites", []string{"alpha"}, false)

	assert.ErrorIs(t, err, core.ErrFileIO)
	assert.ErrorContains(t, err, "after 0 lines")
}

func TestFileCommandHandler_HandleRemove(t *testing.T) {
	captureStdout(t)
	fileStore, file := sandboxedStore(t, "favorites")
	require.True(t, file.WriteLine("alpha"))
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	require.NoError(t, sut.HandleRemove("favorites"))
	assert.False(t, file.Exists())
	assert.NoError(t, sut.HandleRemove("favorites"), "removing twice succeeds")
}

func TestFileCommandHandler_OpenError(t *testing.T) {
	captureStdout(t)
	fileStore := new(MockFileStore)
	expectedErr := domain.ErrInvalidFileName
	fileStore.On("Open", "../escape").Return(nil, expectedErr)
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	assert.Equal(t, expectedErr, sut.HandleExists("../escape"))
	assert.Equal(t, expectedErr, sut.HandleRead("../escape"))
	assert.Equal(t, expectedErr, sut.HandleContains("../escape", "alpha"))
	assert.Equal(t, expectedErr, sut.HandleWrite("../escape", []string{"alpha"}, false))
	assert.Equal(t, expectedErr, sut.HandleRemove("../escape"))
	assert.Equal(t, expectedErr, sut.HandlePath("../escape"))
}

func TestFileCommandHandler_HandleList(t *testing.T) {
	stdout := captureStdout(t)
	fileStore := new(MockFileStore)
	fileStore.On("List").Return([]string{"favorites", "shortcuts"}, nil).Once()
	fileStore.On("List").Return([]string{}, nil).Once()
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	require.NoError(t, sut.HandleList())
	assert.Equal(t, "Files\n  - favorites\n  - shortcuts\n", stdout.String())

	stdout.Reset()
	require.NoError(t, sut.HandleList())
	assert.Contains(t, stdout.String(), "No files stored")
	fileStore.AssertExpectations(t)
}

func TestFileCommandHandler_HandleList_Error(t *testing.T) {
	fileStore := new(MockFileStore)
	expectedErr := errors.New("list error")
	fileStore.On("List").Return(nil, expectedErr)
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	assert.Equal(t, expectedErr, sut.HandleList())
}

func TestFileCommandHandler_HandlePath(t *testing.T) {
	stdout := captureStdout(t)
	fileStore, file := sandboxedStore(t, "favorites")
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	require.NoError(t, sut.HandlePath("favorites"))
	assert.Equal(t, file.Path()+"\n", stdout.String())
}

func TestFileCommandHandler_HandleWrite_FromStdin(t *testing.T) {
	captureStdout(t)
	fileStore, file := sandboxedStore(t, "favorites")
	terminalInput := new(testutil.MockTerminalInput)
	terminalInput.On("IsTerminal").Return(false)
	terminalInput.On("ReadLines").Return([]string{"alpha", "beta"}, nil)
	sut := ProvideFileCommandHandler(fileStore, terminalInput)

	err := sut.HandleWrite("favorites", nil, false)

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, file.ReadAllLines())
	terminalInput.AssertExpectations(t)
}

func TestFileCommandHandler_HandleWrite_NoLinesFromTerminal(t *testing.T) {
	fileStore, file := sandboxedStore(t, "favorites")
	terminalInput := new(testutil.MockTerminalInput)
	terminalInput.On("IsTerminal").Return(true)
	sut := ProvideFileCommandHandler(fileStore, terminalInput)

	err := sut.HandleWrite("favorites", nil, false)

	assert.ErrorContains(t, err, "no lines given")
	assert.False(t, file.Exists())
	terminalInput.AssertNotCalled(t, "ReadLines")
}

func TestFileCommandHandler_HandleWrite_StdinError(t *testing.T) {
	fileStore, _ := sandboxedStore(t, "favorites")
	terminalInput := new(testutil.MockTerminalInput)
	expectedErr := errors.New("failed to read stdin")
	terminalInput.On("IsTerminal").Return(false)
	terminalInput.On("ReadLines").Return(nil, expectedErr)
	sut := ProvideFileCommandHandler(fileStore, terminalInput)

	assert.Equal(t, expectedErr, sut.HandleWrite("favorites", nil, false))
}

func TestFileCommandHandler_HandleWrite_UniqueReadError(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	file := core.NewInternalFile(fileSystem, storageRoot, "favorites")
	path := file.Path()
	fileSystem.On("FileExists", path).Return(true, nil)
	fileSystem.On("ReadFile", path).Return(nil, errors.New("permission denied"))
	fileStore := new(MockFileStore)
	fileStore.On("Open", "favorites").Return(file, nil)
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	err := sut.HandleWrite("favorites", []string{"alpha"}, true)

	assert.ErrorIs(t, err, core.ErrFileIO)
	assert.ErrorContains(t, err, "failed to read 'favorites'")
	fileSystem.AssertNotCalled(t, "AppendFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestFileCommandHandler_HandleWrite_UniqueNewFile(t *testing.T) {
	captureStdout(t)
	fileStore, file := sandboxedStore(t, "favorites")
	sut := ProvideFileCommandHandler(fileStore, new(testutil.MockTerminalInput))

	err := sut.HandleWrite("favorites", []string{"alpha", "alpha", "beta"}, true)

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, file.ReadAllLines())
}
