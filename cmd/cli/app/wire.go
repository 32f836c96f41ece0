//go:build wireinject
// +build wireinject

package app

import (
	"ifile/internal/adapters/filesystem"
	"ifile/internal/adapters/terminal"
	"ifile/internal/core"
	"ifile/internal/core/handler"
	"ifile/internal/logging"
	"ifile/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	logging.ProvideLogger,
	core.ProvideFileStore,
	wire.Bind(new(core.FileStore), new(*core.PrivateFileStore)),
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectConfigRepo() (core.ConfigRepository, error) {
	wire.Build(
		Adapter,
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	)
	return &core.FileSystemConfigRepository{}, nil
}

func InjectFileStore() (core.FileStore, error) {
	wire.Build(
		CommandHandlerSet,
	)
	return &core.PrivateFileStore{}, nil
}

func InjectFileCommandHandler() (handler.FileCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideFileCommandHandler,
	)
	return handler.FileCommandHandler{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		Adapter,
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}

func InjectConfigCommandHandler() (handler.ConfigCommandHandler, error) {
	wire.Build(
		Adapter,
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
		handler.ProvideConfigCommandHandler,
	)
	return handler.ConfigCommandHandler{}, nil
}
