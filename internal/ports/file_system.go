package ports

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

type FileSystem interface {
	// ExpandPath returns the absolute form of path, with "~" expanded.
	ExpandPath(path string) (string, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	// AppendFile appends content to path, creating the file if needed. The parent
	// directory must already exist.
	AppendFile(path string, content []byte, accessMode AccessMode) error
	EnsureDirExists(path string) error
	// FileExists reports whether any entry, including a dangling symlink, is at path.
	FileExists(path string) (bool, error)
	ListFiles(dir string) ([]string, error)
	Remove(path string) error
	MkdirAll(path string, accessMode AccessMode) error
	RemoveAll(path string) error
}
