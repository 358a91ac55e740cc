// Package vfs defines the abstract filesystem contract shared by the
// native, in-memory, and overlay backends, along with the path-mapping
// base and convenience helpers layered on top of it.
package vfs

import (
	"context"
	"io"
	"time"

	"github.com/crosspath/pathfs/paths"
)

// Mode selects the open disposition of OpenFile.
type Mode int

const (
	Open Mode = iota
	OpenOrCreate
	Create
	CreateNew
	Truncate
)

func (m Mode) String() string {
	switch m {
	case Open:
		return "Open"
	case OpenOrCreate:
		return "OpenOrCreate"
	case Create:
		return "Create"
	case CreateNew:
		return "CreateNew"
	case Truncate:
		return "Truncate"
	default:
		return "Mode(?)"
	}
}

// Access selects the read/write capability requested of an open file.
type Access int

const (
	Read Access = iota
	Write
	ReadWrite
)

func (a Access) CanRead() bool  { return a == Read || a == ReadWrite }
func (a Access) CanWrite() bool { return a == Write || a == ReadWrite }

// KnownPath is a closed enumeration of well-known filesystem locations.
type KnownPath int

const (
	EntryDirectory KnownPath = iota
	CurrentDirectory
	CommonApplicationData
	ProgramFiles
	ProgramFilesX86
	CommonProgramFiles
	CommonProgramFilesX86
	TempDirectory
	HomeDirectory
	ApplicationData
	LocalApplicationData
	MyDocuments
	MyGames
	XDGConfigHome
	XDGCacheHome
	XDGDataHome
	XDGStateHome
	XDGRuntimeDir
)

// File is the handle returned by OpenFile: a seekable byte stream that
// must be closed by the caller.
type File interface {
	io.ReadWriteCloser
	io.Seeker
}

// FileEntry describes a file's metadata as reported by the backend.
type FileEntry struct {
	Path        paths.AbsolutePath
	Size        int64
	ModTime     time.Time
	CreateTime  time.Time
	ReadOnly    bool
	VersionInfo string
}

// DirEntry describes a directory's metadata as reported by the backend.
type DirEntry struct {
	Path    paths.AbsolutePath
	ModTime time.Time
}

// MappedHandle is a scoped memory-mapped view over a file's contents.
// Close releases the mapping; Bytes is invalid to use after Close.
type MappedHandle interface {
	Bytes() []byte
	Close() error
}

// FS is the abstract filesystem contract implemented by NativeFS,
// InMemoryFS, and OverlayFS.
type FS interface {
	// Metadata
	FileExists(p paths.AbsolutePath) bool
	DirExists(p paths.AbsolutePath) bool
	GetFileEntry(p paths.AbsolutePath) (FileEntry, error)
	GetDirEntry(p paths.AbsolutePath) (DirEntry, error)

	// Enumeration
	EnumerateFiles(dir paths.AbsolutePath, pattern string, recursive bool) ([]paths.AbsolutePath, error)
	EnumerateDirs(dir paths.AbsolutePath, pattern string, recursive bool) ([]paths.AbsolutePath, error)
	EnumerateFileEntries(dir paths.AbsolutePath, pattern string, recursive bool) ([]FileEntry, error)

	// I/O
	OpenFile(p paths.AbsolutePath, mode Mode, access Access) (File, error)

	// Random access
	ReadBytesRandom(p paths.AbsolutePath, buf []byte, offset int64) (int, error)
	ReadBytesRandomContext(ctx context.Context, p paths.AbsolutePath, buf []byte, offset int64) (int, error)

	// Mutation
	CreateDir(p paths.AbsolutePath) error
	DeleteFile(p paths.AbsolutePath) error
	DeleteDir(p paths.AbsolutePath, recursive bool) error
	MoveFile(src, dst paths.AbsolutePath, overwrite bool) error

	// Memory-mapping
	CreateMemoryMappedFile(p paths.AbsolutePath, mode Mode, access Access, size int64) (MappedHandle, error)

	// Known paths
	HasKnownPath(kp KnownPath) bool
	GetKnownPath(kp KnownPath) (paths.AbsolutePath, error)

	// Roots
	EnumerateRootDirectories() ([]paths.AbsolutePath, error)
}

// Kind marks which concrete capability variant an FS implements, per the
// "capability trait with variants" design note: callers that need to
// special-case a backend (materialization, mmap fallbacks) can switch on
// this instead of a type assertion chain.
type Kind int

const (
	KindNative Kind = iota
	KindInMemory
	KindOverlay
)

// KindedFS is implemented by every backend to report its Kind.
type KindedFS interface {
	Kind() Kind
}
