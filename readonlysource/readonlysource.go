// Package readonlysource defines the contract for immutable mounted
// stores that an overlay filesystem layers over a writable upstream, plus
// two concrete implementations: MemorySource and DirSource.
package readonlysource

import (
	"io"

	"github.com/crosspath/pathfs/chunked"
	"github.com/crosspath/pathfs/paths"
)

// FileView is a scoped byte view returned by GetFileData: a slice backed
// by data the source owns, valid for the lifetime of the call's result.
type FileView struct {
	Data []byte
}

// Source is an immutable, mount-point-relative filesystem view
// contributed to an overlay.
type Source interface {
	MountPoint() paths.AbsolutePath
	EnumerateFiles() ([]paths.RelativePath, error)
	Exists(rel paths.RelativePath) bool
	OpenRead(rel paths.RelativePath) (io.ReadSeekCloser, error)
	GetFileData(rel paths.RelativePath, offset, length int64) (FileView, error)
	GetChunkedSource(rel paths.RelativePath, preferredChunkSize int64) (chunked.Source, error)
}
