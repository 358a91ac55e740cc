package readonlysource

import (
	"io"

	"github.com/crosspath/pathfs/chunked"
	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/paths"
)

// MemorySource is a Source backed by an in-process map of relative path
// to byte content, useful for overlay tests and for embedding a static
// asset set into a program without a filesystem round-trip.
type MemorySource struct {
	mount paths.AbsolutePath
	files map[string]memoryEntry
}

type memoryEntry struct {
	rel  paths.RelativePath
	data []byte
}

// NewMemorySource builds a MemorySource mounted at mount, with entries
// taken from files (relative path string -> content).
func NewMemorySource(mount paths.AbsolutePath, files map[string][]byte) *MemorySource {
	s := &MemorySource{mount: mount, files: make(map[string]memoryEntry, len(files))}
	for relStr, data := range files {
		rel := paths.MustRelativePath(relStr)
		s.files[rel.CanonicalKey()] = memoryEntry{rel: rel, data: data}
	}
	return s
}

func (s *MemorySource) MountPoint() paths.AbsolutePath { return s.mount }

func (s *MemorySource) EnumerateFiles() ([]paths.RelativePath, error) {
	out := make([]paths.RelativePath, 0, len(s.files))
	for _, e := range s.files {
		out = append(out, e.rel)
	}
	return out, nil
}

func (s *MemorySource) Exists(rel paths.RelativePath) bool {
	_, ok := s.files[rel.CanonicalKey()]
	return ok
}

func (s *MemorySource) OpenRead(rel paths.RelativePath) (io.ReadSeekCloser, error) {
	e, ok := s.files[rel.CanonicalKey()]
	if !ok {
		return nil, errdefs.NewIOError("open_read", rel.String(), errdefs.ErrNotFound)
	}
	cs := newByteChunkSource(e.data, 1<<16)
	return streamCloser{chunked.NewStream(cs)}, nil
}

func (s *MemorySource) GetFileData(rel paths.RelativePath, offset, length int64) (FileView, error) {
	e, ok := s.files[rel.CanonicalKey()]
	if !ok {
		return FileView{}, errdefs.NewIOError("get_file_data", rel.String(), errdefs.ErrNotFound)
	}
	if offset < 0 || offset > int64(len(e.data)) {
		return FileView{}, errdefs.NewIOError("get_file_data", rel.String(), errdefs.ErrInvalidModeAccess)
	}
	end := offset + length
	if end > int64(len(e.data)) {
		end = int64(len(e.data))
	}
	return FileView{Data: e.data[offset:end]}, nil
}

func (s *MemorySource) GetChunkedSource(rel paths.RelativePath, preferredChunkSize int64) (chunked.Source, error) {
	e, ok := s.files[rel.CanonicalKey()]
	if !ok {
		return nil, errdefs.NewIOError("get_chunked_source", rel.String(), errdefs.ErrNotFound)
	}
	if preferredChunkSize <= 0 {
		preferredChunkSize = 1 << 16
	}
	return newByteChunkSource(e.data, preferredChunkSize), nil
}
