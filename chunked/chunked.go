// Package chunked adapts chunk-oriented random-access sources into
// ordinary seekable readers.
package chunked

import (
	"context"
	"io"

	"github.com/crosspath/pathfs/errdefs"
)

// Source exposes a read-only byte sequence partitioned into variable-size
// chunks, as contributed by a ReadOnlySource for one of its entries.
type Source interface {
	Size() int64
	ChunkCount() int
	OffsetOf(chunkIndex int) int64
	ChunkSize(chunkIndex int) int64
	ReadChunk(buf []byte, chunkIndex int) (int, error)
	ReadChunkContext(ctx context.Context, buf []byte, chunkIndex int) (int, error)
}

// Stream adapts a Source into an io.ReadSeeker by locating the chunk that
// contains the current offset and lazily loading it on demand.
type Stream struct {
	src    Source
	pos    int64
	cached int
	chunk  []byte
}

// NewStream wraps src as a seekable reader starting at offset 0.
func NewStream(src Source) *Stream {
	return &Stream{src: src, cached: -1}
}

func (s *Stream) chunkIndexFor(pos int64) int {
	for i := 0; i < s.src.ChunkCount(); i++ {
		start := s.src.OffsetOf(i)
		end := start + s.src.ChunkSize(i)
		if pos >= start && pos < end {
			return i
		}
	}
	return -1
}

func (s *Stream) ensureChunk(idx int) error {
	if s.cached == idx {
		return nil
	}
	buf := make([]byte, s.src.ChunkSize(idx))
	n, err := s.src.ReadChunk(buf, idx)
	if err != nil {
		return err
	}
	s.chunk = buf[:n]
	s.cached = idx
	return nil
}

func (s *Stream) Read(p []byte) (int, error) {
	if s.pos >= s.src.Size() {
		return 0, io.EOF
	}
	idx := s.chunkIndexFor(s.pos)
	if idx < 0 {
		return 0, io.EOF
	}
	if err := s.ensureChunk(idx); err != nil {
		return 0, errdefs.NewIOError("read_chunk", "", err)
	}
	chunkStart := s.src.OffsetOf(idx)
	offsetInChunk := s.pos - chunkStart
	if offsetInChunk >= int64(len(s.chunk)) {
		return 0, io.EOF
	}
	n := copy(p, s.chunk[offsetInChunk:])
	s.pos += int64(n)
	return n, nil
}

func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = s.pos
	case io.SeekEnd:
		base = s.src.Size()
	default:
		return 0, errdefs.NewIOError("seek", "", errdefs.ErrInvalidModeAccess)
	}
	s.pos = base + offset
	return s.pos, nil
}
