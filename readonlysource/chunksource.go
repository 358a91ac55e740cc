package readonlysource

import (
	"context"

	"github.com/crosspath/pathfs/chunked"
	"github.com/crosspath/pathfs/errdefs"
)

// streamCloser adapts a *chunked.Stream to io.ReadSeekCloser: nothing
// needs releasing beyond dropping the reference, since the stream holds
// no handle of its own (its backing chunked.Source owns whatever it
// opened).
type streamCloser struct {
	*chunked.Stream
}

func (streamCloser) Close() error { return nil }

// byteChunkSource partitions an in-memory byte slice into fixed-size
// chunks (the last one possibly shorter).
type byteChunkSource struct {
	data      []byte
	chunkSize int64
}

func newByteChunkSource(data []byte, chunkSize int64) *byteChunkSource {
	return &byteChunkSource{data: data, chunkSize: chunkSize}
}

func (s *byteChunkSource) Size() int64 { return int64(len(s.data)) }

func (s *byteChunkSource) ChunkCount() int {
	if len(s.data) == 0 {
		return 0
	}
	return int((int64(len(s.data)) + s.chunkSize - 1) / s.chunkSize)
}

func (s *byteChunkSource) OffsetOf(chunkIndex int) int64 {
	return int64(chunkIndex) * s.chunkSize
}

func (s *byteChunkSource) ChunkSize(chunkIndex int) int64 {
	start := s.OffsetOf(chunkIndex)
	remaining := int64(len(s.data)) - start
	if remaining < s.chunkSize {
		return remaining
	}
	return s.chunkSize
}

func (s *byteChunkSource) ReadChunk(buf []byte, chunkIndex int) (int, error) {
	start := s.OffsetOf(chunkIndex)
	size := s.ChunkSize(chunkIndex)
	if start < 0 || start+size > int64(len(s.data)) {
		return 0, errdefs.NewIOError("read_chunk", "", errdefs.ErrInvalidModeAccess)
	}
	return copy(buf, s.data[start:start+size]), nil
}

func (s *byteChunkSource) ReadChunkContext(ctx context.Context, buf []byte, chunkIndex int) (int, error) {
	if ctx.Err() != nil {
		return 0, errdefs.ErrCancelled
	}
	return s.ReadChunk(buf, chunkIndex)
}
