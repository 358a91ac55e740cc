package memfs

import (
	"io"

	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

// memFile is the handle returned by OpenFile. Per SPEC_FULL.md §5.5,
// read-only handles see a byte-for-byte clone of the node's contents
// taken at open time; any handle with write access operates directly on
// the shared node, guarded by the owning InMemoryFS's mutex.
type memFile struct {
	fs       *InMemoryFS
	node     *node
	snapshot []byte // non-nil for a read-only handle
	pos      int64
	writable bool
	closed   bool
}

func (f *InMemoryFS) OpenFile(p paths.AbsolutePath, mode vfs.Mode, access vfs.Access) (vfs.File, error) {
	if (mode == vfs.Create || mode == vfs.CreateNew || mode == vfs.Truncate) && access == vfs.Read {
		return nil, errdefs.NewIOError("open_file", p.String(), errdefs.ErrInvalidModeAccess)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	mapped := f.base.Map(p)
	n := f.walk(mapped, false)

	switch mode {
	case vfs.Open:
		if n == nil {
			return nil, errdefs.NewIOError("open_file", p.String(), errdefs.ErrNotFound)
		}
	case vfs.CreateNew:
		if n != nil {
			return nil, errdefs.NewIOError("open_file", p.String(), errdefs.ErrAlreadyExists)
		}
		n = f.createFileNode(mapped)
	case vfs.OpenOrCreate:
		if n == nil {
			n = f.createFileNode(mapped)
		}
	case vfs.Create:
		n = f.createFileNode(mapped)
	case vfs.Truncate:
		if n == nil {
			return nil, errdefs.NewIOError("open_file", p.String(), errdefs.ErrNotFound)
		}
		n.data = nil
	default:
		return nil, errdefs.NewIOError("open_file", p.String(), errdefs.ErrInvalidModeAccess)
	}
	if n.isDir {
		return nil, errdefs.NewIOError("open_file", p.String(), errdefs.ErrInvalidModeAccess)
	}

	if access == vfs.Read {
		snap := make([]byte, len(n.data))
		copy(snap, n.data)
		return &memFile{fs: f, node: n, snapshot: snap}, nil
	}
	return &memFile{fs: f, node: n, writable: true}, nil
}

func (f *InMemoryFS) createFileNode(p paths.AbsolutePath) *node {
	parent := f.walk(p.Parent(), true)
	name := p.Name().String()
	n := &node{name: name}
	parent.children[canonicalSegment(name)] = n
	return n
}

func (h *memFile) Read(buf []byte) (int, error) {
	if h.closed {
		return 0, errdefs.NewIOError("read", "", errdefs.ErrNotFound)
	}
	if h.writable {
		h.fs.mu.RLock()
		defer h.fs.mu.RUnlock()
	}
	data := h.bytes()
	if h.pos >= int64(len(data)) {
		return 0, io.EOF
	}
	n := copy(buf, data[h.pos:])
	h.pos += int64(n)
	return n, nil
}

func (h *memFile) bytes() []byte {
	if h.snapshot != nil {
		return h.snapshot
	}
	return h.node.data
}

func (h *memFile) Write(buf []byte) (int, error) {
	if h.closed {
		return 0, errdefs.NewIOError("write", "", errdefs.ErrNotFound)
	}
	if !h.writable {
		return 0, errdefs.NewIOError("write", "", errdefs.ErrInvalidModeAccess)
	}
	h.fs.mu.Lock()
	defer h.fs.mu.Unlock()

	end := h.pos + int64(len(buf))
	if end > int64(len(h.node.data)) {
		grown := make([]byte, end)
		copy(grown, h.node.data)
		h.node.data = grown
	}
	n := copy(h.node.data[h.pos:end], buf)
	h.pos += int64(n)
	return n, nil
}

func (h *memFile) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = h.pos
	case io.SeekEnd:
		base = int64(len(h.bytes()))
	default:
		return 0, errdefs.NewIOError("seek", "", errdefs.ErrInvalidModeAccess)
	}
	h.pos = base + offset
	return h.pos, nil
}

func (h *memFile) Close() error {
	h.closed = true
	return nil
}
