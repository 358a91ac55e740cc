package overlayfs

import (
	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

// CreateDir ensures p exists upstream. Over a source-shadowed directory
// this materializes no files, only the directory itself, so later child
// writes never race on missing parent directories.
func (o *OverlayFS) CreateDir(p paths.AbsolutePath) error {
	return o.upstream.CreateDir(p)
}

// DeleteFile deletes p upstream if present there, and then records a
// tombstone so any source-contributed view of p is hidden until
// recreated. A path present neither upstream nor in any source fails with
// errdefs.ErrNotFound and records no tombstone.
func (o *OverlayFS) DeleteFile(p paths.AbsolutePath) error {
	if o.upstream.FileExists(p) {
		if err := o.upstream.DeleteFile(p); err != nil {
			return err
		}
	} else if _, _, ok := o.resolve(p); !ok {
		return errdefs.NewIOError("delete_file", p.String(), errdefs.ErrNotFound)
	}
	o.setTombstone(p)
	return nil
}

// DeleteDir only deletes upstream directories; a source-only directory
// cannot be deleted.
func (o *OverlayFS) DeleteDir(p paths.AbsolutePath, recursive bool) error {
	if o.upstream.DirExists(p) {
		return o.upstream.DeleteDir(p, recursive)
	}
	if o.DirExists(p) {
		return errdefs.NewIOError("delete_dir", p.String(), errdefs.ErrReadOnly)
	}
	return errdefs.NewIOError("delete_dir", p.String(), errdefs.ErrNotFound)
}

// MoveFile delegates upstream-to-upstream moves directly; a source-backed
// source path is materialized first, then moved upstream.
func (o *OverlayFS) MoveFile(src, dst paths.AbsolutePath, overwrite bool) error {
	if o.upstream.FileExists(src) {
		if err := o.upstream.MoveFile(src, dst, overwrite); err != nil {
			return err
		}
		o.setTombstone(src)
		return nil
	}
	s, rel, ok := o.resolve(src)
	if !ok {
		return errdefs.NewIOError("move_file", src.String(), errdefs.ErrNotFound)
	}
	if err := o.materialize(src, s, rel); err != nil {
		return err
	}
	if err := o.upstream.MoveFile(src, dst, overwrite); err != nil {
		return err
	}
	o.setTombstone(src)
	return nil
}

// CreateMemoryMappedFile materializes a pinned buffer for read-only
// mapping of a source-backed file; any write access, or a file already
// present upstream, delegates to the upstream (materializing first if a
// source held the file and the caller requested write access).
func (o *OverlayFS) CreateMemoryMappedFile(p paths.AbsolutePath, mode vfs.Mode, access vfs.Access, size int64) (vfs.MappedHandle, error) {
	if o.upstream.FileExists(p) {
		return o.upstream.CreateMemoryMappedFile(p, mode, access, size)
	}
	s, rel, ok := o.resolve(p)
	if !ok {
		return o.upstream.CreateMemoryMappedFile(p, mode, access, size)
	}
	if access.CanWrite() {
		if err := o.materialize(p, s, rel); err != nil {
			return nil, err
		}
		return o.upstream.CreateMemoryMappedFile(p, vfs.Open, access, size)
	}
	view, err := s.GetFileData(rel, 0, 1<<62)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, len(view.Data))
	copy(buf, view.Data)
	return &pinnedHandle{data: buf}, nil
}

type pinnedHandle struct {
	data []byte
}

func (h *pinnedHandle) Bytes() []byte { return h.data }
func (h *pinnedHandle) Close() error  { return nil }
