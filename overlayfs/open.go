package overlayfs

import (
	"io"

	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/readonlysource"
	"github.com/crosspath/pathfs/vfs"
)

// materialize copies rel's content from s into the upstream at p,
// creating p's parent directory first. It is atomic at the
// user-observable granularity: the stream is written to a fresh upstream
// file which is closed before this function returns, so no other thread
// can observe a partially-written file under p's final name — a failed
// copy leaves no new file visible upstream. After materialization the
// tombstone for p (if any) is meaningless since p now exists upstream.
func (o *OverlayFS) materialize(p paths.AbsolutePath, s readonlysource.Source, rel paths.RelativePath) error {
	if err := o.upstream.CreateDir(p.Parent()); err != nil {
		return err
	}

	tmp := p.WithExtension(p.Extension() + ".materializing")
	src, err := s.OpenRead(rel)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := o.upstream.OpenFile(tmp, vfs.CreateNew, vfs.Write)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = o.upstream.DeleteFile(tmp)
		return errdefs.NewIOError("materialize", p.String(), err)
	}
	if err := dst.Close(); err != nil {
		_ = o.upstream.DeleteFile(tmp)
		return errdefs.NewIOError("materialize", p.String(), err)
	}

	if err := o.upstream.MoveFile(tmp, p, true); err != nil {
		_ = o.upstream.DeleteFile(tmp)
		return err
	}
	o.clearTombstone(p)
	return nil
}

// sourceFile adapts a read-only source stream to vfs.File; Write always
// fails with errdefs.ErrReadOnly.
type sourceFile struct {
	io.ReadSeekCloser
}

func (sourceFile) Write([]byte) (int, error) {
	return 0, errdefs.NewIOError("write", "", errdefs.ErrReadOnly)
}

// OpenFile realizes the mode matrix described in SPEC_FULL.md §5.7 /
// spec.md §4.4.
func (o *OverlayFS) OpenFile(p paths.AbsolutePath, mode vfs.Mode, access vfs.Access) (vfs.File, error) {
	if o.isTombstoned(p) {
		switch mode {
		case vfs.Create, vfs.OpenOrCreate, vfs.CreateNew:
			o.clearTombstone(p)
			return o.upstream.OpenFile(p, vfs.Create, access)
		default:
			return nil, errdefs.NewIOError("open_file", p.String(), errdefs.ErrNotFound)
		}
	}

	if o.upstream.FileExists(p) {
		return o.upstream.OpenFile(p, mode, access)
	}

	s, rel, ok := o.resolve(p)
	if !ok {
		return o.upstream.OpenFile(p, mode, access)
	}

	if !access.CanWrite() {
		r, err := s.OpenRead(rel)
		if err != nil {
			return nil, err
		}
		return sourceFile{r}, nil
	}

	switch mode {
	case vfs.Open:
		if err := o.materialize(p, s, rel); err != nil {
			return nil, err
		}
		return o.upstream.OpenFile(p, vfs.Open, access)
	case vfs.OpenOrCreate:
		if err := o.materialize(p, s, rel); err != nil {
			return nil, err
		}
		return o.upstream.OpenFile(p, vfs.Open, access)
	case vfs.Create:
		return o.upstream.OpenFile(p, vfs.Create, access)
	case vfs.CreateNew:
		return nil, errdefs.NewIOError("open_file", p.String(), errdefs.ErrAlreadyExists)
	case vfs.Truncate:
		if err := o.materialize(p, s, rel); err != nil {
			return nil, err
		}
		return o.upstream.OpenFile(p, vfs.Truncate, access)
	default:
		return nil, errdefs.NewIOError("open_file", p.String(), errdefs.ErrInvalidModeAccess)
	}
}
