// Package overlayfs implements the read-only-sources overlay: one or
// more immutable read-only sources layered over a writable upstream
// filesystem, with copy-on-write materialization and tombstone-based
// deletion.
package overlayfs

import (
	"context"
	"sync"

	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/internal/log"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/readonlysource"
	"github.com/crosspath/pathfs/vfs"
)

// OverlayFS unions one writable upstream vfs.FS with an ordered list of
// read-only sources. Source priority is mount-order: sources are tried in
// the order passed to New, and a path masked by an earlier source is
// simply never reached by a later one.
type OverlayFS struct {
	upstream vfs.FS
	sources  []readonlysource.Source // immutable after construction

	mu         sync.RWMutex
	tombstones map[string]struct{} // canonical path key -> present
}

// New composes upstream with sources, in mount-priority order.
func New(upstream vfs.FS, sources []readonlysource.Source) *OverlayFS {
	return &OverlayFS{
		upstream:   upstream,
		sources:    append([]readonlysource.Source(nil), sources...),
		tombstones: make(map[string]struct{}),
	}
}

func (o *OverlayFS) Kind() vfs.Kind { return vfs.KindOverlay }

func (o *OverlayFS) isTombstoned(p paths.AbsolutePath) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.tombstones[p.CanonicalKey()]
	return ok
}

func (o *OverlayFS) setTombstone(p paths.AbsolutePath) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tombstones[p.CanonicalKey()] = struct{}{}
}

func (o *OverlayFS) clearTombstone(p paths.AbsolutePath) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.tombstones, p.CanonicalKey())
}

// resolve implements the source-resolution algorithm from §4.4: skip a
// tombstoned path, then try each source in mount order.
func (o *OverlayFS) resolve(p paths.AbsolutePath) (readonlysource.Source, paths.RelativePath, bool) {
	if o.isTombstoned(p) {
		return nil, paths.RelativePath{}, false
	}
	for _, s := range o.sources {
		mount := s.MountPoint()
		if p.Equal(mount) {
			continue
		}
		if !p.InFolder(mount) {
			continue
		}
		rel, err := p.RelativeTo(mount)
		if err != nil {
			continue
		}
		if s.Exists(rel) {
			return s, rel, true
		}
	}
	return nil, paths.RelativePath{}, false
}

func (o *OverlayFS) FileExists(p paths.AbsolutePath) bool {
	if o.upstream.FileExists(p) {
		o.clearTombstone(p)
		return true
	}
	_, _, ok := o.resolve(p)
	return ok
}

func (o *OverlayFS) DirExists(p paths.AbsolutePath) bool {
	if o.upstream.DirExists(p) {
		return true
	}
	for _, s := range o.sources {
		if p.Equal(s.MountPoint()) || p.InFolder(s.MountPoint()) {
			return true
		}
	}
	return false
}

func (o *OverlayFS) GetFileEntry(p paths.AbsolutePath) (vfs.FileEntry, error) {
	if o.upstream.FileExists(p) {
		o.clearTombstone(p)
		return o.upstream.GetFileEntry(p)
	}
	s, rel, ok := o.resolve(p)
	if !ok {
		return vfs.FileEntry{}, errdefs.NewIOError("get_file_entry", p.String(), errdefs.ErrNotFound)
	}
	view, err := s.GetFileData(rel, 0, 1<<62)
	if err != nil {
		return vfs.FileEntry{}, err
	}
	return vfs.FileEntry{Path: p, Size: int64(len(view.Data)), ReadOnly: true}, nil
}

func (o *OverlayFS) GetDirEntry(p paths.AbsolutePath) (vfs.DirEntry, error) {
	if o.upstream.DirExists(p) {
		return o.upstream.GetDirEntry(p)
	}
	if o.DirExists(p) {
		return vfs.DirEntry{Path: p}, nil
	}
	return vfs.DirEntry{}, errdefs.NewIOError("get_dir_entry", p.String(), errdefs.ErrNotFound)
}

func (o *OverlayFS) HasKnownPath(kp vfs.KnownPath) bool { return o.upstream.HasKnownPath(kp) }

func (o *OverlayFS) GetKnownPath(kp vfs.KnownPath) (paths.AbsolutePath, error) {
	return o.upstream.GetKnownPath(kp)
}

func (o *OverlayFS) EnumerateRootDirectories() ([]paths.AbsolutePath, error) {
	return o.upstream.EnumerateRootDirectories()
}

func (o *OverlayFS) ReadBytesRandomContext(ctx context.Context, p paths.AbsolutePath, buf []byte, offset int64) (int, error) {
	if ctx.Err() != nil {
		return 0, errdefs.ErrCancelled
	}
	log.G(ctx).WithField("path", p.String()).Debug("overlay read_bytes_random_context")
	return o.ReadBytesRandom(p, buf, offset)
}

func (o *OverlayFS) ReadBytesRandom(p paths.AbsolutePath, buf []byte, offset int64) (int, error) {
	if o.upstream.FileExists(p) {
		o.clearTombstone(p)
		return o.upstream.ReadBytesRandom(p, buf, offset)
	}
	s, rel, ok := o.resolve(p)
	if !ok {
		return 0, errdefs.NewIOError("read_bytes_random", p.String(), errdefs.ErrNotFound)
	}
	view, err := s.GetFileData(rel, offset, int64(len(buf)))
	if err != nil {
		return 0, err
	}
	return copy(buf, view.Data), nil
}
