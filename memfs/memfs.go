// Package memfs implements vfs.FS as a pure in-memory tree of directory
// and file nodes, sharing one mutex-guarded tree per InMemoryFS instance.
package memfs

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/internal/log"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

type node struct {
	isDir    bool
	name     string // display name (original casing), empty for a root node
	children map[string]*node
	data     []byte
	modTime  time.Time
	readOnly bool
}

func newDirNode(name string) *node {
	return &node{isDir: true, name: name, children: make(map[string]*node), modTime: time.Now()}
}

func canonicalSegment(s string) string { return strings.ToUpper(s) }

// InMemoryFS is a vfs.FS backed entirely by an in-process tree. One
// instance is one shared, lockable tree, matching the "FS instances
// shared via reference-counted handles" design note: callers pass around
// the same *InMemoryFS pointer rather than cloning its contents.
type InMemoryFS struct {
	base *vfs.BaseFS

	mu    sync.RWMutex
	roots map[string]*node // keyed by canonical root string, e.g. "/", "C:/"
}

// New returns an empty InMemoryFS.
func New() *InMemoryFS {
	return &InMemoryFS{
		base:  vfs.NewBaseFS(),
		roots: make(map[string]*node),
	}
}

func (f *InMemoryFS) Kind() vfs.Kind { return vfs.KindInMemory }

func (f *InMemoryFS) Base() *vfs.BaseFS { return f.base }

func (f *InMemoryFS) rootNode(p paths.AbsolutePath, create bool) *node {
	_, root := paths.RootOf(p.String())
	key := canonicalSegment(root)
	r, ok := f.roots[key]
	if !ok {
		if !create {
			return nil
		}
		r = newDirNode(root)
		f.roots[key] = r
	}
	return r
}

// walk locates the node at p, optionally creating intermediate
// directories along the way.
func (f *InMemoryFS) walk(p paths.AbsolutePath, createDirs bool) *node {
	cur := f.rootNode(p, createDirs)
	if cur == nil {
		return nil
	}
	if p.IsRoot() {
		return cur
	}
	for _, part := range p.Parts() {
		key := canonicalSegment(part.String())
		child, ok := cur.children[key]
		if !ok {
			if !createDirs {
				return nil
			}
			child = newDirNode(part.String())
			cur.children[key] = child
		}
		cur = child
	}
	return cur
}

func (f *InMemoryFS) FileExists(p paths.AbsolutePath) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := f.walk(f.base.Map(p), false)
	return n != nil && !n.isDir
}

func (f *InMemoryFS) DirExists(p paths.AbsolutePath) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := f.walk(f.base.Map(p), false)
	return n != nil && n.isDir
}

func (f *InMemoryFS) GetFileEntry(p paths.AbsolutePath) (vfs.FileEntry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := f.walk(f.base.Map(p), false)
	if n == nil || n.isDir {
		return vfs.FileEntry{}, errdefs.NewIOError("get_file_entry", p.String(), errdefs.ErrNotFound)
	}
	return vfs.FileEntry{Path: p, Size: int64(len(n.data)), ModTime: n.modTime, ReadOnly: n.readOnly}, nil
}

func (f *InMemoryFS) GetDirEntry(p paths.AbsolutePath) (vfs.DirEntry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := f.walk(f.base.Map(p), false)
	if n == nil || !n.isDir {
		return vfs.DirEntry{}, errdefs.NewIOError("get_dir_entry", p.String(), errdefs.ErrNotFound)
	}
	return vfs.DirEntry{Path: p, ModTime: n.modTime}, nil
}

func (f *InMemoryFS) CreateDir(p paths.AbsolutePath) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.walk(f.base.Map(p), true)
	if !n.isDir {
		return errdefs.NewIOError("create_dir", p.String(), errdefs.ErrAlreadyExists)
	}
	return nil
}

func (f *InMemoryFS) DeleteFile(p paths.AbsolutePath) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	parent, name, ok := f.parentOf(f.base.Map(p))
	if !ok {
		return errdefs.NewIOError("delete_file", p.String(), errdefs.ErrNotFound)
	}
	child, ok := parent.children[name]
	if !ok || child.isDir {
		return errdefs.NewIOError("delete_file", p.String(), errdefs.ErrNotFound)
	}
	delete(parent.children, name)
	return nil
}

func (f *InMemoryFS) DeleteDir(p paths.AbsolutePath, recursive bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	parent, name, ok := f.parentOf(f.base.Map(p))
	if !ok {
		return errdefs.NewIOError("delete_dir", p.String(), errdefs.ErrNotFound)
	}
	child, ok := parent.children[name]
	if !ok || !child.isDir {
		return errdefs.NewIOError("delete_dir", p.String(), errdefs.ErrNotFound)
	}
	if !recursive && len(child.children) > 0 {
		return errdefs.NewIOError("delete_dir", p.String(), errdefs.ErrAlreadyExists)
	}
	delete(parent.children, name)
	return nil
}

// parentOf returns the parent node of p and the canonical segment name of
// p within it, or ok=false if p is a root (which has no parent node in
// this tree) or its parent doesn't exist.
func (f *InMemoryFS) parentOf(p paths.AbsolutePath) (*node, string, bool) {
	if p.IsRoot() {
		return nil, "", false
	}
	parent := f.walk(p.Parent(), false)
	if parent == nil {
		return nil, "", false
	}
	return parent, canonicalSegment(p.Name().String()), true
}

func (f *InMemoryFS) MoveFile(src, dst paths.AbsolutePath, overwrite bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	src, dst = f.base.Map(src), f.base.Map(dst)

	srcParent, srcName, ok := f.parentOf(src)
	if !ok {
		return errdefs.NewIOError("move_file", src.String(), errdefs.ErrNotFound)
	}
	n, ok := srcParent.children[srcName]
	if !ok || n.isDir {
		return errdefs.NewIOError("move_file", src.String(), errdefs.ErrNotFound)
	}

	dstParent := f.walk(dst.Parent(), true)
	dstName := canonicalSegment(dst.Name().String())
	if existing, ok := dstParent.children[dstName]; ok {
		if !overwrite || existing.isDir {
			return errdefs.NewIOError("move_file", dst.String(), errdefs.ErrAlreadyExists)
		}
	}

	n.name = dst.Name().String()
	dstParent.children[dstName] = n
	delete(srcParent.children, srcName)
	return nil
}

func (f *InMemoryFS) EnumerateRootDirectories() ([]paths.AbsolutePath, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]paths.AbsolutePath, 0, len(f.roots))
	for _, r := range f.roots {
		out = append(out, paths.MustAbsolutePath(r.name))
	}
	return out, nil
}

func (f *InMemoryFS) HasKnownPath(kp vfs.KnownPath) bool {
	_, ok := f.base.KnownPathOverride(kp)
	return ok
}

func (f *InMemoryFS) GetKnownPath(kp vfs.KnownPath) (paths.AbsolutePath, error) {
	if p, ok := f.base.KnownPathOverride(kp); ok {
		return p, nil
	}
	return paths.AbsolutePath{}, errdefs.NewIOError("get_known_path", "", errdefs.ErrPlatformNotSupported)
}

func (f *InMemoryFS) ReadBytesRandom(p paths.AbsolutePath, buf []byte, offset int64) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := f.walk(f.base.Map(p), false)
	if n == nil || n.isDir {
		return 0, errdefs.NewIOError("read_bytes_random", p.String(), errdefs.ErrNotFound)
	}
	if offset >= int64(len(n.data)) {
		return 0, nil
	}
	return copy(buf, n.data[offset:]), nil
}

func (f *InMemoryFS) ReadBytesRandomContext(ctx context.Context, p paths.AbsolutePath, buf []byte, offset int64) (int, error) {
	if ctx.Err() != nil {
		return 0, errdefs.ErrCancelled
	}
	log.G(ctx).WithField("path", p.String()).Debug("read_bytes_random_context")
	return f.ReadBytesRandom(p, buf, offset)
}

func (f *InMemoryFS) CreateMemoryMappedFile(p paths.AbsolutePath, mode vfs.Mode, access vfs.Access, size int64) (vfs.MappedHandle, error) {
	f.mu.Lock()
	n := f.walk(f.base.Map(p), false)
	if mode != vfs.Open && n == nil {
		parent := f.walk(f.base.Map(p).Parent(), true)
		n = &node{name: f.base.Map(p).Name().String(), modTime: time.Now()}
		parent.children[canonicalSegment(n.name)] = n
	}
	if n == nil || n.isDir {
		f.mu.Unlock()
		return nil, errdefs.NewIOError("create_memory_mapped_file", p.String(), errdefs.ErrNotFound)
	}
	if size > int64(len(n.data)) {
		grown := make([]byte, size)
		copy(grown, n.data)
		n.data = grown
	}
	data := n.data
	f.mu.Unlock()

	return &inMemoryHandle{data: data}, nil
}

// inMemoryHandle hands back a direct view of the node's backing buffer;
// since InMemoryFS already serializes all tree mutation under f.mu, Close
// has nothing to release beyond dropping the reference.
type inMemoryHandle struct {
	data []byte
}

func (h *inMemoryHandle) Bytes() []byte { return h.data }
func (h *inMemoryHandle) Close() error  { return nil }
