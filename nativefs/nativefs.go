// Package nativefs implements vfs.FS as a thin adapter over the host
// operating system's filesystem primitives.
package nativefs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/internal/log"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

// NativeFS is a vfs.FS backed directly by the OS filesystem. It applies
// BaseFS's path mapping before every dispatch, exactly like InMemoryFS.
type NativeFS struct {
	base *vfs.BaseFS
}

// New returns a NativeFS with an empty path-mapping table.
func New() *NativeFS {
	return &NativeFS{base: vfs.NewBaseFS()}
}

func (f *NativeFS) Kind() vfs.Kind { return vfs.KindNative }

// Base exposes the underlying BaseFS so callers can install path or
// known-path mappings.
func (f *NativeFS) Base() *vfs.BaseFS { return f.base }

func nativePath(p paths.AbsolutePath) string {
	return filepath.FromSlash(p.String())
}

func (f *NativeFS) FileExists(p paths.AbsolutePath) bool {
	info, err := os.Stat(nativePath(f.base.Map(p)))
	return err == nil && !info.IsDir()
}

func (f *NativeFS) DirExists(p paths.AbsolutePath) bool {
	info, err := os.Stat(nativePath(f.base.Map(p)))
	return err == nil && info.IsDir()
}

func (f *NativeFS) GetFileEntry(p paths.AbsolutePath) (vfs.FileEntry, error) {
	mapped := f.base.Map(p)
	info, err := os.Stat(nativePath(mapped))
	if err != nil {
		return vfs.FileEntry{}, toErr("get_file_entry", p.String(), err)
	}
	if info.IsDir() {
		return vfs.FileEntry{}, errdefs.NewIOError("get_file_entry", p.String(), errdefs.ErrNotFound)
	}
	return vfs.FileEntry{
		Path:     p,
		Size:     info.Size(),
		ModTime:  info.ModTime(),
		ReadOnly: info.Mode().Perm()&0o200 == 0,
	}, nil
}

func (f *NativeFS) GetDirEntry(p paths.AbsolutePath) (vfs.DirEntry, error) {
	mapped := f.base.Map(p)
	info, err := os.Stat(nativePath(mapped))
	if err != nil {
		return vfs.DirEntry{}, toErr("get_dir_entry", p.String(), err)
	}
	if !info.IsDir() {
		return vfs.DirEntry{}, errdefs.NewIOError("get_dir_entry", p.String(), errdefs.ErrNotFound)
	}
	return vfs.DirEntry{Path: p, ModTime: info.ModTime()}, nil
}

func (f *NativeFS) EnumerateFiles(dir paths.AbsolutePath, pattern string, recursive bool) ([]paths.AbsolutePath, error) {
	entries, err := f.EnumerateFileEntries(dir, pattern, recursive)
	if err != nil {
		return nil, err
	}
	out := make([]paths.AbsolutePath, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out, nil
}

func (f *NativeFS) EnumerateDirs(dir paths.AbsolutePath, pattern string, recursive bool) ([]paths.AbsolutePath, error) {
	var out []paths.AbsolutePath
	root := nativePath(f.base.Map(dir))
	walk := func(path string, d os.DirEntry) error {
		if !d.IsDir() || path == root {
			return nil
		}
		rel := filepath.ToSlash(mustRel(root, path))
		full := dir.Join(paths.MustRelativePath(rel))
		ok, err := paths.MatchGlob(pattern, full.String())
		if err != nil {
			return err
		}
		if ok {
			out = append(out, full)
		}
		return nil
	}
	if err := walkDirs(root, recursive, walk); err != nil {
		return nil, toErr("enumerate_dirs", dir.String(), err)
	}
	return out, nil
}

func (f *NativeFS) EnumerateFileEntries(dir paths.AbsolutePath, pattern string, recursive bool) ([]vfs.FileEntry, error) {
	var out []vfs.FileEntry
	root := nativePath(f.base.Map(dir))
	walk := func(path string, d os.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		rel := filepath.ToSlash(mustRel(root, path))
		full := dir.Join(paths.MustRelativePath(rel))
		ok, err := paths.MatchGlob(pattern, full.String())
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		out = append(out, vfs.FileEntry{
			Path:     full,
			Size:     info.Size(),
			ModTime:  info.ModTime(),
			ReadOnly: info.Mode().Perm()&0o200 == 0,
		})
		return nil
	}
	if err := walkFiles(root, recursive, walk); err != nil {
		return nil, toErr("enumerate_file_entries", dir.String(), err)
	}
	return out, nil
}

func mustRel(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return target
	}
	return rel
}

func walkFiles(root string, recursive bool, fn func(path string, d os.DirEntry) error) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		full := filepath.Join(root, e.Name())
		if e.IsDir() {
			if recursive {
				if err := walkFiles(full, true, fn); err != nil {
					return err
				}
			}
			continue
		}
		if err := fn(full, e); err != nil {
			return err
		}
	}
	return nil
}

func walkDirs(root string, recursive bool, fn func(path string, d os.DirEntry) error) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		full := filepath.Join(root, e.Name())
		if err := fn(full, e); err != nil {
			return err
		}
		if recursive {
			if err := walkDirs(full, true, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func toOSFlag(mode vfs.Mode, access vfs.Access) (int, error) {
	var flag int
	switch access {
	case vfs.Read:
		flag = os.O_RDONLY
	case vfs.Write:
		flag = os.O_WRONLY
	case vfs.ReadWrite:
		flag = os.O_RDWR
	default:
		return 0, errdefs.ErrInvalidModeAccess
	}

	switch mode {
	case vfs.Open:
		// no extra flags
	case vfs.OpenOrCreate:
		flag |= os.O_CREATE
	case vfs.Create:
		flag |= os.O_CREATE | os.O_TRUNC
	case vfs.CreateNew:
		flag |= os.O_CREATE | os.O_EXCL
	case vfs.Truncate:
		flag |= os.O_TRUNC
	default:
		return 0, errdefs.ErrInvalidModeAccess
	}

	if (mode == vfs.Create || mode == vfs.CreateNew || mode == vfs.Truncate) && access == vfs.Read {
		return 0, errdefs.ErrInvalidModeAccess
	}
	return flag, nil
}

func (f *NativeFS) OpenFile(p paths.AbsolutePath, mode vfs.Mode, access vfs.Access) (vfs.File, error) {
	flag, err := toOSFlag(mode, access)
	if err != nil {
		return nil, errdefs.NewIOError("open_file", p.String(), err)
	}
	mapped := f.base.Map(p)
	file, err := os.OpenFile(nativePath(mapped), flag, 0o644)
	if err != nil {
		return nil, toErr("open_file", p.String(), err)
	}
	return file, nil
}

func (f *NativeFS) ReadBytesRandom(p paths.AbsolutePath, buf []byte, offset int64) (int, error) {
	file, err := os.Open(nativePath(f.base.Map(p)))
	if err != nil {
		return 0, toErr("read_bytes_random", p.String(), err)
	}
	defer file.Close()

	n, err := file.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return n, errdefs.NewIOError("read_bytes_random", p.String(), err)
	}
	return n, nil
}

func (f *NativeFS) ReadBytesRandomContext(ctx context.Context, p paths.AbsolutePath, buf []byte, offset int64) (int, error) {
	if ctx.Err() != nil {
		return 0, errdefs.ErrCancelled
	}
	log.G(ctx).WithField("path", p.String()).Debug("read_bytes_random_context")
	n, err := f.ReadBytesRandom(p, buf, offset)
	if ctx.Err() != nil {
		return n, errdefs.ErrCancelled
	}
	return n, err
}

func (f *NativeFS) CreateDir(p paths.AbsolutePath) error {
	if err := os.MkdirAll(nativePath(f.base.Map(p)), 0o755); err != nil {
		return toErr("create_dir", p.String(), err)
	}
	return nil
}

func (f *NativeFS) DeleteFile(p paths.AbsolutePath) error {
	if err := os.Remove(nativePath(f.base.Map(p))); err != nil {
		return toErr("delete_file", p.String(), err)
	}
	return nil
}

func (f *NativeFS) DeleteDir(p paths.AbsolutePath, recursive bool) error {
	mapped := nativePath(f.base.Map(p))
	var err error
	if recursive {
		err = removeAllDepthFirst(mapped)
	} else {
		err = os.Remove(mapped)
	}
	if err != nil {
		return toErr("delete_dir", p.String(), err)
	}
	return nil
}

// removeAllDepthFirst mirrors the teacher's walk-and-remove shape in
// safefile.RemoveAllRelative, rewritten over portable os.* calls instead
// of NT-handle-relative primitives.
func removeAllDepthFirst(root string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		full := filepath.Join(root, e.Name())
		if e.IsDir() {
			if err := removeAllDepthFirst(full); err != nil {
				return err
			}
		} else if err := os.Remove(full); err != nil {
			return err
		}
	}
	return os.Remove(root)
}

func (f *NativeFS) MoveFile(src, dst paths.AbsolutePath, overwrite bool) error {
	from := nativePath(f.base.Map(src))
	to := nativePath(f.base.Map(dst))
	if !overwrite {
		if _, err := os.Stat(to); err == nil {
			return errdefs.NewIOError("move_file", dst.String(), errdefs.ErrAlreadyExists)
		}
	}
	if err := os.Rename(from, to); err != nil {
		return toErr("move_file", dst.String(), err)
	}
	return nil
}

func toErr(op, path string, err error) error {
	if os.IsNotExist(err) {
		return errdefs.NewIOError(op, path, errdefs.ErrNotFound)
	}
	if os.IsExist(err) {
		return errdefs.NewIOError(op, path, errdefs.ErrAlreadyExists)
	}
	if os.IsPermission(err) {
		return errdefs.NewIOError(op, path, errdefs.ErrReadOnly)
	}
	return errdefs.NewIOError(op, path, err)
}
