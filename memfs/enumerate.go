package memfs

import (
	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

func (f *InMemoryFS) EnumerateFiles(dir paths.AbsolutePath, pattern string, recursive bool) ([]paths.AbsolutePath, error) {
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

func (f *InMemoryFS) EnumerateDirs(dir paths.AbsolutePath, pattern string, recursive bool) ([]paths.AbsolutePath, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	mapped := f.base.Map(dir)
	n := f.walk(mapped, false)
	if n == nil || !n.isDir {
		return nil, errdefs.NewIOError("enumerate_dirs", dir.String(), errdefs.ErrNotFound)
	}

	var out []paths.AbsolutePath
	var walkChildren func(base paths.AbsolutePath, n *node) error
	walkChildren = func(base paths.AbsolutePath, n *node) error {
		for _, child := range n.children {
			if !child.isDir {
				continue
			}
			full := base.Join(paths.MustRelativePath(child.name))
			ok, err := paths.MatchGlob(pattern, full.String())
			if err != nil {
				return err
			}
			if ok {
				out = append(out, full)
			}
			if recursive {
				if err := walkChildren(full, child); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walkChildren(dir, n); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *InMemoryFS) EnumerateFileEntries(dir paths.AbsolutePath, pattern string, recursive bool) ([]vfs.FileEntry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	mapped := f.base.Map(dir)
	n := f.walk(mapped, false)
	if n == nil || !n.isDir {
		return nil, errdefs.NewIOError("enumerate_file_entries", dir.String(), errdefs.ErrNotFound)
	}

	var out []vfs.FileEntry
	var walkChildren func(base paths.AbsolutePath, n *node) error
	walkChildren = func(base paths.AbsolutePath, n *node) error {
		for _, child := range n.children {
			full := base.Join(paths.MustRelativePath(child.name))
			if child.isDir {
				if recursive {
					if err := walkChildren(full, child); err != nil {
						return err
					}
				}
				continue
			}
			ok, err := paths.MatchGlob(pattern, full.String())
			if err != nil {
				return err
			}
			if ok {
				out = append(out, vfs.FileEntry{
					Path:     full,
					Size:     int64(len(child.data)),
					ModTime:  child.modTime,
					ReadOnly: child.readOnly,
				})
			}
		}
		return nil
	}
	if err := walkChildren(dir, n); err != nil {
		return nil, err
	}
	return out, nil
}
