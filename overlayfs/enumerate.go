package overlayfs

import (
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

// EnumerateFiles unions the upstream's enumeration (when its directory
// exists) with file paths under dir contributed by every source whose
// mount point is at, under, or above dir, filters tombstoned entries, deduplicates by path (upstream wins),
// and applies pattern over the full path string.
func (o *OverlayFS) EnumerateFiles(dir paths.AbsolutePath, pattern string, recursive bool) ([]paths.AbsolutePath, error) {
	seen := make(map[string]struct{})
	var out []paths.AbsolutePath

	if o.upstream.DirExists(dir) {
		upstreamFiles, err := o.upstream.EnumerateFiles(dir, pattern, recursive)
		if err != nil {
			return nil, err
		}
		for _, p := range upstreamFiles {
			seen[p.CanonicalKey()] = struct{}{}
			out = append(out, p)
		}
	}

	for _, s := range o.sources {
		mount := s.MountPoint()
		if !(dir.Equal(mount) || mount.InFolder(dir) || dir.InFolder(mount)) {
			continue
		}
		rels, err := s.EnumerateFiles()
		if err != nil {
			return nil, err
		}
		for _, rel := range rels {
			full := mount.Join(rel)
			if !full.Equal(dir) && !full.InFolder(dir) {
				continue
			}
			if !recursive {
				parentOfFull := full.Parent()
				if !parentOfFull.Equal(dir) {
					continue
				}
			}
			if o.isTombstoned(full) {
				continue
			}
			key := full.CanonicalKey()
			if _, dup := seen[key]; dup {
				continue
			}
			ok, err := paths.MatchGlob(pattern, full.String())
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, full)
		}
	}

	return out, nil
}

func (o *OverlayFS) EnumerateFileEntries(dir paths.AbsolutePath, pattern string, recursive bool) ([]vfs.FileEntry, error) {
	files, err := o.EnumerateFiles(dir, pattern, recursive)
	if err != nil {
		return nil, err
	}
	out := make([]vfs.FileEntry, 0, len(files))
	for _, p := range files {
		entry, err := o.GetFileEntry(p)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// EnumerateDirs unions the upstream's directories with the set of parent
// directories implied by source files under dir, excluding mount points
// equal to dir itself and excluding the root.
func (o *OverlayFS) EnumerateDirs(dir paths.AbsolutePath, pattern string, recursive bool) ([]paths.AbsolutePath, error) {
	seen := make(map[string]struct{})
	var out []paths.AbsolutePath

	if o.upstream.DirExists(dir) {
		upstreamDirs, err := o.upstream.EnumerateDirs(dir, pattern, recursive)
		if err != nil {
			return nil, err
		}
		for _, p := range upstreamDirs {
			seen[p.CanonicalKey()] = struct{}{}
			out = append(out, p)
		}
	}

	addDir := func(p paths.AbsolutePath) error {
		if p.Equal(dir) || p.IsRoot() {
			return nil
		}
		key := p.CanonicalKey()
		if _, dup := seen[key]; dup {
			return nil
		}
		ok, err := paths.MatchGlob(pattern, p.String())
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		seen[key] = struct{}{}
		out = append(out, p)
		return nil
	}

	for _, s := range o.sources {
		mount := s.MountPoint()
		rels, err := s.EnumerateFiles()
		if err != nil {
			return nil, err
		}
		for _, rel := range rels {
			full := mount.Join(rel)
			if !full.InFolder(dir) {
				continue
			}
			for _, ancestor := range full.Parent().GetAllParents() {
				if !ancestor.InFolder(dir) && !ancestor.Equal(dir) {
					continue
				}
				if !recursive && !ancestor.Parent().Equal(dir) {
					continue
				}
				if err := addDir(ancestor); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}
