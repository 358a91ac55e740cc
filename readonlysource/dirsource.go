package readonlysource

import (
	"io"
	"os"
	"path/filepath"

	"github.com/crosspath/pathfs/chunked"
	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/paths"
)

// DirSource is a Source backed by a real OS directory tree, read through
// plain os.* primitives and never exposing write access — the production
// case of mounting a read-only data directory, asset pack, or shared
// install location under a writable user-data overlay.
type DirSource struct {
	mount paths.AbsolutePath
	root  string // native filesystem path to the backing directory
}

// NewDirSource mounts the OS directory at nativeRoot as a read-only
// source attached at mount.
func NewDirSource(mount paths.AbsolutePath, nativeRoot string) *DirSource {
	return &DirSource{mount: mount, root: nativeRoot}
}

func (s *DirSource) MountPoint() paths.AbsolutePath { return s.mount }

func (s *DirSource) nativePath(rel paths.RelativePath) string {
	return filepath.Join(s.root, filepath.FromSlash(rel.String()))
}

func (s *DirSource) EnumerateFiles() ([]paths.RelativePath, error) {
	var out []paths.RelativePath
	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		out = append(out, paths.MustRelativePath(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, errdefs.NewIOError("enumerate_files", s.root, err)
	}
	return out, nil
}

func (s *DirSource) Exists(rel paths.RelativePath) bool {
	info, err := os.Stat(s.nativePath(rel))
	return err == nil && !info.IsDir()
}

func (s *DirSource) OpenRead(rel paths.RelativePath) (io.ReadSeekCloser, error) {
	f, err := os.Open(s.nativePath(rel))
	if err != nil {
		return nil, toSourceErr("open_read", rel.String(), err)
	}
	return f, nil
}

func (s *DirSource) GetFileData(rel paths.RelativePath, offset, length int64) (FileView, error) {
	f, err := os.Open(s.nativePath(rel))
	if err != nil {
		return FileView{}, toSourceErr("get_file_data", rel.String(), err)
	}
	defer f.Close()

	buf := make([]byte, length)
	n, err := f.ReadAt(buf, offset)
	if err != nil && err != io.EOF {
		return FileView{}, errdefs.NewIOError("get_file_data", rel.String(), err)
	}
	return FileView{Data: buf[:n]}, nil
}

func (s *DirSource) GetChunkedSource(rel paths.RelativePath, preferredChunkSize int64) (chunked.Source, error) {
	data, err := os.ReadFile(s.nativePath(rel))
	if err != nil {
		return nil, toSourceErr("get_chunked_source", rel.String(), err)
	}
	if preferredChunkSize <= 0 {
		preferredChunkSize = 1 << 16
	}
	return newByteChunkSource(data, preferredChunkSize), nil
}

func toSourceErr(op, path string, err error) error {
	if os.IsNotExist(err) {
		return errdefs.NewIOError(op, path, errdefs.ErrNotFound)
	}
	return errdefs.NewIOError(op, path, err)
}
