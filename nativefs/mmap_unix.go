//go:build !windows

package nativefs

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

// CreateMemoryMappedFile maps size bytes of p into the process's address
// space via unix.Mmap, opening the backing file with the flags implied by
// mode/access first.
func (f *NativeFS) CreateMemoryMappedFile(p paths.AbsolutePath, mode vfs.Mode, access vfs.Access, size int64) (vfs.MappedHandle, error) {
	flag, err := toOSFlag(mode, access)
	if err != nil {
		return nil, errdefs.NewIOError("create_memory_mapped_file", p.String(), err)
	}

	file, err := os.OpenFile(nativePath(f.base.Map(p)), flag, 0o644)
	if err != nil {
		return nil, toErr("create_memory_mapped_file", p.String(), err)
	}
	defer file.Close()

	if size == 0 {
		info, err := file.Stat()
		if err != nil {
			return nil, toErr("create_memory_mapped_file", p.String(), err)
		}
		size = info.Size()
	}
	if access.CanWrite() {
		if err := file.Truncate(size); err != nil {
			return nil, toErr("create_memory_mapped_file", p.String(), err)
		}
	}

	prot := unix.PROT_READ
	if access.CanWrite() {
		prot |= unix.PROT_WRITE
	}
	data, err := unix.Mmap(int(file.Fd()), 0, int(size), prot, unix.MAP_SHARED)
	if err != nil {
		return nil, errdefs.NewIOError("create_memory_mapped_file", p.String(), err)
	}

	return &mappedHandle{
		data: data,
		release: func() error {
			return unix.Munmap(data)
		},
	}, nil
}
