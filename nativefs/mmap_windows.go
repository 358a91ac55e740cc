//go:build windows

package nativefs

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

func unsafeSlice(addr uintptr, length int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
}

// CreateMemoryMappedFile maps size bytes of p via CreateFileMapping +
// MapViewOfFile, the Windows analogue of unix.Mmap.
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

	protect := uint32(windows.PAGE_READONLY)
	mapAccess := uint32(windows.FILE_MAP_READ)
	if access.CanWrite() {
		protect = windows.PAGE_READWRITE
		mapAccess = windows.FILE_MAP_WRITE
	}

	h, err := windows.CreateFileMapping(windows.Handle(file.Fd()), nil, protect, uint32(size>>32), uint32(size), nil)
	if err != nil {
		return nil, errdefs.NewIOError("create_memory_mapped_file", p.String(), err)
	}

	addr, err := windows.MapViewOfFile(h, mapAccess, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(h)
		return nil, errdefs.NewIOError("create_memory_mapped_file", p.String(), err)
	}

	data := unsafeSlice(addr, int(size))

	return &mappedHandle{
		data: data,
		release: func() error {
			if err := windows.UnmapViewOfFile(addr); err != nil {
				windows.CloseHandle(h)
				return err
			}
			return windows.CloseHandle(h)
		},
	}, nil
}
