//go:build !windows

package nativefs

import "github.com/crosspath/pathfs/paths"

// EnumerateRootDirectories returns the single Unix root.
func (f *NativeFS) EnumerateRootDirectories() ([]paths.AbsolutePath, error) {
	return []paths.AbsolutePath{paths.MustAbsolutePath("/")}, nil
}
