//go:build windows

package nativefs

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/crosspath/pathfs/paths"
)

// EnumerateRootDirectories scans the A-Z drive letter bitmask reported by
// GetLogicalDrives and returns one AbsolutePath per mounted drive.
func (f *NativeFS) EnumerateRootDirectories() ([]paths.AbsolutePath, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, err
	}
	var out []paths.AbsolutePath
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		letter := byte('A' + i)
		out = append(out, paths.MustAbsolutePath(fmt.Sprintf("%c:/", letter)))
	}
	return out, nil
}
