//go:build !windows

package nativefs

import (
	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

// platformKnownPath covers the DOS-only known-path identifiers. None of
// them have a Unix equivalent in this system's model.
func platformKnownPath(kp vfs.KnownPath) (paths.AbsolutePath, error) {
	return paths.AbsolutePath{}, errdefs.NewIOError("get_known_path", "", errdefs.ErrPlatformNotSupported)
}
