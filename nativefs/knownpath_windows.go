//go:build windows

package nativefs

import (
	"os"

	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

func platformKnownPath(kp vfs.KnownPath) (paths.AbsolutePath, error) {
	env := func(name, fallback string) string {
		if v := os.Getenv(name); v != "" {
			return v
		}
		return fallback
	}

	switch kp {
	case vfs.ApplicationData:
		return fromString(env("APPDATA", ""))
	case vfs.LocalApplicationData:
		return fromString(env("LOCALAPPDATA", ""))
	case vfs.CommonApplicationData:
		return fromString(env("ProgramData", `C:\ProgramData`))
	case vfs.ProgramFiles:
		return fromString(env("ProgramFiles", `C:\Program Files`))
	case vfs.ProgramFilesX86:
		return fromString(env("ProgramFiles(x86)", `C:\Program Files (x86)`))
	case vfs.CommonProgramFiles:
		return fromString(env("CommonProgramFiles", `C:\Program Files\Common Files`))
	case vfs.CommonProgramFilesX86:
		return fromString(env("CommonProgramFiles(x86)", `C:\Program Files (x86)\Common Files`))
	case vfs.MyDocuments:
		if home := env("USERPROFILE", ""); home != "" {
			return fromString(home + `\Documents`)
		}
		return paths.AbsolutePath{}, errdefs.NewIOError("get_known_path", "my-documents", errdefs.ErrNotFound)
	case vfs.MyGames:
		if home := env("USERPROFILE", ""); home != "" {
			return fromString(home + `\Saved Games`)
		}
		return paths.AbsolutePath{}, errdefs.NewIOError("get_known_path", "my-games", errdefs.ErrNotFound)
	default:
		return paths.AbsolutePath{}, errdefs.NewIOError("get_known_path", "", errdefs.ErrPlatformNotSupported)
	}
}
