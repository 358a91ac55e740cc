package nativefs

import (
	"os"
	"path/filepath"

	"github.com/crosspath/pathfs/errdefs"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

// HasKnownPath reports whether kp resolves to something on this
// platform (an override, an environment variable, or a documented
// fallback).
func (f *NativeFS) HasKnownPath(kp vfs.KnownPath) bool {
	_, err := f.GetKnownPath(kp)
	return err == nil
}

// GetKnownPath resolves kp following the documented order: explicit
// override (installed via BaseFS.MapKnownPath) first, then an
// environment variable, then a hard-coded fallback.
func (f *NativeFS) GetKnownPath(kp vfs.KnownPath) (paths.AbsolutePath, error) {
	if p, ok := f.base.KnownPathOverride(kp); ok {
		return p, nil
	}

	switch kp {
	case vfs.EntryDirectory:
		return entryDirectory()
	case vfs.CurrentDirectory:
		return currentDirectory()
	case vfs.TempDirectory:
		return fromString(os.TempDir())
	case vfs.HomeDirectory:
		home, err := os.UserHomeDir()
		if err != nil {
			return paths.AbsolutePath{}, errdefs.NewIOError("get_known_path", "home", err)
		}
		return fromString(home)
	case vfs.XDGConfigHome:
		return xdgPath("XDG_CONFIG_HOME", ".config")
	case vfs.XDGCacheHome:
		return xdgPath("XDG_CACHE_HOME", ".cache")
	case vfs.XDGDataHome:
		return xdgPath("XDG_DATA_HOME", filepath.Join(".local", "share"))
	case vfs.XDGStateHome:
		return xdgPath("XDG_STATE_HOME", filepath.Join(".local", "state"))
	case vfs.XDGRuntimeDir:
		if v := os.Getenv("XDG_RUNTIME_DIR"); v != "" {
			return fromString(v)
		}
		return fromString(os.TempDir())
	case vfs.ApplicationData, vfs.LocalApplicationData, vfs.MyDocuments, vfs.MyGames,
		vfs.CommonApplicationData, vfs.ProgramFiles, vfs.ProgramFilesX86,
		vfs.CommonProgramFiles, vfs.CommonProgramFilesX86:
		return platformKnownPath(kp)
	default:
		return paths.AbsolutePath{}, errdefs.NewIOError("get_known_path", "", errdefs.ErrPlatformNotSupported)
	}
}

func xdgPath(envVar, fallbackRelToHome string) (paths.AbsolutePath, error) {
	if v := os.Getenv(envVar); v != "" {
		return fromString(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return paths.AbsolutePath{}, errdefs.NewIOError("get_known_path", envVar, err)
	}
	return fromString(filepath.Join(home, fallbackRelToHome))
}

func entryDirectory() (paths.AbsolutePath, error) {
	exe, err := os.Executable()
	if err != nil {
		return paths.AbsolutePath{}, errdefs.NewIOError("get_known_path", "entry-dir", err)
	}
	return fromString(filepath.Dir(exe))
}

func currentDirectory() (paths.AbsolutePath, error) {
	wd, err := os.Getwd()
	if err != nil {
		return paths.AbsolutePath{}, errdefs.NewIOError("get_known_path", "current-dir", err)
	}
	return fromString(wd)
}

func fromString(s string) (paths.AbsolutePath, error) {
	return paths.NewAbsolutePath(filepath.ToSlash(s))
}
