package nativefs

import "sync"

var (
	sharedOnce sync.Once
	shared     *NativeFS
)

// Shared returns the process-wide default NativeFS, constructed lazily on
// first access and never torn down, mirroring the original system's
// FileSystem.Shared static.
func Shared() *NativeFS {
	sharedOnce.Do(func() {
		shared = New()
	})
	return shared
}
