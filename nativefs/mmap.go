package nativefs

import "sync"

// mappedHandle is the common scoped-release wrapper shared by the unix
// and windows CreateMemoryMappedFile implementations: Close is guarded by
// sync.Once so a caller that closes twice (e.g. once explicitly, once via
// defer) never double-frees the backing mapping.
type mappedHandle struct {
	data    []byte
	once    sync.Once
	release func() error
}

func (h *mappedHandle) Bytes() []byte { return h.data }

func (h *mappedHandle) Close() error {
	var err error
	h.once.Do(func() {
		err = h.release()
	})
	return err
}
