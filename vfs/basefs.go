package vfs

import (
	"sync"

	"github.com/crosspath/pathfs/paths"
)

// BaseFS holds the path-mapping and known-path-mapping tables shared by
// NativeFS and InMemoryFS. Each of them holds a *BaseFS field rather than
// BaseFS implementing FS itself: Go favors composition over the mixin
// inheritance the original design leaned on. OverlayFS holds no BaseFS; it
// applies no mapping of its own and passes paths to its upstream as given.
type BaseFS struct {
	mu sync.RWMutex

	mappings     map[string]mapping
	knownPathMap map[KnownPath]paths.AbsolutePath
}

type mapping struct {
	from paths.AbsolutePath
	to   paths.AbsolutePath
}

// NewBaseFS returns an empty BaseFS ready to use.
func NewBaseFS() *BaseFS {
	return &BaseFS{
		mappings:     make(map[string]mapping),
		knownPathMap: make(map[KnownPath]paths.AbsolutePath),
	}
}

// MapPath installs a rewrite: any request for from, or for a path nested
// under from, is rebased onto to before dispatch.
func (b *BaseFS) MapPath(from, to paths.AbsolutePath) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mappings[from.CanonicalKey()] = mapping{from: from, to: to}
}

// UnmapPath removes a previously installed mapping for from.
func (b *BaseFS) UnmapPath(from paths.AbsolutePath) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.mappings, from.CanonicalKey())
}

// MapKnownPath overrides the resolution of a known-path identifier.
func (b *BaseFS) MapKnownPath(kp KnownPath, to paths.AbsolutePath) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.knownPathMap[kp] = to
}

// KnownPathOverride returns an explicit mapping for kp, if one was
// installed via MapKnownPath.
func (b *BaseFS) KnownPathOverride(kp KnownPath) (paths.AbsolutePath, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.knownPathMap[kp]
	return p, ok
}

// Map rewrites p according to the installed mappings: a direct hit wins;
// otherwise the longest ancestor mapping entry is used to rebase p under
// its replacement.
func (b *BaseFS) Map(p paths.AbsolutePath) paths.AbsolutePath {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if m, ok := b.mappings[p.CanonicalKey()]; ok {
		return m.to
	}

	var best *mapping
	var bestLen int
	for _, m := range b.mappings {
		if !p.InFolder(m.from) {
			continue
		}
		l := len(m.from.String())
		if best == nil || l > bestLen {
			mCopy := m
			best = &mCopy
			bestLen = l
		}
	}
	if best == nil {
		return p
	}
	rel, err := p.RelativeTo(best.from)
	if err != nil {
		return p
	}
	return best.to.Join(rel)
}

// Unmap is the inverse of Map: given a rewritten path, recover the
// original request path, if a matching mapping is installed.
func (b *BaseFS) Unmap(p paths.AbsolutePath) paths.AbsolutePath {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if m, ok := findByTo(b.mappings, p); ok {
		return m.from
	}

	var best *mapping
	var bestLen int
	for _, m := range b.mappings {
		if !p.InFolder(m.to) {
			continue
		}
		l := len(m.to.String())
		if best == nil || l > bestLen {
			mCopy := m
			best = &mCopy
			bestLen = l
		}
	}
	if best == nil {
		return p
	}
	rel, err := p.RelativeTo(best.to)
	if err != nil {
		return p
	}
	return best.from.Join(rel)
}

func findByTo(m map[string]mapping, p paths.AbsolutePath) (mapping, bool) {
	for _, v := range m {
		if v.to.Equal(p) {
			return v, true
		}
	}
	return mapping{}, false
}
