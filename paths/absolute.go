package paths

import "strings"

// AbsolutePath is a sanitized, rooted path split into a directory and a
// file name. directory is always non-empty and rooted; fileName is empty
// iff the whole path denotes a root directory.
type AbsolutePath struct {
	directory string
	fileName  string
}

// NewAbsolutePath sanitizes raw and splits it into an AbsolutePath. It is
// an error (wrapping errdefs.ErrNotRelative, since the path failed to be
// absolute) if raw sanitizes to a relative path.
func NewAbsolutePath(raw string) (AbsolutePath, error) {
	s := Sanitize(raw)
	rt, _ := RootOf(s)
	if rt == RootNone {
		return AbsolutePath{}, wrapNotAbsolute(raw)
	}
	if IsRoot(s) {
		return AbsolutePath{directory: s}, nil
	}
	return AbsolutePath{directory: Parent(s), fileName: Name(s)}, nil
}

// MustAbsolutePath is like NewAbsolutePath but panics on error.
func MustAbsolutePath(raw string) AbsolutePath {
	p, err := NewAbsolutePath(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the full sanitized path.
func (p AbsolutePath) String() string {
	if p.fileName == "" {
		return p.directory
	}
	return Join(p.directory, p.fileName)
}

// Directory returns the directory component (always rooted).
func (p AbsolutePath) Directory() string { return p.directory }

// IsRoot reports whether p denotes a root directory.
func (p AbsolutePath) IsRoot() bool { return p.fileName == "" }

// RootType returns p's root classification.
func (p AbsolutePath) RootType() RootType {
	rt, _ := RootOf(p.directory)
	return rt
}

// Parent returns p's parent directory. The parent of a root is itself.
func (p AbsolutePath) Parent() AbsolutePath {
	if p.IsRoot() {
		return p
	}
	if IsRoot(p.directory) {
		return AbsolutePath{directory: p.directory}
	}
	return AbsolutePath{directory: Parent(p.directory), fileName: Name(p.directory)}
}

// Name returns the last path segment as a RelativePath, empty iff p is a
// root directory.
func (p AbsolutePath) Name() RelativePath {
	return RelativePath{s: p.fileName}
}

// Extension returns the substring of Name() after its last ".".
func (p AbsolutePath) Extension() string { return Extension(p.fileName) }

// WithExtension returns a copy of p with its file name's extension
// replaced.
func (p AbsolutePath) WithExtension(ext string) AbsolutePath {
	return AbsolutePath{directory: p.directory, fileName: WithExtension(p.fileName, ext)}
}

// AppendExtension returns a copy of p with ext appended literally to its
// file name.
func (p AbsolutePath) AppendExtension(ext string) AbsolutePath {
	return AbsolutePath{directory: p.directory, fileName: AppendExtension(p.fileName, ext)}
}

// Join combines p with a relative path.
func (p AbsolutePath) Join(rel RelativePath) AbsolutePath {
	if rel.IsEmpty() {
		return p
	}
	full := Join(p.String(), rel.String())
	return AbsolutePath{directory: Parent(full), fileName: Name(full)}
}

// RelativeTo computes the relative path from base to p, failing with
// errdefs.ErrNotInFolder (wrapped) if base is not an ancestor of p.
func (p AbsolutePath) RelativeTo(base AbsolutePath) (RelativePath, error) {
	s, err := Relativize(p.String(), base.String())
	if err != nil {
		return RelativePath{}, err
	}
	return RelativePath{s: s}, nil
}

// StartsWith reports whether p's string form starts with other's,
// respecting segment boundaries (p == other also counts).
func (p AbsolutePath) StartsWith(other AbsolutePath) bool {
	ps, os := p.String(), other.String()
	if Equal(ps, os) {
		return true
	}
	return InFolder(ps, os)
}

// EndsWith reports whether p's trailing segments match rel.
func (p AbsolutePath) EndsWith(rel RelativePath) bool {
	if rel.IsEmpty() {
		return true
	}
	suffix := rel.String()
	ps := p.String()
	if !hasPrefixFold(reverseString(ps), reverseString(suffix)) {
		return false
	}
	if len(ps) == len(suffix) {
		return true
	}
	return ps[len(ps)-len(suffix)-1] == '/'
}

// InFolder reports whether parent is a strict ancestor directory of p.
func (p AbsolutePath) InFolder(parent AbsolutePath) bool {
	return InFolder(p.String(), parent.String())
}

// ToNativeSeparators converts p's string form to the given OS's native
// separator convention.
func (p AbsolutePath) ToNativeSeparators(os string) string {
	return toNativeSeparators(p.String(), os)
}

// Parts returns p's segments excluding the root, in root-to-leaf order.
func (p AbsolutePath) Parts() []RelativePath {
	segs := WalkParts(p.String())
	out := make([]RelativePath, len(segs))
	for i, s := range segs {
		out[i] = RelativePath{s: s}
	}
	return out
}

// GetAllParents returns the sequence of ancestor directories of p, from p
// upward to (and including) its root.
func (p AbsolutePath) GetAllParents() []AbsolutePath {
	strs := GetAllParents(p.String())
	out := make([]AbsolutePath, len(strs))
	for i, s := range strs {
		out[i] = AbsolutePath{directory: Parent(s), fileName: Name(s)}
		if IsRoot(s) {
			out[i] = AbsolutePath{directory: s}
		}
	}
	return out
}

// Equal compares two absolute paths under the case-insensitive ordinal
// rule.
func (p AbsolutePath) Equal(other AbsolutePath) bool {
	return Equal(p.String(), other.String())
}

// Compare orders two absolute paths under the case-insensitive ordinal
// rule.
func (p AbsolutePath) Compare(other AbsolutePath) int {
	return Compare(p.String(), other.String())
}

// CanonicalKey returns a case-folded string suitable for use as a map key,
// combining the hash of directory and fileName under the case-folding
// rule described by the path comparison rule.
func (p AbsolutePath) CanonicalKey() string {
	return strings.ToUpper(p.directory) + "\x00" + strings.ToUpper(p.fileName)
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
