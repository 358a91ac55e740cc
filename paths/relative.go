package paths

import "strings"

// RelativePath is a sanitized path string with no root component. The
// empty RelativePath denotes "the current directory" / no path at all.
type RelativePath struct {
	s string
}

// NewRelativePath sanitizes raw and wraps it as a RelativePath. It is an
// error (ErrNotRelative) if raw sanitizes to a rooted path.
func NewRelativePath(raw string) (RelativePath, error) {
	s := Sanitize(raw)
	if rt, _ := RootOf(s); rt != RootNone {
		return RelativePath{}, wrapNotRelative(raw)
	}
	return RelativePath{s: s}, nil
}

// MustRelativePath is like NewRelativePath but panics on error; intended
// for tests and package-level literals with known-good input.
func MustRelativePath(raw string) RelativePath {
	p, err := NewRelativePath(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the sanitized relative path string.
func (r RelativePath) String() string { return r.s }

// IsEmpty reports whether r is the empty relative path.
func (r RelativePath) IsEmpty() bool { return r.s == "" }

// Parent returns the parent of r; the parent of a single-segment or empty
// relative path is the empty relative path.
func (r RelativePath) Parent() RelativePath {
	return RelativePath{s: Parent(r.s)}
}

// Name returns the last segment of r.
func (r RelativePath) Name() string { return Name(r.s) }

// Extension returns the extension of r's last segment.
func (r RelativePath) Extension() string { return Extension(r.Name()) }

// WithExtension returns a copy of r with its last segment's extension
// replaced.
func (r RelativePath) WithExtension(ext string) RelativePath {
	dir, name := splitLast(r.s)
	newName := WithExtension(name, ext)
	return RelativePath{s: Join(dir, newName)}
}

// AppendExtension returns a copy of r with ext appended literally to its
// last segment.
func (r RelativePath) AppendExtension(ext string) RelativePath {
	dir, name := splitLast(r.s)
	return RelativePath{s: Join(dir, AppendExtension(name, ext))}
}

// Join appends another relative path to r.
func (r RelativePath) Join(other RelativePath) RelativePath {
	return RelativePath{s: Join(r.s, other.s)}
}

// Parts returns r's segments in root-to-leaf order.
func (r RelativePath) Parts() []string { return WalkParts(r.s) }

// Equal compares two relative paths under the case-insensitive ordinal
// rule.
func (r RelativePath) Equal(other RelativePath) bool { return Equal(r.s, other.s) }

// Compare orders two relative paths under the case-insensitive ordinal
// rule.
func (r RelativePath) Compare(other RelativePath) int { return Compare(r.s, other.s) }

// CanonicalKey returns a case-folded string suitable for use as a map key
// under the path comparison rule.
func (r RelativePath) CanonicalKey() string { return strings.ToUpper(r.s) }

// ToNativeSeparators converts forward slashes to the given OS's native
// separator ("windows" uses backslash; everything else uses forward
// slash, so this is a no-op for non-Windows targets).
func (r RelativePath) ToNativeSeparators(os string) string {
	return toNativeSeparators(r.s, os)
}

func splitLast(s string) (dir, name string) {
	idx := strings.LastIndexByte(s, '/')
	if idx < 0 {
		return "", s
	}
	return s[:idx], s[idx+1:]
}

func toNativeSeparators(s, os string) string {
	if os == "windows" {
		return strings.ReplaceAll(s, "/", `\`)
	}
	return s
}
