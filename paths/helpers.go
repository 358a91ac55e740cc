package paths

import (
	"strings"
)

// Join concatenates two sanitized path strings. If a is a root directory
// (ends in a separator) the pieces are concatenated without an extra
// separator; otherwise a single separator is inserted. An empty a or b
// yields the other operand unchanged.
func Join(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if strings.HasSuffix(a, "/") {
		return a + b
	}
	return a + "/" + b
}

// hasPrefixFold reports whether s starts with prefix under case-insensitive
// comparison via strings.EqualFold, which applies Unicode simple case
// folding, so non-ASCII letters are folded as well as ASCII ones.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// Relativize computes the relative path from parent to child: the suffix
// of child after stripping the parent prefix and its separator. It returns
// errdefs.ErrNotInFolder if parent is not an ancestor of (or equal to)
// child.
func Relativize(child, parent string) (string, error) {
	if strings.EqualFold(child, parent) {
		return "", nil
	}
	if !hasPrefixFold(child, parent) {
		return "", wrapNotInFolder(child, parent)
	}
	if IsRoot(parent) {
		return strings.TrimPrefix(child[len(parent):], "/"), nil
	}
	rem := child[len(parent):]
	if len(rem) > 0 && rem[0] == '/' {
		return rem[1:], nil
	}
	return "", wrapNotInFolder(child, parent)
}

// InFolder reports whether parent is a proper ancestor directory of child
// (i.e. child is strictly nested inside parent), respecting segment
// boundaries so that e.g. "/foobar" is not in folder "/foo".
func InFolder(child, parent string) bool {
	if parent == "" || strings.EqualFold(child, parent) {
		return false
	}
	if !hasPrefixFold(child, parent) {
		return false
	}
	if IsRoot(parent) {
		return true
	}
	rem := child[len(parent):]
	return len(rem) > 0 && rem[0] == '/'
}

// Compare performs a case-insensitive ordinal comparison of two sanitized
// paths on their strings.ToUpper forms (Unicode upper-casing, not limited
// to ASCII), returning a value <0, 0, or >0 like strings.Compare.
func Compare(a, b string) int {
	return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
}

// Equal reports whether a and b denote the same path under the
// case-insensitive comparison rule.
func Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Parent returns the parent directory of a sanitized path. The parent of
// a root directory is itself.
func Parent(s string) string {
	if s == "" {
		return ""
	}
	rootType, root := RootOf(s)
	if rootType == RootNone {
		idx := strings.LastIndexByte(s, '/')
		if idx < 0 {
			return ""
		}
		return s[:idx]
	}
	if s == root {
		return root
	}
	idx := strings.LastIndexByte(s, '/')
	if idx < len(root) {
		return root
	}
	return s[:idx]
}

// Name returns the last segment of a sanitized path (the file or
// directory name), empty iff s is a root directory.
func Name(s string) string {
	if s == "" || IsRoot(s) {
		return ""
	}
	idx := strings.LastIndexByte(s, '/')
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}

// WalkParts returns the relative segments of a sanitized path, excluding
// its root, in root-to-leaf order. The returned slice is a fresh,
// independently-owned copy.
func WalkParts(s string) []string {
	_, root := RootOf(s)
	rest := strings.TrimPrefix(s, root)
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}

// GetAllParents returns the sequence of ancestor directories of s, from s
// itself upward to (and including) its root.
func GetAllParents(s string) []string {
	var out []string
	cur := s
	for {
		out = append(out, cur)
		if IsRoot(cur) || cur == "" {
			break
		}
		next := Parent(cur)
		if next == cur {
			break
		}
		cur = next
	}
	return out
}

// GetParts materializes the full segment sequence of a sanitized path,
// including the root as a single leading segment (e.g. "C:/", "/"), in
// forward order, or reverse order when reverse is true. Unlike WalkParts,
// which excludes the root to match AbsolutePath.Parts, this mirrors the
// lower-level walker described for PathHelpers.
func GetParts(s string, reverse bool) []string {
	_, root := RootOf(s)
	segs := WalkParts(s)
	all := make([]string, 0, len(segs)+1)
	if root != "" {
		all = append(all, root)
	}
	all = append(all, segs...)
	if reverse {
		for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
			all[i], all[j] = all[j], all[i]
		}
	}
	return all
}

// Extension returns the substring of name after its last ".", or "" if
// name has none.
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}
	return name[idx+1:]
}

// WithExtension replaces name's extension with ext (without a leading
// dot), appending one if name has none.
func WithExtension(name, ext string) string {
	base := name
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		base = name[:idx]
	}
	if ext == "" {
		return base
	}
	return base + "." + strings.TrimPrefix(ext, ".")
}

// AppendExtension appends ext literally to name (no dot is inserted
// automatically unless ext supplies one).
func AppendExtension(name, ext string) string {
	return name + ext
}
