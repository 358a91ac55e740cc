package paths

import (
	"strings"
	"sync"

	"github.com/gobwas/glob"
)

// globCache memoizes compiled patterns across calls within a process,
// matching the original system's per-call pattern cache (see SPEC_FULL.md
// §5.1). Patterns are compiled against the upper-cased form of the input
// so matching is case-insensitive, consistent with the path comparison
// rule used everywhere else in this package.
var globCache sync.Map // map[string]glob.Glob

// compileGlob compiles a Win32-style pattern ("*", "?", literal
// characters) for matching against a whole sanitized path string.
func compileGlob(pattern string) (glob.Glob, error) {
	key := strings.ToUpper(pattern)
	if g, ok := globCache.Load(key); ok {
		return g.(glob.Glob), nil
	}
	var expr strings.Builder
	for _, r := range key {
		if r == '*' || r == '?' {
			expr.WriteRune(r)
		} else {
			expr.WriteString(glob.QuoteMeta(string(r)))
		}
	}
	g, err := glob.Compile(expr.String())
	if err != nil {
		return nil, err
	}
	globCache.Store(key, g)
	return g, nil
}

// MatchGlob reports whether path matches the Win32-style glob pattern,
// case-insensitively, over the full path string.
func MatchGlob(pattern, path string) (bool, error) {
	if pattern == "" || pattern == "*" {
		return true, nil
	}
	g, err := compileGlob(pattern)
	if err != nil {
		return false, err
	}
	return g.Match(strings.ToUpper(path)), nil
}
