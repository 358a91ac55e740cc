package paths

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var slashRuns = regexp.MustCompile(`/+`)

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// classifyRoot determines the root type of s (already slash-normalized,
// i.e. backslashes converted to forward slashes) and the length of its
// root prefix. It does not require s to be fully sanitized yet; Sanitize
// uses it as the first step of normalization.
func classifyRoot(s string) (RootType, int) {
	n := len(s)
	if n == 0 {
		return RootNone, 0
	}

	if n >= 4 && s[0] == '/' && s[1] == '/' && (s[2] == '.' || s[2] == '?') && s[3] == '/' {
		rest := s[4:]

		// DOS-device volume: Volume{GUID}/
		const volTag = "Volume{"
		if strings.HasPrefix(rest, volTag) {
			body := rest[len(volTag):]
			if close := strings.IndexByte(body, '}'); close == 36 {
				guid := body[:close]
				if _, err := uuid.Parse(guid); err == nil {
					after := close + 1 // index in body just past '}'
					if after < len(body) && body[after] == '/' {
						total := 4 + len(volTag) + after + 1
						return RootDOSDeviceVolume, total
					}
				}
			}
		}

		// DOS-device drive: C:/
		if len(rest) >= 3 && isAlpha(rest[0]) && rest[1] == ':' && rest[2] == '/' {
			return RootDOSDeviceDrive, dosDeviceDrivePrefixLen
		}
	}

	// UNC: //Server/
	if n >= 2 && s[0] == '/' && s[1] == '/' {
		tail := s[2:]
		if tail == "" {
			return RootNone, 0
		}
		if idx := strings.IndexByte(tail, '/'); idx > 0 {
			return RootUNC, 2 + idx + 1
		} else if idx < 0 {
			return RootUNC, n
		}
		return RootNone, 0
	}

	// DOS: C:/ or bare C:
	if n >= 2 && isAlpha(s[0]) && s[1] == ':' {
		return RootDOS, 2
	}

	// Unix: /
	if s[0] == '/' {
		return RootUnix, unixRootLen
	}

	return RootNone, 0
}

// canonicalRootPart rewrites the raw root prefix s[:rootLen] of s into its
// canonical form (uppercase DOS drive letter, "//..." prefixes terminated
// with a single slash).
func canonicalRootPart(rootType RootType, rootPart string) string {
	switch rootType {
	case RootDOS:
		rootPart = strings.ToUpper(rootPart[:1]) + rootPart[1:]
		rootPart = strings.TrimSuffix(rootPart, "/") + "/"
	case RootDOSDeviceDrive:
		b := []byte(rootPart)
		if len(b) > 4 && b[4] >= 'a' && b[4] <= 'z' {
			b[4] -= 'a' - 'A'
		}
		rootPart = string(b)
	case RootDOSDeviceVolume:
		// already canonical; GUID casing is left as provided.
	case RootUNC:
		if !strings.HasSuffix(rootPart, "/") {
			rootPart += "/"
		}
	case RootUnix:
		rootPart = "/"
	}
	return rootPart
}

// RootOf classifies a sanitized (or raw) path's root and returns both the
// root type and its canonical root string (e.g. "C:/", "//Server/",
// "" for a relative path).
func RootOf(s string) (RootType, string) {
	s = strings.ReplaceAll(s, "\\", "/")
	rootType, rootLen := classifyRoot(s)
	if rootLen > len(s) {
		rootLen = len(s)
	}
	if rootType == RootNone {
		return RootNone, ""
	}
	return rootType, canonicalRootPart(rootType, s[:rootLen])
}

// IsRoot reports whether the sanitized path s is exactly a bare root
// directory (no file name component beyond the root).
func IsRoot(s string) bool {
	if s == "" {
		return false
	}
	_, root := RootOf(s)
	return root != "" && s == root
}

// Sanitize normalizes an arbitrary path string into the canonical form
// described by the root-type invariants: forward slashes only, no
// duplicated separators, no trailing separator except on a bare root, no
// trailing whitespace, uppercase DOS drive letters. Sanitize is total and
// idempotent: Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "\\", "/")
	s = strings.TrimRight(s, " \t\r\n")
	if s == "" {
		return ""
	}

	rootType, rootLen := classifyRoot(s)
	if rootLen > len(s) {
		rootLen = len(s)
	}
	rootPart := canonicalRootPart(rootType, s[:rootLen])
	rest := s[rootLen:]

	rest = slashRuns.ReplaceAllString(rest, "/")
	rest = strings.TrimSuffix(rest, "/")
	rest = strings.TrimRight(rest, " \t\r\n")
	rest = strings.TrimPrefix(rest, "/")

	if rest == "" {
		return rootPart
	}
	return rootPart + rest
}

// IsSanitized reports whether s is already in canonical form.
func IsSanitized(s string) bool {
	return Sanitize(s) == s
}
