// Package errdefs holds the tagged error variants surfaced by the path
// algebra and virtual filesystem packages. Every error a caller might want
// to branch on is a package-level sentinel checked with errors.Is (or one
// of the Is* helpers below) rather than a string comparison.
package errdefs

import "errors"

var (
	// ErrNotFound indicates the requested file or directory does not exist.
	ErrNotFound = errors.New("path not found")

	// ErrAlreadyExists indicates a create-only operation targeted a path
	// that already exists.
	ErrAlreadyExists = errors.New("path already exists")

	// ErrReadOnly indicates a mutation was attempted against a read-only
	// source or a read-only-flagged file.
	ErrReadOnly = errors.New("path is read-only")

	// ErrNotInFolder indicates relative_to/in_folder was asked to relate a
	// path that is not a descendant of the given base.
	ErrNotInFolder = errors.New("path is not in the given folder")

	// ErrNotRelative indicates a path-algebra operation expected a
	// relative path and received a rooted one, or vice versa.
	ErrNotRelative = errors.New("path is not relative")

	// ErrNotSanitized indicates a path failed the sanitized-path
	// well-formedness check; only raised under debug assertions.
	ErrNotSanitized = errors.New("path is not sanitized")

	// ErrInvalidModeAccess indicates an open was requested with a
	// mode/access combination that is not meaningful (e.g. Create with
	// Read-only access).
	ErrInvalidModeAccess = errors.New("invalid open mode/access combination")

	// ErrPlatformNotSupported indicates the requested operation has no
	// implementation on the current OS.
	ErrPlatformNotSupported = errors.New("operation not supported on this platform")

	// ErrCancelled indicates an async operation observed context
	// cancellation before it completed.
	ErrCancelled = errors.New("operation cancelled")
)

// IOError is the opaque wrapper for a backend failure: any error returned
// by the underlying OS, in-memory tree, or read-only source that isn't one
// of the tagged sentinels above. It carries enough context to build a
// useful message without losing the original cause via Unwrap.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError wraps err as an opaque backend failure unless it is already
// one of the tagged sentinels, in which case it is passed through
// untouched so callers can still match it with errors.Is.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if IsAny(err, ErrNotFound, ErrAlreadyExists, ErrReadOnly, ErrNotInFolder,
		ErrNotRelative, ErrNotSanitized, ErrInvalidModeAccess, ErrPlatformNotSupported, ErrCancelled) {
		return err
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// IsAny is a vectorized errors.Is: true if err matches any of targets.
func IsAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err indicates a missing path.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAlreadyExists reports whether err indicates a path collision.
func IsAlreadyExists(err error) bool { return errors.Is(err, ErrAlreadyExists) }

// IsReadOnly reports whether err indicates a read-only violation.
func IsReadOnly(err error) bool { return errors.Is(err, ErrReadOnly) }

// IsNotInFolder reports whether err indicates a failed relativize/ancestry check.
func IsNotInFolder(err error) bool { return errors.Is(err, ErrNotInFolder) }

// IsNotRelative reports whether err indicates a relative/absolute path mismatch.
func IsNotRelative(err error) bool { return errors.Is(err, ErrNotRelative) }

// IsInvalidModeAccess reports whether err indicates a bad mode/access pairing.
func IsInvalidModeAccess(err error) bool { return errors.Is(err, ErrInvalidModeAccess) }

// IsPlatformNotSupported reports whether err indicates an unsupported platform request.
func IsPlatformNotSupported(err error) bool { return errors.Is(err, ErrPlatformNotSupported) }

// IsCancelled reports whether err indicates cancellation of an async operation.
func IsCancelled(err error) bool { return errors.Is(err, ErrCancelled) }
