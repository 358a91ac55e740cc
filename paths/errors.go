package paths

import (
	"github.com/pkg/errors"

	"github.com/crosspath/pathfs/errdefs"
)

func wrapNotRelative(raw string) error {
	return errors.Wrapf(errdefs.ErrNotRelative, "path %q is rooted, expected relative", raw)
}

func wrapNotAbsolute(raw string) error {
	return errors.Wrapf(errdefs.ErrNotRelative, "path %q is relative, expected rooted", raw)
}

func wrapNotInFolder(child, parent string) error {
	return errors.Wrapf(errdefs.ErrNotInFolder, "path %q is not inside folder %q", child, parent)
}
