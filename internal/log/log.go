// Package log provides the contextual logger used throughout pathfs. Call
// sites never import logrus directly; they pull a *logrus.Entry out of the
// context via G, falling back to a package-level default so library code
// works even when the caller never wired up a logger.
package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

var root = logrus.New()

func init() {
	root.SetLevel(logrus.WarnLevel)
}

// WithLogger returns a copy of ctx carrying logger, retrievable with G.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// G returns the logger stored in ctx by WithLogger, or a package-level
// default entry if none was set.
func G(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok {
		return logger
	}
	return logrus.NewEntry(root)
}

// SetLevel adjusts the package-level default logger's verbosity. Intended
// for use by callers that never install their own logger via WithLogger.
func SetLevel(level logrus.Level) {
	root.SetLevel(level)
}
