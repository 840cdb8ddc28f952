package kmedoids

import (
	"context"
	"log/slog"
)

// logger wraps slog.Logger with the field names used across the package.
type logger struct {
	*slog.Logger
}

func newLogger(l *slog.Logger, n, k int) logger {
	return logger{Logger: l.With("points", n, "k", k)}
}

func (l logger) logInit(medoids []int, explicit bool) {
	l.DebugContext(context.Background(), "medoids initialised",
		"medoids", medoids,
		"explicit", explicit,
	)
}

func (l logger) logReassign(workers int) {
	l.DebugContext(context.Background(), "reassigned points",
		"workers", workers,
	)
}

func (l logger) logSwap(oldID, newID int, err error) {
	if err != nil {
		l.DebugContext(context.Background(), "swap rejected",
			"old", oldID,
			"new", newID,
			"error", err,
		)
		return
	}
	l.DebugContext(context.Background(), "swap applied",
		"old", oldID,
		"new", newID,
	)
}
