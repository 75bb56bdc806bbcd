package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/event"

	deliverycontext "titlecheck/internal/delivery/context"
)

const slowCommandThreshold = 200 * time.Millisecond

// newCommandMonitor logs failed and slow driver commands through slog.
// Command bodies are never logged since inserts carry password hashes.
func newCommandMonitor(logger *slog.Logger) *event.CommandMonitor {
	if logger == nil {
		return nil
	}

	return &event.CommandMonitor{
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			if evt.Duration < slowCommandThreshold {
				return
			}

			deliverycontext.GetLoggerOrDefault(ctx, logger).LogAttrs(ctx, slog.LevelWarn, "MongoDB slow command",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
				slog.Duration("slowThreshold", slowCommandThreshold),
			)
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			deliverycontext.GetLoggerOrDefault(ctx, logger).LogAttrs(ctx, slog.LevelDebug, "MongoDB command failed",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
				slog.String("error", evt.Failure),
			)
		},
	}
}
