package mongo

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/event"
)

func TestCommandMonitor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	monitor := newCommandMonitor(logger)

	monitor.Succeeded(context.Background(), &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "find", Duration: time.Millisecond},
	})
	assert.Zero(t, buf.Len())

	monitor.Succeeded(context.Background(), &event.CommandSucceededEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "insert", Duration: time.Second},
	})
	assert.Contains(t, buf.String(), "MongoDB slow command")

	buf.Reset()
	monitor.Failed(context.Background(), &event.CommandFailedEvent{
		CommandFinishedEvent: event.CommandFinishedEvent{CommandName: "insert"},
		Failure:              "E11000 duplicate key error",
	})
	assert.Contains(t, buf.String(), "E11000 duplicate key error")
}

func TestNewCommandMonitor_NilLogger(t *testing.T) {
	assert.Nil(t, newCommandMonitor(nil))
}
