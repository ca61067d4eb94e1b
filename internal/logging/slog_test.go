package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger()
	ctx := context.Background()

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error message")
}

func TestSlogLogger_Attrs(t *testing.T) {
	log, buf := newTestLogger()

	log.Info(context.Background(), "balance checked", "account", "123456")

	assert.Contains(t, buf.String(), "account=123456")
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger()

	child := log.With("component", "session")
	require.NotNil(t, child)

	child.Info(context.Background(), "restored")

	out := buf.String()
	assert.Contains(t, out, "component=session")
	assert.Contains(t, out, "restored")

	// the parent is unaffected
	buf.Reset()
	log.Info(context.Background(), "plain")
	assert.NotContains(t, buf.String(), "component=session")
}
