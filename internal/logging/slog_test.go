package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "query", "table", "notes")
	log.Info(ctx, "created", "subject_id", 1)
	log.Warn(ctx, "slow", "ms", 250)
	log.Error(ctx, "failed", "status", 500)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []struct{ level, msg, attr string }{
		{"DEBUG", "query", "table=notes"},
		{"INFO", "created", "subject_id=1"},
		{"WARN", "slow", "ms=250"},
		{"ERROR", "failed", "status=500"},
	}
	if assert.Len(t, lines, len(want)) {
		for i, w := range want {
			assert.Contains(t, lines[i], "level="+w.level)
			assert.Contains(t, lines[i], "msg="+w.msg)
			assert.Contains(t, lines[i], w.attr)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("module", "rest", "user_id", 7).Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=hello", "module=rest", "user_id=7", "k=v"} {
		assert.Contains(t, out, s)
	}
}
