package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionalSourceHandler(t *testing.T) {
	prodLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	debugLevels := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

	tests := []struct {
		name       string
		level      slog.Level
		showLevels []slog.Level
		wantSource bool
	}{
		{"info in production", slog.LevelInfo, prodLevels, false},
		{"warn in production", slog.LevelWarn, prodLevels, true},
		{"error in production", slog.LevelError, prodLevels, true},
		{"info in debug mode", slog.LevelInfo, debugLevels, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			l := slog.New(NewConditionalSourceHandler(base, tt.showLevels...))

			l.Log(context.Background(), tt.level, "announcement created", "id", 7)

			out := buf.String()
			assert.Equal(t, tt.wantSource, strings.Contains(out, "source="), out)
			assert.Contains(t, out, "id=7")
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	l := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).
		With("component", "graphql").
		WithGroup("request")

	l.Info("resolved", "operation", "categories")

	out := buf.String()
	assert.NotContains(t, out, "source=")
	assert.Contains(t, out, "component=graphql")
	assert.Contains(t, out, "request.operation=categories")
}

func TestConditionalSourceHandler_EnabledFollowsBase(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewConditionalSourceHandler(base, slog.LevelError)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}
