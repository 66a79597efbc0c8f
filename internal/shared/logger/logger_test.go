package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceHandler_SourcePerLevel(t *testing.T) {
	tests := []struct {
		name       string
		log        func(l *slog.Logger)
		minLevel   slog.Level
		wantSource bool
	}{
		{"info in release", func(l *slog.Logger) { l.Info("ticket created") }, sourceLevel("release"), false},
		{"warn in release", func(l *slog.Logger) { l.Warn("cache miss storm") }, sourceLevel("release"), true},
		{"error in release", func(l *slog.Logger) { l.Error("storage down") }, sourceLevel("release"), true},
		{"debug in debug mode", func(l *slog.Logger) { l.Debug("cache hit") }, sourceLevel("debug"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			tt.log(slog.New(NewSourceHandler(base, tt.minLevel)))

			assert.Equal(t, tt.wantSource, strings.Contains(buf.String(), "source="), buf.String())
		})
	}
}

func TestSourceHandler_PointsPastInterfaceWrapper(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	log := NewLoggerWithSlog(slog.New(NewSourceHandler(base, slog.LevelInfo)))

	log.Infow("comment added", "ticket_id", 3)

	var entry struct {
		Source struct {
			File string `json:"file"`
		} `json:"source"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.True(t, strings.HasSuffix(entry.Source.File, "logger_test.go"), entry.Source.File)
}

func TestSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	l := slog.New(NewSourceHandler(base, slog.LevelError)).
		With("ticket_id", 7).
		WithGroup("request")

	l.Info("state updated", "path", "/ticket/7")

	out := buf.String()
	assert.Contains(t, out, "ticket_id=7")
	assert.Contains(t, out, "request.path=/ticket/7")
	assert.NotContains(t, out, "source=")
}

func TestNewHandler_JSONFormat(t *testing.T) {
	SetLevel(slog.LevelInfo)
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, "json", slog.LevelError))

	l.Info("comment added", "ticket_id", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "comment added", entry["msg"])
	assert.Equal(t, float64(3), entry["ticket_id"])
}

func TestNewHandler_RespectsLevel(t *testing.T) {
	SetLevel(slog.LevelWarn)
	defer SetLevel(slog.LevelInfo)

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, "console", slog.LevelError))
	l.Info("hidden")
	l.Warn("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
