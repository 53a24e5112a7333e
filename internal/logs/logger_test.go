package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergev/brise/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "info"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("test", "hello", "world!")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked at info level:\n%s", out)
	}
	if !strings.Contains(out, "hello=world!") {
		t.Fatalf("missing info record:\n%s", out)
	}
}

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brise.log")
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "debug", File: path}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.With("file", "a.brs").Debug("parsed expression", "rest", 0)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("log file is not JSON lines: %v\n%s", err, data)
	}
	if record["msg"] != "parsed expression" || record["file"] != "a.brs" {
		t.Fatalf("unexpected record %v", record)
	}
	if !strings.Contains(buf.String(), "parsed expression") {
		t.Fatalf("terminal handler did not receive the record")
	}
}

func TestLoggerBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "brise.log")
	if _, _, err := New(config.LogConfig{File: path}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error opening %s", path)
	}
}

func TestSessionIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "info"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closer.Close()

	ctx, session := NewSession(context.Background())
	if got, ok := SessionFrom(ctx); !ok || got != session {
		t.Fatalf("SessionFrom() = %q, %v", got, ok)
	}
	logger.With("component", "repl").InfoContext(ctx, "started")
	if !strings.Contains(buf.String(), "session="+string(session)) {
		t.Fatalf("record lacks session id:\n%s", buf.String())
	}

	_, other := NewSession(context.Background())
	if other == session {
		t.Fatalf("sessions must be distinct")
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("parse.rest-count"); got != "PARSE_REST_COUNT" {
		t.Fatalf("toJournalKey() = %q", got)
	}
}
