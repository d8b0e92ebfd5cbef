package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	return event
}

func TestCloudRunHandlerWritesSeverityAndData(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCloudRunHandlerTo(&buf, slog.LevelInfo))

	log.Warn("year rejected", "year", "2031", "error", errors.New("unsupported"))

	event := decodeLine(t, &buf)
	if event["severity"] != "WARNING" {
		t.Fatalf("expected WARNING, got %v", event["severity"])
	}
	if event["message"] != "year rejected" {
		t.Fatalf("unexpected message %v", event["message"])
	}
	data, ok := event["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", event["data"])
	}
	if data["year"] != "2031" || data["error"] != "unsupported" {
		t.Fatalf("unexpected data %v", data)
	}
}

func TestCloudRunHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCloudRunHandlerTo(&buf, slog.LevelWarn))

	log.Info("dropped")

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestCloudRunHandlerKeepsStaticAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewCloudRunHandlerTo(&buf, slog.LevelDebug)).
		With("session_id", "s-1").
		WithGroup("page")

	log.Debug("page switched", "id", "ekonomi")

	data := decodeLine(t, &buf)["data"].(map[string]any)
	if data["session_id"] != "s-1" {
		t.Fatalf("expected session_id attr, got %v", data)
	}
	if data["page.id"] != "ekonomi" {
		t.Fatalf("expected grouped attr page.id, got %v", data)
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected default logger")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
