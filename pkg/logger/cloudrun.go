package logger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// CloudRunHandler implements slog.Handler and writes one JSON object per line
// in the structured format Cloud Logging understands.
type CloudRunHandler struct {
	level  slog.Level
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

func NewCloudRunHandler(level slog.Level) slog.Handler {
	return NewCloudRunHandlerTo(os.Stdout, level)
}

// NewCloudRunHandlerTo writes to out instead of stdout.
func NewCloudRunHandlerTo(out io.Writer, level slog.Level) *CloudRunHandler {
	return &CloudRunHandler{level: level, out: out, mu: new(sync.Mutex)}
}

func (h *CloudRunHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *CloudRunHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"severity": mapSeverity(r.Level),
		"message":  r.Message,
		"time":     r.Time.Format(time.RFC3339Nano),
	}

	if len(h.attrs) > 0 || r.NumAttrs() > 0 {
		data := make(map[string]any, len(h.attrs)+r.NumAttrs())
		for _, a := range h.attrs {
			addAttr(data, "", a)
		}
		r.Attrs(func(a slog.Attr) bool {
			addAttr(data, h.prefix, a)
			return true
		})
		event["data"] = data
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Cloud Run: one stream for all severities
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(append(b, '\n'))
	return err
}

func (h *CloudRunHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	newH.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newH.attrs = append(newH.attrs, h.attrs...)
	for _, a := range attrs {
		newH.attrs = append(newH.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &newH
}

func (h *CloudRunHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.prefix = h.prefix + name + "."
	return &newH
}

// ---- Helpers ----

func mapSeverity(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	case level >= slog.LevelDebug:
		return "DEBUG"
	default:
		return "DEFAULT"
	}
}

func addAttr(data map[string]any, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			addAttr(data, prefix+a.Key+".", ga)
		}
		return
	}
	if err, ok := v.Any().(error); ok {
		data[prefix+a.Key] = err.Error()
		return
	}
	data[prefix+a.Key] = v.Any()
}
