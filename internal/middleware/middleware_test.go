package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/village-dashboard/pkg/logger"
)

type stubResponseHandler struct {
	errCalled bool
	err       error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) WriteFile(w http.ResponseWriter, r *http.Request, filename, contentType string, data []byte) {
	w.WriteHeader(http.StatusOK)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.errCalled = true
	s.err = err
	w.WriteHeader(http.StatusBadRequest)
}

func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSession_SetsSessionID(t *testing.T) {
	const id = "8f14e45f-ceea-4e7a-9b1e-2f1d3c4b5a69"
	stub := &stubResponseHandler{}
	m := NewSessionMiddleware(stub)

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := withChiParam(httptest.NewRequest(http.MethodGet, "/sessions/"+id, nil), "sessionId", id)
	rr := httptest.NewRecorder()
	m.Session(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || got != id {
		t.Fatalf("expected session %s passed through, got %q (status %d)", id, got, rr.Code)
	}
	if stub.errCalled {
		t.Error("expected no error")
	}
}

func TestSession_RejectsMalformedID(t *testing.T) {
	stub := &stubResponseHandler{}
	m := NewSessionMiddleware(stub)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not run")
	})

	req := withChiParam(httptest.NewRequest(http.MethodGet, "/sessions/abc", nil), "sessionId", "abc")
	m.Session(next).ServeHTTP(httptest.NewRecorder(), req)

	if !stub.errCalled {
		t.Fatal("expected HandleError to be called")
	}
}

func TestLoggerMiddleware_AddsLogger(t *testing.T) {
	base := slog.New(logger.NewTestHandler(slog.LevelDebug))
	m := NewLoggerMiddleware(base)

	var got *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = logger.FromContext(r.Context())
	})

	h := chimiddleware.RequestID(m.LoggerMiddleware(next))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pages", nil))

	if got == nil || got == base {
		t.Fatal("expected a request-scoped logger in context")
	}
}

func TestLoggerMiddleware_LogsCompletion(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggerMiddleware(slog.New(logger.NewCloudRunHandlerTo(&buf, slog.LevelDebug)))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := chimiddleware.RequestID(m.LoggerMiddleware(next))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sessions/x", nil))

	var entry struct {
		Severity string         `json:"severity"`
		Message  string         `json:"message"`
		Data     map[string]any `json:"data"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected one json log line, got %q: %v", buf.String(), err)
	}
	if entry.Message != "request completed" || entry.Severity != "WARNING" {
		t.Errorf("unexpected entry %+v", entry)
	}
	if entry.Data["status"] != float64(http.StatusNotFound) {
		t.Errorf("expected status 404, got %v", entry.Data["status"])
	}
}

func TestCompletionLevel(t *testing.T) {
	cases := map[int]slog.Level{
		http.StatusOK:                  slog.LevelDebug,
		http.StatusBadRequest:          slog.LevelWarn,
		http.StatusInternalServerError: slog.LevelError,
	}
	for status, want := range cases {
		if got := completionLevel(status); got != want {
			t.Errorf("status %d: expected %v, got %v", status, want, got)
		}
	}
}
