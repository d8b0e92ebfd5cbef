package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/village-dashboard/internal/middleware"
)

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	writeFileCalled      bool
	writeFileName        string
	writeFileContentType string

	handleErrorCalled bool
	handleError       error

	errorWriteCalled bool
	errorWriteStatus int
	errorWriteCode   string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteFile(w http.ResponseWriter, r *http.Request, filename, contentType string, data []byte) {
	s.writeFileCalled = true
	s.writeFileName = filename
	s.writeFileContentType = contentType
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.errorWriteCalled = true
	s.errorWriteStatus = status
	s.errorWriteCode = code
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

// withSession injects a session id into the request context.
func withSession(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.SessionIDKey, id)
	return r.WithContext(ctx)
}

// withChiParam injects a chi URL parameter into the request context.
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}
