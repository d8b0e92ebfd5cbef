package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/response"
	"github.com/GregMSThompson/village-dashboard/pkg/logger"
)

type sessionMiddleware struct {
	ResponseHandler response.ResponseHandler
}

func NewSessionMiddleware(rh response.ResponseHandler) *sessionMiddleware {
	return &sessionMiddleware{ResponseHandler: rh}
}

// context key
type contextKey string

const SessionIDKey contextKey = "session_id"

// Session reads the {sessionId} URL param, rejects malformed ids and adds
// the id to the request context and logger.
func (m *sessionMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "sessionId")
		id, err := uuid.Parse(raw)
		if err != nil {
			m.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid session id"))
			return
		}

		_, ctx := logger.With(r.Context(), "session_id", id.String())
		ctx = context.WithValue(ctx, SessionIDKey, id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to extract the session id
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}
