package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/village-dashboard/internal/dto"
	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/middleware"
	"github.com/GregMSThompson/village-dashboard/internal/response"
)

type SessionService interface {
	Create(ctx context.Context) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
	Delete(ctx context.Context, id string) error
	SwitchPage(ctx context.Context, id string, req dto.SwitchPageRequest) (dto.SessionResponse, error)
	SelectYear(ctx context.Context, id string, req dto.SelectYearRequest) (dto.SessionResponse, error)
	ExportTable(ctx context.Context, id, tableID string, q dto.ExportQuery) (dto.ExportFile, error)
}

type sessionHandlers struct {
	ResponseHandler response.ResponseHandler
	SessionSvc      SessionService
}

func NewSessionHandlers(deps *Deps) *sessionHandlers {
	return &sessionHandlers{
		ResponseHandler: deps.ResponseHandler,
		SessionSvc:      deps.SessionSvc,
	}
}

func (h *sessionHandlers) SessionRoutes() chi.Router {
	r := chi.NewRouter()
	sm := middleware.NewSessionMiddleware(h.ResponseHandler)

	r.Post("/", h.CreateSession)
	r.Route("/{sessionId}", func(r chi.Router) {
		r.Use(sm.Session)
		r.Get("/", h.GetSession)
		r.Delete("/", h.DeleteSession)
		r.Put("/page", h.SwitchPage)
		r.Put("/year", h.SelectYear)
		r.Get("/tables/{tableId}/export", h.ExportTable)
	})
	return r
}

func (h *sessionHandlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.SessionSvc.Create(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, resp)
}

func (h *sessionHandlers) GetSession(w http.ResponseWriter, r *http.Request) {
	id := middleware.SessionID(r.Context())
	resp, err := h.SessionSvc.Get(r.Context(), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *sessionHandlers) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := middleware.SessionID(r.Context())
	if err := h.SessionSvc.Delete(r.Context(), id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *sessionHandlers) SwitchPage(w http.ResponseWriter, r *http.Request) {
	var req dto.SwitchPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	id := middleware.SessionID(r.Context())
	resp, err := h.SessionSvc.SwitchPage(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *sessionHandlers) SelectYear(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectYearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	id := middleware.SessionID(r.Context())
	resp, err := h.SessionSvc.SelectYear(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *sessionHandlers) ExportTable(w http.ResponseWriter, r *http.Request) {
	id := middleware.SessionID(r.Context())
	tableID := chi.URLParam(r, "tableId")
	q := dto.ExportQuery{Format: r.URL.Query().Get("format")}

	file, err := h.SessionSvc.ExportTable(r.Context(), id, tableID, q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteFile(w, r, file.Filename, file.ContentType, file.Data)
}
