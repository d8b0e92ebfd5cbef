package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/village-dashboard/internal/dto"
	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/models"
	"github.com/GregMSThompson/village-dashboard/internal/response"
)

const defaultPopulationCount = 100

type CatalogService interface {
	Pages(ctx context.Context) []dto.PageCatalogEntry
	Years(ctx context.Context) dto.YearsResponse
	Population(ctx context.Context, q dto.PopulationQuery) (dto.PopulationResponse, error)
}

type catalogHandlers struct {
	ResponseHandler response.ResponseHandler
	CatalogSvc      CatalogService
}

func NewCatalogHandlers(deps *Deps) *catalogHandlers {
	return &catalogHandlers{
		ResponseHandler: deps.ResponseHandler,
		CatalogSvc:      deps.CatalogSvc,
	}
}

func (h *catalogHandlers) CatalogRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/pages", h.GetPages)
	r.Get("/years", h.GetYears)
	r.Get("/population", h.GetPopulation)
	return r
}

func (h *catalogHandlers) GetPages(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.CatalogSvc.Pages(r.Context()))
}

func (h *catalogHandlers) GetYears(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.CatalogSvc.Years(r.Context()))
}

// GetPopulation serves generated sample records. count defaults to the
// population table size and year to the latest year.
func (h *catalogHandlers) GetPopulation(w http.ResponseWriter, r *http.Request) {
	q := dto.PopulationQuery{Count: defaultPopulationCount, Year: string(models.LatestYear())}

	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("count must be an integer"))
			return
		}
		q.Count = n
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		q.Year = raw
	}

	resp, err := h.CatalogSvc.Population(r.Context(), q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}
