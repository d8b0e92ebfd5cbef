package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/GregMSThompson/village-dashboard/internal/handlers"
	"github.com/GregMSThompson/village-dashboard/internal/middleware"
)

func NewRouter(deps *handlers.Deps, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}).Handler)

	sh := handlers.NewSessionHandlers(deps)
	ch := handlers.NewCatalogHandlers(deps)

	r.Mount("/sessions", sh.SessionRoutes())
	r.Mount("/", ch.CatalogRoutes())
	return r
}
