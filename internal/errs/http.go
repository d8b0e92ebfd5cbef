package errs

import (
	"errors"
	"log/slog"
	"net/http"
)

// Classification is how an error surfaces over HTTP.
type Classification struct {
	Status  int
	Code    string
	Message string
	Level   slog.Level
}

// Classify maps a domain error to its HTTP status, error code, client-facing
// message and log level. Unknown errors are internal and never leak details.
func Classify(err error) Classification {
	var (
		notFound    *NotFoundError
		validation  *ValidationError
		year        *UnsupportedYearError
		chartEngine *ChartEngineUnavailableError
		tableState  *TableStateError
	)

	switch {
	case errors.As(err, &notFound):
		return Classification{http.StatusNotFound, "not_found", notFound.Message, slog.LevelWarn}
	case errors.As(err, &validation):
		return Classification{http.StatusBadRequest, "invalid_input", validation.Message, slog.LevelWarn}
	case errors.As(err, &year):
		return Classification{http.StatusBadRequest, "unsupported_year", year.Message, slog.LevelWarn}
	case errors.As(err, &chartEngine):
		return Classification{http.StatusServiceUnavailable, "charts_unavailable", chartEngine.Message, slog.LevelError}
	case errors.As(err, &tableState):
		return Classification{http.StatusConflict, "table_state", tableState.Message, slog.LevelError}
	default:
		return Classification{http.StatusInternalServerError, "internal_error", "An unexpected error occurred", slog.LevelError}
	}
}
