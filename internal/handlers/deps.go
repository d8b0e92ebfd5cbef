package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/village-dashboard/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	SessionSvc      SessionService
	CatalogSvc      CatalogService
}
