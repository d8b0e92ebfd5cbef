package dto

import (
	"github.com/GregMSThompson/village-dashboard/internal/models"
	"github.com/GregMSThompson/village-dashboard/internal/view"
)

type SwitchPageRequest struct {
	PageID string `json:"pageId" validate:"required"`
}

type SelectYearRequest struct {
	SelectorID string `json:"selectorId" validate:"required"`
	Year       string `json:"year" validate:"required,numeric,len=4"`
}

// SessionResponse is the full view state of one dashboard session.
type SessionResponse struct {
	SessionID     string         `json:"sessionId"`
	ActivePage    models.PageID  `json:"activePage"`
	ActiveYear    models.YearKey `json:"activeYear"`
	ChartsEnabled bool           `json:"chartsEnabled"`
	View          view.Snapshot  `json:"view"`
}
