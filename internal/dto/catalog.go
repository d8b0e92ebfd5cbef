package dto

import "github.com/GregMSThompson/village-dashboard/internal/models"

// PageCatalogEntry describes one page of the dashboard menu.
type PageCatalogEntry struct {
	ID           models.PageID `json:"id"`
	Label        string        `json:"label"`
	ElementID    string        `json:"elementId"`
	YearAware    bool          `json:"yearAware"`
	YearSelector string        `json:"yearSelector,omitempty"`
	Charts       []string      `json:"charts"`
	Tables       []string      `json:"tables"`
	Blocks       []string      `json:"blocks"`
}

type YearsResponse struct {
	Years   []models.YearKey `json:"years"`
	Default models.YearKey   `json:"default"`
}

type PopulationQuery struct {
	Count int    `validate:"gte=0,lte=1000"`
	Year  string `validate:"required"`
}

type PopulationResponse struct {
	Year    models.YearKey            `json:"year"`
	Columns []string                  `json:"columns"`
	Records []models.PopulationRecord `json:"records"`
}
