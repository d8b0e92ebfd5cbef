package view

import "github.com/GregMSThompson/village-dashboard/internal/models"

// PageLayout lists the elements a page section contains.
type PageLayout struct {
	Page         models.PageID
	YearSelector string
	Charts       []string
	Tables       []string
	Blocks       []string
}

// Layout describes which elements exist in a view document. Anything left
// out is simply absent and lookups for it come back empty.
type Layout struct {
	Menu         []models.PageID
	Pages        []PageLayout
	MetricPanels []models.Indicator
}
