package services

import (
	"context"

	"github.com/GregMSThompson/village-dashboard/internal/dto"
	"github.com/GregMSThompson/village-dashboard/internal/models"
)

type catalogService struct{}

func NewCatalogService() *catalogService {
	return &catalogService{}
}

// Pages lists every page with the containers its initializer fills.
func (s *catalogService) Pages(_ context.Context) []dto.PageCatalogEntry {
	out := make([]dto.PageCatalogEntry, 0, len(pageSpecs))
	for _, spec := range pageSpecs {
		tables := append([]string{}, spec.tables...)
		if spec.page == models.PagePenduduk {
			tables = append(tables, PopulationTableID)
		}
		out = append(out, dto.PageCatalogEntry{
			ID:           spec.page,
			Label:        spec.page.Label(),
			ElementID:    spec.page.ElementID(),
			YearAware:    spec.yearAware,
			YearSelector: spec.yearSelector,
			Charts:       spec.chartIDs(),
			Tables:       tables,
			Blocks:       append([]string{}, spec.blocks...),
		})
	}
	return out
}

func (s *catalogService) Years(_ context.Context) dto.YearsResponse {
	return dto.YearsResponse{
		Years:   append([]models.YearKey(nil), models.SupportedYears...),
		Default: models.LatestYear(),
	}
}

// Population generates sample records for a supported year.
func (s *catalogService) Population(_ context.Context, q dto.PopulationQuery) (dto.PopulationResponse, error) {
	if err := validateRequest(q); err != nil {
		return dto.PopulationResponse{}, err
	}
	year, err := models.ParseYear(q.Year)
	if err != nil {
		return dto.PopulationResponse{}, err
	}
	return dto.PopulationResponse{
		Year:    year,
		Columns: models.PopulationColumns,
		Records: GenerateSamplePopulationData(q.Count, year),
	}, nil
}
