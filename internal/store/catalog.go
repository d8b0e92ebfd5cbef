package store

import (
	"context"

	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/models"
)

// CatalogStore serves the immutable per-year metric snapshots, chart
// datasets and static tables. Lookups never mutate.
type CatalogStore struct {
	metrics  map[models.YearKey]models.MetricSnapshot
	datasets map[models.PageID][]models.ChartDataset
	tables   map[string]models.StaticTable
	blocks   map[string]models.Block
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		metrics:  metricSnapshots,
		datasets: indexDatasets(chartDatasets),
		tables:   indexTables(staticTables),
		blocks:   staticBlocks,
	}
}

func (s *CatalogStore) Metrics(_ context.Context, year models.YearKey) (models.MetricSnapshot, error) {
	snap, ok := s.metrics[year]
	if !ok {
		return models.MetricSnapshot{}, errs.NewUnsupportedYearError(string(year))
	}
	return snap, nil
}

// Dataset returns the chart dataset of a page for a year. Single-year pages
// answer every supported year with their only dataset.
func (s *CatalogStore) Dataset(_ context.Context, page models.PageID, year models.YearKey) (models.ChartDataset, error) {
	sets, ok := s.datasets[page]
	if !ok {
		return models.ChartDataset{}, errs.NewNotFoundError("no chart data for page " + string(page))
	}
	for _, d := range sets {
		if d.Year == year {
			return d, nil
		}
	}
	if len(sets) == 1 && sets[0].YearIndependent && year.Supported() {
		return sets[0], nil
	}
	return models.ChartDataset{}, errs.NewUnsupportedYearError(string(year))
}

func (s *CatalogStore) Table(_ context.Context, id string) (models.StaticTable, error) {
	t, ok := s.tables[id]
	if !ok {
		return models.StaticTable{}, errs.NewNotFoundError("table not found: " + id)
	}
	return t, nil
}

func (s *CatalogStore) Block(_ context.Context, id string) (models.Block, error) {
	b, ok := s.blocks[id]
	if !ok {
		return models.Block{}, errs.NewNotFoundError("block not found: " + id)
	}
	return b, nil
}

func indexDatasets(sets []models.ChartDataset) map[models.PageID][]models.ChartDataset {
	out := make(map[models.PageID][]models.ChartDataset)
	for _, d := range sets {
		out[d.Page] = append(out[d.Page], d)
	}
	return out
}

func indexTables(tables []models.StaticTable) map[string]models.StaticTable {
	out := make(map[string]models.StaticTable, len(tables))
	for _, t := range tables {
		out[t.ID] = t
	}
	return out
}
