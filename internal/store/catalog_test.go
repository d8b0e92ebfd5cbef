package store

import (
	"errors"
	"testing"

	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/models"
	"github.com/GregMSThompson/village-dashboard/pkg/helpers"
)

func TestCatalogStore_MetricsResolveForEverySupportedYear(t *testing.T) {
	s := NewCatalogStore()
	for _, y := range models.SupportedYears {
		snap, err := s.Metrics(helpers.TestCtx(), y)
		if err != nil {
			t.Fatalf("year %s: unexpected error %v", y, err)
		}
		for _, ind := range models.Indicators {
			if _, ok := snap.Metrics[ind]; !ok {
				t.Errorf("year %s: missing indicator %s", y, ind)
			}
		}
	}
}

func TestCatalogStore_MetricsUnsupportedYear(t *testing.T) {
	_, err := NewCatalogStore().Metrics(helpers.TestCtx(), "2022")
	var yerr *errs.UnsupportedYearError
	if !errors.As(err, &yerr) {
		t.Fatalf("expected UnsupportedYearError, got %v", err)
	}
	if yerr.Year != "2022" {
		t.Errorf("expected year 2022, got %q", yerr.Year)
	}
}

func TestCatalogStore_Metrics2024Values(t *testing.T) {
	snap, err := NewCatalogStore().Metrics(helpers.TestCtx(), models.Year2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pop := snap.Metrics[models.IndicatorPopulation]
	if pop.Value != "3,721" || pop.Trend != "+5.1%" {
		t.Errorf("unexpected population metric: %+v", pop)
	}
	if snap.PopulationCount != 3721 {
		t.Errorf("expected population count 3721, got %d", snap.PopulationCount)
	}
}

func TestCatalogStore_DashboardDatasetPerYear(t *testing.T) {
	s := NewCatalogStore()
	for _, y := range models.SupportedYears {
		ds, err := s.Dataset(helpers.TestCtx(), models.PageDashboard, y)
		if err != nil {
			t.Fatalf("year %s: unexpected error %v", y, err)
		}
		if ds.Year != y {
			t.Errorf("expected dataset for %s, got %s", y, ds.Year)
		}
		pop, ok := ds.Bundle("populationChart")
		if !ok {
			t.Fatalf("year %s: missing populationChart", y)
		}
		if last := pop.Categories[len(pop.Categories)-1]; last != string(y) {
			t.Errorf("year %s: population series ends at %s", y, last)
		}
	}
}

func TestCatalogStore_YearIndependentPagesServeEveryYear(t *testing.T) {
	s := NewCatalogStore()
	for _, p := range models.Pages {
		if p == models.PageDashboard {
			continue
		}
		for _, y := range models.SupportedYears {
			ds, err := s.Dataset(helpers.TestCtx(), p, y)
			if err != nil {
				t.Fatalf("page %s year %s: unexpected error %v", p, y, err)
			}
			if !ds.YearIndependent {
				t.Errorf("page %s: expected year-independent dataset", p)
			}
		}
	}
}

func TestCatalogStore_DatasetErrors(t *testing.T) {
	s := NewCatalogStore()

	_, err := s.Dataset(helpers.TestCtx(), models.PageStatistics, "1999")
	var yerr *errs.UnsupportedYearError
	if !errors.As(err, &yerr) {
		t.Errorf("expected UnsupportedYearError, got %v", err)
	}

	_, err = s.Dataset(helpers.TestCtx(), "unknown", models.Year2024)
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestCatalogStore_TablesAndBlocks(t *testing.T) {
	s := NewCatalogStore()

	for _, id := range []string{"umkmTable", "industriTable", "perdaganganTable"} {
		tbl, err := s.Table(helpers.TestCtx(), id)
		if err != nil {
			t.Fatalf("table %s: unexpected error %v", id, err)
		}
		for i, row := range tbl.Rows {
			if len(row) != len(tbl.Spec.Columns) {
				t.Errorf("table %s row %d: %d cells for %d columns", id, i, len(row), len(tbl.Spec.Columns))
			}
		}
	}

	org, err := s.Block(helpers.TestCtx(), "orgChart")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := org.OrgLevels[0][0].Name; got != "Ahmad Sutanto" {
		t.Errorf("expected village head Ahmad Sutanto, got %q", got)
	}

	if _, err := s.Table(helpers.TestCtx(), "missing"); err == nil {
		t.Error("expected error for unknown table")
	}
}
