package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/GregMSThompson/village-dashboard/internal/dto"
	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/export"
	"github.com/GregMSThompson/village-dashboard/internal/models"
	"github.com/GregMSThompson/village-dashboard/internal/store"
	"github.com/GregMSThompson/village-dashboard/internal/view"
	"github.com/GregMSThompson/village-dashboard/pkg/helpers"
)

type fakeSessionStore struct {
	sessions map[string]*Dashboard
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*Dashboard)}
}

func (f *fakeSessionStore) Put(_ context.Context, id string, d *Dashboard) {
	f.sessions[id] = d
}

func (f *fakeSessionStore) Get(_ context.Context, id string) (*Dashboard, error) {
	d, ok := f.sessions[id]
	if !ok {
		return nil, errs.NewNotFoundError("session not found")
	}
	return d, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, id string) {
	delete(f.sessions, id)
}

func testFactory() (*Dashboard, error) {
	return NewDashboard(DefaultLayout(), store.NewCatalogStore(), view.NewTableEngine(),
		WithCharts(view.NewChartEngine("apexcharts")))
}

func TestSessionService_CreateAndGet(t *testing.T) {
	sessions := newFakeSessionStore()
	svc := NewSessionService(sessions, testFactory)
	ctx := helpers.TestCtx()

	created, err := svc.Create(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.SessionID == "" {
		t.Fatal("expected session id")
	}
	if created.ActivePage != models.PageDashboard || created.ActiveYear != models.Year2024 || !created.ChartsEnabled {
		t.Errorf("unexpected initial session: %+v", created)
	}
	if len(sessions.sessions) != 1 {
		t.Fatalf("expected session stored, got %d", len(sessions.sessions))
	}

	got, err := svc.Get(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SessionID != created.SessionID {
		t.Errorf("expected %s, got %s", created.SessionID, got.SessionID)
	}
}

func TestSessionService_CreateFactoryError(t *testing.T) {
	svc := NewSessionService(newFakeSessionStore(), func() (*Dashboard, error) {
		return nil, errors.New("boom")
	})
	if _, err := svc.Create(helpers.TestCtx()); err == nil {
		t.Fatal("expected factory error")
	}
}

func TestSessionService_UnknownSession(t *testing.T) {
	svc := NewSessionService(newFakeSessionStore(), testFactory)
	var nf *errs.NotFoundError
	if _, err := svc.Get(helpers.TestCtx(), "nope"); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if err := svc.Delete(helpers.TestCtx(), "nope"); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestSessionService_SwitchPage(t *testing.T) {
	svc := NewSessionService(newFakeSessionStore(), testFactory)
	ctx := helpers.TestCtx()
	created, _ := svc.Create(ctx)

	resp, err := svc.SwitchPage(ctx, created.SessionID, dto.SwitchPageRequest{PageID: "kesehatan"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ActivePage != models.PageKesehatan {
		t.Errorf("expected kesehatan, got %q", resp.ActivePage)
	}

	var ve *errs.ValidationError
	if _, err := svc.SwitchPage(ctx, created.SessionID, dto.SwitchPageRequest{PageID: "laporan"}); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for unknown page, got %v", err)
	}
	if _, err := svc.SwitchPage(ctx, created.SessionID, dto.SwitchPageRequest{}); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for empty page, got %v", err)
	}
}

func TestSessionService_SelectYear(t *testing.T) {
	svc := NewSessionService(newFakeSessionStore(), testFactory)
	ctx := helpers.TestCtx()
	created, _ := svc.Create(ctx)

	resp, err := svc.SelectYear(ctx, created.SessionID, dto.SelectYearRequest{SelectorID: "year-select", Year: "2023"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ActiveYear != models.Year2023 {
		t.Errorf("expected 2023, got %s", resp.ActiveYear)
	}

	var ve *errs.ValidationError
	if _, err := svc.SelectYear(ctx, created.SessionID, dto.SelectYearRequest{SelectorID: "year-select", Year: "latest"}); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	var yerr *errs.UnsupportedYearError
	if _, err := svc.SelectYear(ctx, created.SessionID, dto.SelectYearRequest{SelectorID: "year-select", Year: "2019"}); !errors.As(err, &yerr) {
		t.Errorf("expected UnsupportedYearError, got %v", err)
	}
}

func TestSessionService_ExportTable(t *testing.T) {
	svc := NewSessionService(newFakeSessionStore(), testFactory)
	ctx := helpers.TestCtx()
	created, _ := svc.Create(ctx)

	file, err := svc.ExportTable(ctx, created.SessionID, PopulationTableID, dto.ExportQuery{Format: dto.ExportFormatCSV})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Filename != "populationTable.csv" || file.ContentType != export.ContentTypeCSV {
		t.Errorf("unexpected file meta: %s %s", file.Filename, file.ContentType)
	}
	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	if err != nil {
		t.Fatalf("failed to read csv: %v", err)
	}
	if len(records) != PopulationTableSize+1 {
		t.Errorf("expected header + %d rows, got %d", PopulationTableSize, len(records))
	}
	if records[1][6] != "Rp 5.175.000" {
		t.Errorf("expected first income Rp 5.175.000, got %q", records[1][6])
	}

	xlsx, err := svc.ExportTable(ctx, created.SessionID, PopulationTableID, dto.ExportQuery{Format: dto.ExportFormatXLSX})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if xlsx.ContentType != export.ContentTypeXLSX || len(xlsx.Data) == 0 {
		t.Errorf("unexpected xlsx export: %s, %d bytes", xlsx.ContentType, len(xlsx.Data))
	}

	var ve *errs.ValidationError
	if _, err := svc.ExportTable(ctx, created.SessionID, PopulationTableID, dto.ExportQuery{Format: "pdf"}); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for pdf, got %v", err)
	}
	var nf *errs.NotFoundError
	if _, err := svc.ExportTable(ctx, created.SessionID, "umkmTable", dto.ExportQuery{Format: "csv"}); !errors.As(err, &nf) {
		t.Errorf("expected NotFoundError for uninitialized table, got %v", err)
	}
}

func TestCatalogService(t *testing.T) {
	svc := NewCatalogService()
	ctx := helpers.TestCtx()

	pages := svc.Pages(ctx)
	if len(pages) != len(models.Pages) {
		t.Fatalf("expected %d pages, got %d", len(models.Pages), len(pages))
	}
	if !pages[0].YearAware || pages[0].ID != models.PageDashboard {
		t.Errorf("expected year-aware dashboard first, got %+v", pages[0])
	}

	years := svc.Years(ctx)
	if years.Default != models.Year2024 || len(years.Years) != 2 {
		t.Errorf("unexpected years: %+v", years)
	}

	resp, err := svc.Population(ctx, dto.PopulationQuery{Count: 5, Year: "2023"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Records) != 5 || resp.Year != models.Year2023 {
		t.Errorf("unexpected population response: %+v", resp)
	}

	var ve *errs.ValidationError
	if _, err := svc.Population(ctx, dto.PopulationQuery{Count: 5000, Year: "2023"}); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for oversized count, got %v", err)
	}
	var yerr *errs.UnsupportedYearError
	if _, err := svc.Population(ctx, dto.PopulationQuery{Count: 5, Year: "2030"}); !errors.As(err, &yerr) {
		t.Errorf("expected UnsupportedYearError, got %v", err)
	}
}
