package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/GregMSThompson/village-dashboard/internal/dto"
	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/export"
	"github.com/GregMSThompson/village-dashboard/internal/models"
	"github.com/GregMSThompson/village-dashboard/pkg/logger"
)

// sessionStore keeps one dashboard per browser session.
type sessionStore interface {
	Put(ctx context.Context, id string, d *Dashboard)
	Get(ctx context.Context, id string) (*Dashboard, error)
	Delete(ctx context.Context, id string)
}

// DashboardFactory builds a fresh, not yet started dashboard.
type DashboardFactory func() (*Dashboard, error)

type sessionService struct {
	store        sessionStore
	newDashboard DashboardFactory
}

func NewSessionService(store sessionStore, factory DashboardFactory) *sessionService {
	return &sessionService{store: store, newDashboard: factory}
}

func (s *sessionService) Create(ctx context.Context) (dto.SessionResponse, error) {
	id := uuid.New().String()
	log, ctx := logger.With(ctx, "session_id", id)

	d, err := s.newDashboard()
	if err != nil {
		return dto.SessionResponse{}, err
	}
	if err := d.Start(ctx); err != nil {
		return dto.SessionResponse{}, err
	}
	s.store.Put(ctx, id, d)
	log.Info("session started", "charts_enabled", d.ChartsEnabled())
	return sessionResponse(id, d), nil
}

func (s *sessionService) Get(ctx context.Context, id string) (dto.SessionResponse, error) {
	d, err := s.store.Get(ctx, id)
	if err != nil {
		return dto.SessionResponse{}, err
	}
	return sessionResponse(id, d), nil
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	s.store.Delete(ctx, id)
	return nil
}

func (s *sessionService) SwitchPage(ctx context.Context, id string, req dto.SwitchPageRequest) (dto.SessionResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.SessionResponse{}, err
	}
	page, ok := models.ParsePage(req.PageID)
	if !ok {
		return dto.SessionResponse{}, errs.NewValidationError("unknown page: " + req.PageID)
	}
	d, err := s.store.Get(ctx, id)
	if err != nil {
		return dto.SessionResponse{}, err
	}
	if err := d.SwitchToPage(ctx, page); err != nil {
		return dto.SessionResponse{}, err
	}
	return sessionResponse(id, d), nil
}

func (s *sessionService) SelectYear(ctx context.Context, id string, req dto.SelectYearRequest) (dto.SessionResponse, error) {
	if err := validateRequest(req); err != nil {
		return dto.SessionResponse{}, err
	}
	d, err := s.store.Get(ctx, id)
	if err != nil {
		return dto.SessionResponse{}, err
	}
	if err := d.SelectYear(ctx, req.SelectorID, req.Year); err != nil {
		return dto.SessionResponse{}, err
	}
	return sessionResponse(id, d), nil
}

// ExportTable renders the current rows of a table widget in the requested
// format.
func (s *sessionService) ExportTable(ctx context.Context, id, tableID string, q dto.ExportQuery) (dto.ExportFile, error) {
	if err := validateRequest(q); err != nil {
		return dto.ExportFile{}, err
	}
	d, err := s.store.Get(ctx, id)
	if err != nil {
		return dto.ExportFile{}, err
	}
	spec, rows, err := d.TableData(tableID)
	if err != nil {
		return dto.ExportFile{}, err
	}

	var buf bytes.Buffer
	file := dto.ExportFile{Filename: fmt.Sprintf("%s.%s", tableID, q.Format)}
	switch q.Format {
	case dto.ExportFormatCSV:
		file.ContentType = export.ContentTypeCSV
		err = export.WriteCSV(&buf, spec, rows)
	case dto.ExportFormatXLSX:
		file.ContentType = export.ContentTypeXLSX
		err = export.WriteXLSX(&buf, tableID, spec, rows)
	}
	if err != nil {
		return dto.ExportFile{}, fmt.Errorf("export %s: %w", tableID, err)
	}
	file.Data = buf.Bytes()
	return file, nil
}

func sessionResponse(id string, d *Dashboard) dto.SessionResponse {
	snap := d.Snapshot()
	return dto.SessionResponse{
		SessionID:     id,
		ActivePage:    snap.ActivePage,
		ActiveYear:    d.ActiveYear(),
		ChartsEnabled: d.ChartsEnabled(),
		View:          snap,
	}
}
