package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/village-dashboard/internal/dto"
	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/internal/models"
)

const testSessionID = "8f14e45f-ceea-4e7a-9b1e-2f1d3c4b5a69"

// --- Stub service ---

type stubSessionService struct {
	resp      dto.SessionResponse
	err       error
	file      dto.ExportFile
	lastID    string
	lastPage  dto.SwitchPageRequest
	lastYear  dto.SelectYearRequest
	lastTable string
	lastQuery dto.ExportQuery
	deleted   bool
}

func (s *stubSessionService) Create(_ context.Context) (dto.SessionResponse, error) {
	return s.resp, s.err
}

func (s *stubSessionService) Get(_ context.Context, id string) (dto.SessionResponse, error) {
	s.lastID = id
	return s.resp, s.err
}

func (s *stubSessionService) Delete(_ context.Context, id string) error {
	s.lastID = id
	s.deleted = true
	return s.err
}

func (s *stubSessionService) SwitchPage(_ context.Context, id string, req dto.SwitchPageRequest) (dto.SessionResponse, error) {
	s.lastID = id
	s.lastPage = req
	return s.resp, s.err
}

func (s *stubSessionService) SelectYear(_ context.Context, id string, req dto.SelectYearRequest) (dto.SessionResponse, error) {
	s.lastID = id
	s.lastYear = req
	return s.resp, s.err
}

func (s *stubSessionService) ExportTable(_ context.Context, id, tableID string, q dto.ExportQuery) (dto.ExportFile, error) {
	s.lastID = id
	s.lastTable = tableID
	s.lastQuery = q
	return s.file, s.err
}

// --- Tests ---

func TestCreateSession_OK(t *testing.T) {
	svc := &stubSessionService{resp: dto.SessionResponse{SessionID: testSessionID, ActivePage: models.PageDashboard}}
	resp := &stubResponseHandler{}
	h := NewSessionHandlers(&Deps{ResponseHandler: resp, SessionSvc: svc})

	rr := httptest.NewRecorder()
	h.CreateSession(rr, httptest.NewRequest(http.MethodPost, "/sessions", nil))

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("expected WriteSuccess with 201, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
}

func TestGetSession_ServiceError(t *testing.T) {
	svc := &stubSessionService{err: errs.NewNotFoundError("session not found")}
	resp := &stubResponseHandler{}
	h := NewSessionHandlers(&Deps{ResponseHandler: resp, SessionSvc: svc})

	req := withSession(httptest.NewRequest(http.MethodGet, "/sessions/"+testSessionID, nil), testSessionID)
	h.GetSession(httptest.NewRecorder(), req)

	if !resp.handleErrorCalled {
		t.Fatal("expected HandleError to be called")
	}
	if svc.lastID != testSessionID {
		t.Errorf("expected session id %s, got %s", testSessionID, svc.lastID)
	}
}

func TestDeleteSession_OK(t *testing.T) {
	svc := &stubSessionService{}
	resp := &stubResponseHandler{}
	h := NewSessionHandlers(&Deps{ResponseHandler: resp, SessionSvc: svc})

	req := withSession(httptest.NewRequest(http.MethodDelete, "/sessions/"+testSessionID, nil), testSessionID)
	h.DeleteSession(httptest.NewRecorder(), req)

	if !svc.deleted || !resp.writeSuccessCalled {
		t.Fatal("expected delete to reach the service and succeed")
	}
}

func TestSwitchPage_OK(t *testing.T) {
	svc := &stubSessionService{resp: dto.SessionResponse{ActivePage: models.PageEkonomi}}
	resp := &stubResponseHandler{}
	h := NewSessionHandlers(&Deps{ResponseHandler: resp, SessionSvc: svc})

	req := httptest.NewRequest(http.MethodPut, "/sessions/"+testSessionID+"/page", strings.NewReader(`{"pageId":"ekonomi"}`))
	req = withSession(req, testSessionID)
	h.SwitchPage(httptest.NewRecorder(), req)

	if svc.lastPage.PageID != "ekonomi" {
		t.Errorf("expected pageId ekonomi, got %q", svc.lastPage.PageID)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200")
	}
}

func TestSwitchPage_BadBody(t *testing.T) {
	svc := &stubSessionService{}
	resp := &stubResponseHandler{}
	h := NewSessionHandlers(&Deps{ResponseHandler: resp, SessionSvc: svc})

	req := withSession(httptest.NewRequest(http.MethodPut, "/page", strings.NewReader(`{`)), testSessionID)
	h.SwitchPage(httptest.NewRecorder(), req)

	var ve *errs.ValidationError
	if !resp.handleErrorCalled || !errors.As(resp.handleError, &ve) {
		t.Fatalf("expected ValidationError, got %v", resp.handleError)
	}
}

func TestSelectYear_OK(t *testing.T) {
	svc := &stubSessionService{resp: dto.SessionResponse{ActiveYear: models.Year2023}}
	resp := &stubResponseHandler{}
	h := NewSessionHandlers(&Deps{ResponseHandler: resp, SessionSvc: svc})

	body := `{"selectorId":"economy-year-select","year":"2023"}`
	req := withSession(httptest.NewRequest(http.MethodPut, "/year", strings.NewReader(body)), testSessionID)
	h.SelectYear(httptest.NewRecorder(), req)

	if svc.lastYear.SelectorID != "economy-year-select" || svc.lastYear.Year != "2023" {
		t.Errorf("unexpected request forwarded: %+v", svc.lastYear)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess")
	}
}

func TestSelectYear_UnsupportedYear(t *testing.T) {
	svc := &stubSessionService{err: errs.NewUnsupportedYearError("2022")}
	resp := &stubResponseHandler{}
	h := NewSessionHandlers(&Deps{ResponseHandler: resp, SessionSvc: svc})

	body := `{"selectorId":"year-select","year":"2022"}`
	req := withSession(httptest.NewRequest(http.MethodPut, "/year", strings.NewReader(body)), testSessionID)
	h.SelectYear(httptest.NewRecorder(), req)

	var yerr *errs.UnsupportedYearError
	if !errors.As(resp.handleError, &yerr) {
		t.Fatalf("expected UnsupportedYearError, got %v", resp.handleError)
	}
}

func TestExportTable_OK(t *testing.T) {
	svc := &stubSessionService{file: dto.ExportFile{Filename: "umkmTable.csv", ContentType: "text/csv", Data: []byte("No\n")}}
	resp := &stubResponseHandler{}
	h := NewSessionHandlers(&Deps{ResponseHandler: resp, SessionSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/tables/umkmTable/export?format=csv", nil)
	req = withChiParam(req, "tableId", "umkmTable")
	req = withSession(req, testSessionID)
	rr := httptest.NewRecorder()
	h.ExportTable(rr, req)

	if svc.lastTable != "umkmTable" || svc.lastQuery.Format != "csv" {
		t.Errorf("unexpected export args: %s %+v", svc.lastTable, svc.lastQuery)
	}
	if !resp.writeFileCalled || resp.writeFileName != "umkmTable.csv" {
		t.Fatalf("expected WriteFile with umkmTable.csv")
	}
	if rr.Body.String() != "No\n" {
		t.Errorf("unexpected body %q", rr.Body.String())
	}
}

func TestSessionRoutes_RejectsMalformedSessionID(t *testing.T) {
	svc := &stubSessionService{}
	resp := &stubResponseHandler{}
	h := NewSessionHandlers(&Deps{ResponseHandler: resp, SessionSvc: svc})

	rr := httptest.NewRecorder()
	h.SessionRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/not-a-uuid", nil))

	var ve *errs.ValidationError
	if !errors.As(resp.handleError, &ve) {
		t.Fatalf("expected ValidationError, got %v", resp.handleError)
	}
	if svc.lastID != "" {
		t.Error("service must not be called")
	}
}
