package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/village-dashboard/internal/errs"
	"github.com/GregMSThompson/village-dashboard/pkg/helpers"
	"github.com/GregMSThompson/village-dashboard/pkg/logger"
)

func testHandler() *responseHandler {
	return New(slog.New(logger.NewTestHandler(slog.LevelDebug)))
}

func testRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/", nil).WithContext(helpers.TestCtx())
}

func TestWriteSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	testHandler().WriteSuccess(rr, testRequest(), http.StatusCreated, map[string]string{"year": "2024"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	var body struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !body.Success || body.Data["year"] != "2024" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", errs.NewNotFoundError("session not found"), http.StatusNotFound, "not_found"},
		{"validation", errs.NewValidationError("bad"), http.StatusBadRequest, "invalid_input"},
		{"year", errs.NewUnsupportedYearError("2022"), http.StatusBadRequest, "unsupported_year"},
		{"table", errs.NewTableStateError("umkmTable", "boom"), http.StatusConflict, "table_state"},
		{"unknown", errors.New("kaboom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			testHandler().HandleError(rr, testRequest(), tt.err)

			if rr.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
			var body ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, body.Code)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	rr := httptest.NewRecorder()
	testHandler().WriteFile(rr, testRequest(), "umkmTable.csv", "text/csv", []byte("No\n1\n"))

	if got := rr.Header().Get("Content-Disposition"); got != `attachment; filename="umkmTable.csv"` {
		t.Errorf("unexpected disposition %q", got)
	}
	if rr.Body.String() != "No\n1\n" {
		t.Errorf("unexpected body %q", rr.Body.String())
	}
}
