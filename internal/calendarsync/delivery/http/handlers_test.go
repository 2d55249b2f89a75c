package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/calendarsync"
	"productivity-calendar/internal/document/extractor"
	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/log"
)

type mockUseCase struct {
	in     calendarsync.SyncInput
	mailIn calendarsync.MailScanInput
	called string
	err    error
}

func (m *mockUseCase) SyncGoogle(ctx context.Context, sc model.Scope, input calendarsync.SyncInput) (calendarsync.SyncOutput, error) {
	m.in, m.called = input, "google"
	return calendarsync.SyncOutput{Fetched: 3, Created: 2, Unchanged: 1}, m.err
}

func (m *mockUseCase) SyncOutlook(ctx context.Context, sc model.Scope, input calendarsync.SyncInput) (calendarsync.SyncOutput, error) {
	m.in, m.called = input, "outlook"
	return calendarsync.SyncOutput{Fetched: 1, Created: 1}, m.err
}

func (m *mockUseCase) ScanGmail(ctx context.Context, sc model.Scope, input calendarsync.MailScanInput) (calendarsync.MailScanOutput, error) {
	m.mailIn, m.called = input, "gmail"
	if m.err != nil {
		return calendarsync.MailScanOutput{}, m.err
	}
	return calendarsync.MailScanOutput{
		Fetched: 4,
		Scanned: 3,
		Skipped: 1,
		Messages: []calendarsync.MailResult{{
			MessageID: "m1",
			Subject:   "Exam moved",
			Deadlines: []extractor.Deadline{
				{Title: "Midterm", Date: time.Date(2024, 3, 6, 23, 59, 59, 0, time.UTC), Category: extractor.CategoryExam},
				{Title: "Lab report", Date: time.Date(2024, 3, 8, 23, 59, 59, 0, time.UTC), Category: extractor.CategoryAssignment},
			},
		}},
	}, nil
}

func (m *mockUseCase) ListIntegrations(ctx context.Context, sc model.Scope) ([]model.CalendarIntegration, error) {
	m.called = "integrations"
	last := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []model.CalendarIntegration{{ID: "i1", OwnerID: sc.UserID, Provider: model.ProviderGoogle, IsActive: true, LastSync: &last}}, m.err
}

func newTestRouter(uc calendarsync.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u1"}))
	})
	r.GET("/calendar/integrations", h.ListIntegrations)
	r.POST("/calendar/sync/google", h.SyncGoogle)
	r.POST("/calendar/sync/outlook", h.SyncOutlook)
	r.POST("/calendar/sync/gmail", h.ScanGmail)
	return r
}

func TestSyncGoogle(t *testing.T) {
	uc := &mockUseCase{}
	w := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calendar/sync/google?days_ahead=14", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if uc.in.DaysAhead != 14 {
		t.Errorf("days = %d", uc.in.DaysAhead)
	}

	var body struct {
		Data syncResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data != (syncResp{Fetched: 3, Created: 2, Unchanged: 1}) {
		t.Errorf("resp = %+v", body.Data)
	}
}

func TestSyncOutlook(t *testing.T) {
	uc := &mockUseCase{}
	w := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calendar/sync/outlook?days_ahead=3", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if uc.called != "outlook" || uc.in.DaysAhead != 3 {
		t.Errorf("called %q with %+v", uc.called, uc.in)
	}
}

func TestSyncErrors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		err      error
		wantCode int
	}{
		{name: "not a number", path: "/calendar/sync/google?days_ahead=x", wantCode: http.StatusBadRequest},
		{name: "out of range", path: "/calendar/sync/google?days_ahead=999", err: calendarsync.ErrInvalidDaysAhead, wantCode: http.StatusBadRequest},
		{name: "google not configured", path: "/calendar/sync/google", err: calendarsync.ErrCalendarNotConfigured, wantCode: http.StatusNotFound},
		{name: "remote failure", path: "/calendar/sync/google", err: errors.New("googleapi: 500"), wantCode: http.StatusInternalServerError},
		{name: "outlook not configured", path: "/calendar/sync/outlook", err: calendarsync.ErrOutlookNotConfigured, wantCode: http.StatusNotFound},
		{name: "gmail not configured", path: "/calendar/sync/gmail", err: calendarsync.ErrMailNotConfigured, wantCode: http.StatusNotFound},
		{name: "gmail days out of range", path: "/calendar/sync/gmail?days_back=120", err: calendarsync.ErrInvalidDaysBack, wantCode: http.StatusBadRequest},
		{name: "gmail bad flag", path: "/calendar/sync/gmail?create_tasks=maybe", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestRouter(&mockUseCase{err: tt.err}).ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.path, nil))
			if w.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}

func TestScanGmail(t *testing.T) {
	uc := &mockUseCase{}
	w := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/calendar/sync/gmail?days_back=14&create_tasks=true", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d: %s", w.Code, w.Body.String())
	}
	if uc.mailIn != (calendarsync.MailScanInput{DaysBack: 14, CreateTasks: true}) {
		t.Errorf("input = %+v", uc.mailIn)
	}

	var body struct {
		Data mailScanResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := body.Data
	if got.Fetched != 4 || got.Scanned != 3 || got.Skipped != 1 || got.DeadlinesFound != 2 || got.TasksCreated != 0 {
		t.Errorf("resp = %+v", got)
	}
	if len(got.Messages) != 1 || got.Messages[0].Received != nil || got.Messages[0].Deadlines[0].Category != "exam" {
		t.Errorf("messages = %+v", got.Messages)
	}
	if got.Messages[0].Tasks == nil {
		t.Error("tasks should encode as an empty list")
	}
}

func TestListIntegrations(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(&mockUseCase{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calendar/integrations", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}

	var body struct {
		Data integrationsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Integrations) != 1 {
		t.Fatalf("resp = %+v", body.Data)
	}
	if i := body.Data.Integrations[0]; i.Provider != "google" || !i.IsActive || i.LastSync == nil {
		t.Errorf("integration = %+v", i)
	}

	w = httptest.NewRecorder()
	newTestRouter(&mockUseCase{err: errors.New("db down")}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calendar/integrations", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("error code = %d", w.Code)
	}
}
