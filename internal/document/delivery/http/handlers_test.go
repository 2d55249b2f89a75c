package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-calendar/internal/document"
	"productivity-calendar/internal/model"
	"productivity-calendar/pkg/log"
)

type mockUseCase struct {
	err      error
	uploadIn document.UploadInput
	parseIn  document.ParseTextInput
}

func (m *mockUseCase) UploadSyllabus(ctx context.Context, sc model.Scope, input document.UploadInput) (document.ExtractOutput, error) {
	m.uploadIn = input
	deadline := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	return document.ExtractOutput{
		Message: "Successfully processed " + input.Filename,
		Tasks:   []model.Task{{ID: "t1", Title: "Assignment 1", Deadline: &deadline, TaskType: model.TaskTypeAssignment}},
		Method:  model.ExtractionMethodFallback,
		Preview: "Assignment 1: Due 03/15/2024",
	}, m.err
}

func (m *mockUseCase) ParseText(ctx context.Context, sc model.Scope, input document.ParseTextInput) (document.ExtractOutput, error) {
	m.parseIn = input
	return document.ExtractOutput{Message: "Successfully extracted deadlines from text", Tasks: []model.Task{}}, m.err
}

func newTestRouter(uc document.UseCase, maxBytes int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(log.NewNop(), uc)
	if maxBytes > 0 {
		h.maxUploadBytes = maxBytes
	}
	r := gin.New()
	g := r.Group("/documents", func(c *gin.Context) {
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u1"}))
	})
	g.POST("/upload-syllabus", h.UploadSyllabus)
	g.POST("/parse-text", h.ParseText)
	return r
}

func multipartBody(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		_, _ = fw.Write([]byte(content))
	}
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestUploadSyllabus(t *testing.T) {
	tests := []struct {
		name            string
		filename        string
		content         string
		fields          map[string]string
		ucErr           error
		maxBytes        int64
		wantCode        int
		wantCourseStart string
	}{
		{name: "ok", filename: "cs101.txt", content: "Assignment 1: Due 03/15/2024", wantCode: http.StatusOK},
		{name: "course start date", filename: "cs101.txt", content: "Week 3 quiz", fields: map[string]string{"course_start": "2024-01-15"}, wantCode: http.StatusOK, wantCourseStart: "2024-01-15"},
		{name: "bad course start", filename: "cs101.txt", content: "x", fields: map[string]string{"course_start": "15/01/2024"}, wantCode: http.StatusBadRequest},
		{name: "missing file", wantCode: http.StatusBadRequest},
		{name: "empty file", filename: "cs101.txt", wantCode: http.StatusBadRequest},
		{name: "too large", filename: "big.txt", content: strings.Repeat("a", 64), maxBytes: 32, wantCode: http.StatusRequestEntityTooLarge},
		{name: "unsupported format", filename: "a.pptx", content: "x", ucErr: document.ErrUnsupportedFormat, wantCode: http.StatusBadRequest},
		{name: "unexpected error", filename: "a.txt", content: "x", ucErr: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.ucErr}
			r := newTestRouter(uc, tt.maxBytes)

			body, ct := multipartBody(t, tt.filename, tt.content, tt.fields)
			req := httptest.NewRequest(http.MethodPost, "/documents/upload-syllabus", body)
			req.Header.Set("Content-Type", ct)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantCourseStart != "" {
				if uc.uploadIn.CourseStart == nil || uc.uploadIn.CourseStart.Format("2006-01-02") != tt.wantCourseStart {
					t.Errorf("CourseStart = %v, want %s", uc.uploadIn.CourseStart, tt.wantCourseStart)
				}
			}
		})
	}
}

func TestUploadSyllabusResponseBody(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc, 0)

	body, ct := multipartBody(t, "cs101.txt", "Assignment 1: Due 03/15/2024", nil)
	req := httptest.NewRequest(http.MethodPost, "/documents/upload-syllabus", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Data struct {
			Message      string `json:"message"`
			TasksCreated int    `json:"tasks_created"`
			Tasks        []struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"tasks"`
			Method  string `json:"extraction_method"`
			Preview string `json:"extracted_text_preview"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Message != "Successfully processed cs101.txt" || resp.Data.TasksCreated != 1 {
		t.Errorf("data = %+v", resp.Data)
	}
	if len(resp.Data.Tasks) != 1 || resp.Data.Tasks[0].Title != "Assignment 1" {
		t.Errorf("tasks = %+v", resp.Data.Tasks)
	}
	if resp.Data.Method != "fallback" || resp.Data.Preview == "" {
		t.Errorf("method/preview = %q/%q", resp.Data.Method, resp.Data.Preview)
	}
	if string(uc.uploadIn.Content) != "Assignment 1: Due 03/15/2024" {
		t.Errorf("content = %q", uc.uploadIn.Content)
	}
}

func TestParseText(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
	}{
		{name: "ok", body: `{"text":"Interview on 2024-04-02","context":"email"}`, wantCode: http.StatusOK},
		{name: "missing text", body: `{"context":"email"}`, wantCode: http.StatusBadRequest},
		{name: "invalid json", body: `{"text":`, wantCode: http.StatusBadRequest},
		{name: "empty after trim", body: `{"text":"   "}`, ucErr: document.ErrEmptyText, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.ucErr}
			r := newTestRouter(uc, 0)

			req := httptest.NewRequest(http.MethodPost, "/documents/parse-text", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantCode == http.StatusOK && uc.parseIn.Context != "email" {
				t.Errorf("context = %q", uc.parseIn.Context)
			}
		})
	}
}
