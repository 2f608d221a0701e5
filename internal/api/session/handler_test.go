package session

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bizlens/analysis-backend/internal/entity"
	"github.com/bizlens/analysis-backend/internal/pkg/validator"
	"github.com/bizlens/analysis-backend/internal/repository"
	sessionuc "github.com/bizlens/analysis-backend/internal/usecase/session"
	"github.com/go-chi/chi/v5"
)

type stubConnector struct{}

func (stubConnector) GenerateQuestions(ctx context.Context, req *entity.GenerateQuestionsRequest) ([]entity.Question, error) {
	return []entity.Question{
		{Type: entity.QuestionTypeFreeText, Text: "Key product?"},
	}, nil
}

func (stubConnector) GenerateAnalysis(ctx context.Context, req *entity.GenerateAnalysisRequest) (string, error) {
	return "## Overview\nStub report.", nil
}

func (stubConnector) GenerateFollowUp(ctx context.Context, req *entity.GenerateFollowUpRequest) (string, error) {
	return "Stub answer.", nil
}

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	uc := sessionuc.NewUsecase(
		repository.NewSessionMemory(time.Hour, time.Hour),
		repository.NewQuestionMemoryCache(),
		stubConnector{},
		[]entity.Question{{Type: entity.QuestionTypeFreeText, Text: "Fallback?"}},
		zap.NewNop(),
	)

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc, validator.NewValidator()))
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func startSession(t *testing.T, r chi.Router) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/session", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /session status = %d, want 201", w.Code)
	}
	id, _ := body["session_id"].(string)
	if id == "" {
		t.Fatalf("POST /session returned no session_id: %v", body)
	}
	return id
}

func TestSessionEndpointsHappyPath(t *testing.T) {
	r := newTestRouter(t)
	id := startSession(t, r)

	w, body := doJSON(t, r, http.MethodPost, "/session/"+id+"/profile", map[string]any{
		"profile": map[string]string{"name": "Acme", "industry": "Logistics"},
		"task":    "STRATEGIC_PLANNING",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("profile status = %d, body = %s", w.Code, w.Body.String())
	}
	if body["phase"] != "AWAITING_ANSWERS" {
		t.Fatalf("phase = %v, want AWAITING_ANSWERS", body["phase"])
	}
	if body["current_question"] == nil {
		t.Fatal("no current_question after profile submit")
	}

	w, body = doJSON(t, r, http.MethodPost, "/session/"+id+"/answer", map[string]string{"answer": "Widgets"})
	if w.Code != http.StatusOK {
		t.Fatalf("answer status = %d, body = %s", w.Code, w.Body.String())
	}
	if body["phase"] != "SHOWING_REPORT" {
		t.Fatalf("phase = %v, want SHOWING_REPORT after last answer", body["phase"])
	}
	if body["report"] == nil {
		t.Fatal("no report after last answer")
	}

	w, body = doJSON(t, r, http.MethodPost, "/session/"+id+"/follow-up", map[string]string{"question": "What next?"})
	if w.Code != http.StatusOK {
		t.Fatalf("follow-up status = %d, body = %s", w.Code, w.Body.String())
	}
	if body["phase"] != "FOLLOW_UP" {
		t.Fatalf("phase = %v, want FOLLOW_UP", body["phase"])
	}

	w, _ = doJSON(t, r, http.MethodPost, "/session/"+id+"/rate", map[string]any{"rating": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("rate status = %d, body = %s", w.Code, w.Body.String())
	}

	w, body = doJSON(t, r, http.MethodGet, "/session/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	if body["report_rating"] != float64(5) {
		t.Errorf("report_rating = %v, want 5", body["report_rating"])
	}
}

func TestSessionEndpointErrors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       func(id string) string
		body       any
		wantStatus int
	}{
		{
			name:   "unknown session",
			method: http.MethodGet,
			path:   func(string) string { return "/session/nope" },
			body:   nil, wantStatus: http.StatusNotFound,
		},
		{
			name:   "invalid profile",
			method: http.MethodPost,
			path:   func(id string) string { return "/session/" + id + "/profile" },
			body: map[string]any{
				"profile": map[string]string{"name": "", "industry": "Retail"},
				"task":    "STRATEGIC_PLANNING",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "unknown task",
			method: http.MethodPost,
			path:   func(id string) string { return "/session/" + id + "/profile" },
			body: map[string]any{
				"profile": map[string]string{"name": "Acme", "industry": "Retail"},
				"task":    "WORLD_PEACE",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "answer before profile",
			method: http.MethodPost,
			path:   func(id string) string { return "/session/" + id + "/answer" },
			body:   map[string]string{"answer": "early"},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "follow-up before report",
			method: http.MethodPost,
			path:   func(id string) string { return "/session/" + id + "/follow-up" },
			body:   map[string]string{"question": "early"},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "rating out of range",
			method: http.MethodPost,
			path:   func(id string) string { return "/session/" + id + "/rate" },
			body:   map[string]any{"rating": 9},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "report before it exists",
			method: http.MethodGet,
			path:   func(id string) string { return "/session/" + id + "/report" },
			body:   nil, wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := startSession(t, r)
			w, _ := doJSON(t, r, tt.method, tt.path(id), tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestReportDownloadFormats(t *testing.T) {
	r := newTestRouter(t)
	id := startSession(t, r)

	doJSON(t, r, http.MethodPost, "/session/"+id+"/profile", map[string]any{
		"profile": map[string]string{"name": "Acme", "industry": "Logistics"},
		"task":    "STRATEGIC_PLANNING",
	})
	doJSON(t, r, http.MethodPost, "/session/"+id+"/answer", map[string]string{"answer": "Widgets"})

	req := httptest.NewRequest(http.MethodGet, "/session/"+id+"/report?format=markdown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("report download status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/markdown; charset=utf-8" {
		t.Errorf("Content-Type = %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("missing Content-Disposition header")
	}

	req = httptest.NewRequest(http.MethodGet, "/session/"+id+"/report?format=xlsx", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid format status = %d, want 400", w.Code)
	}
}

func TestTranscriptDownload(t *testing.T) {
	r := newTestRouter(t)
	id := startSession(t, r)

	doJSON(t, r, http.MethodPost, "/session/"+id+"/profile", map[string]any{
		"profile": map[string]string{"name": "Acme", "industry": "Logistics"},
		"task":    "STRATEGIC_PLANNING",
	})
	doJSON(t, r, http.MethodPost, "/session/"+id+"/answer", map[string]string{"answer": "Widgets"})

	req := httptest.NewRequest(http.MethodGet, "/session/"+id+"/transcript", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("transcript status = %d", w.Code)
	}

	var tr entity.Transcript
	if err := json.Unmarshal(w.Body.Bytes(), &tr); err != nil {
		t.Fatalf("decode transcript: %v", err)
	}
	if tr.SessionID != id {
		t.Errorf("transcript session_id = %s, want %s", tr.SessionID, id)
	}
	if len(tr.Answers) != 1 {
		t.Errorf("transcript answers = %d, want 1", len(tr.Answers))
	}
	if tr.Report == nil {
		t.Error("transcript missing report")
	}
}

func TestResetEndpoint(t *testing.T) {
	r := newTestRouter(t)
	id := startSession(t, r)

	doJSON(t, r, http.MethodPost, "/session/"+id+"/profile", map[string]any{
		"profile": map[string]string{"name": "Acme", "industry": "Logistics"},
		"task":    "STRATEGIC_PLANNING",
	})

	w, body := doJSON(t, r, http.MethodPost, "/session/"+id+"/reset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reset status = %d", w.Code)
	}
	if body["phase"] != "AWAITING_INPUT" {
		t.Errorf("phase = %v after reset, want AWAITING_INPUT", body["phase"])
	}
	if body["session_id"] != id {
		t.Errorf("session_id changed on reset")
	}
}
