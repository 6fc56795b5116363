package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/studiolanding/promptgen/internal/generation"
	"github.com/studiolanding/promptgen/internal/models"
	"github.com/studiolanding/promptgen/internal/providers"
)

type stubProvider struct {
	responses []string
	calls     int
}

func (p *stubProvider) ExtractText(_ context.Context, _ providers.Config) (string, error) {
	idx := p.calls
	p.calls++
	if idx < len(p.responses) {
		return p.responses[idx], nil
	}
	return "", io.EOF
}

func newTestHandler(p providers.Provider) *Handler {
	return NewWithService(generation.NewServiceWithProvider(p, generation.DefaultVisionModel))
}

func multipartRequest(t *testing.T, brandFiles, copyFiles []string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	addFiles := func(field string, names []string) {
		for _, name := range names {
			part, err := writer.CreateFormFile(field, name)
			if err != nil {
				t.Fatalf("Failed to create form file: %v", err)
			}
			if _, err := part.Write([]byte("fake image bytes")); err != nil {
				t.Fatalf("Failed to write form file: %v", err)
			}
		}
	}
	addFiles("brandboard", brandFiles)
	addFiles("copy", copyFiles)

	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/generate", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandleGenerate(t *testing.T) {
	provider := &stubProvider{
		responses: []string{
			`{"color_primario":"#112233","color_secundario":"#445566","tipografia":"Poppins"}`,
			"Hello World\n\nBuy now",
			"### SECTION 1: HERO (centered)\nHello World\n\nBuy now",
		},
	}
	handler := newTestHandler(provider)

	rec := httptest.NewRecorder()
	handler.HandleGenerate(rec, multipartRequest(t, []string{"board.png"}, []string{"copy.jpg"}))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var session models.PromptSession
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if session.State != "prompt_assembled" {
		t.Errorf("Expected prompt_assembled, got %s", session.State)
	}
	if session.BrandInfo["color_primario"] != "#112233" {
		t.Errorf("Expected extracted color, got %v", session.BrandInfo)
	}
	if !strings.Contains(session.FinalPrompt, "Hello World") {
		t.Error("Expected final prompt to carry the structured copy")
	}
	if session.BrandImages != 1 || session.CopyImages != 1 {
		t.Errorf("Expected image counts recorded, got %d/%d", session.BrandImages, session.CopyImages)
	}
	if provider.calls != 3 {
		t.Errorf("Expected 3 model calls, got %d", provider.calls)
	}

	// Session is retrievable and downloadable afterwards
	detailRec := httptest.NewRecorder()
	handler.HandleSessionDetail(detailRec, httptest.NewRequest("GET", "/api/sessions/"+session.ID, nil))
	if detailRec.Code != http.StatusOK {
		t.Errorf("Expected 200 for session detail, got %d", detailRec.Code)
	}

	dlRec := httptest.NewRecorder()
	handler.HandleSessionDetail(dlRec, httptest.NewRequest("GET", "/api/sessions/"+session.ID+"/download", nil))
	if dlRec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for download, got %d", dlRec.Code)
	}
	if cd := dlRec.Header().Get("Content-Disposition"); !strings.Contains(cd, "prompt_lovable.txt") {
		t.Errorf("Expected prompt_lovable.txt attachment, got %q", cd)
	}
	if dlRec.Body.String() != session.FinalPrompt {
		t.Error("Expected download body to equal the final prompt")
	}
}

func TestHandleGenerateMissingGroup(t *testing.T) {
	tests := []struct {
		name  string
		brand []string
		copy  []string
	}{
		{
			name: "no brandboard images",
			copy: []string{"copy.png"},
		},
		{
			name:  "no copy images",
			brand: []string{"board.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{}
			handler := newTestHandler(provider)

			rec := httptest.NewRecorder()
			handler.HandleGenerate(rec, multipartRequest(t, tt.brand, tt.copy))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
			// Missing input is rejected before any model call
			if provider.calls != 0 {
				t.Errorf("Expected zero model calls, got %d", provider.calls)
			}
		})
	}
}

func TestHandleGenerateMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(&stubProvider{})

	rec := httptest.NewRecorder()
	handler.HandleGenerate(rec, httptest.NewRequest("GET", "/api/generate", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestHandleGeneratePipelineFailure(t *testing.T) {
	// Model succeeds for brand extraction, then runs out of scripted
	// responses and fails during transcription.
	provider := &stubProvider{
		responses: []string{`{"color_primario":"#112233"}`},
	}
	handler := newTestHandler(provider)

	rec := httptest.NewRecorder()
	handler.HandleGenerate(rec, multipartRequest(t, []string{"board.png"}, []string{"copy.png"}))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("Expected 502, got %d", rec.Code)
	}

	var session models.PromptSession
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if session.State != "failed" {
		t.Errorf("Expected failed state, got %s", session.State)
	}
	if session.Error == "" {
		t.Error("Expected raw error text in session")
	}
	// The pipeline halted: no structuring call was made
	if provider.calls != 2 {
		t.Errorf("Expected 2 model calls, got %d", provider.calls)
	}

	// Failed sessions have nothing to download
	dlRec := httptest.NewRecorder()
	handler.HandleSessionDetail(dlRec, httptest.NewRequest("GET", "/api/sessions/"+session.ID+"/download", nil))
	if dlRec.Code != http.StatusConflict {
		t.Errorf("Expected 409 for failed session download, got %d", dlRec.Code)
	}
}

func TestHandleSessions(t *testing.T) {
	handler := newTestHandler(&stubProvider{})
	handler.sessionStore.Set("s1", &models.PromptSession{ID: "s1", State: "prompt_assembled"})

	rec := httptest.NewRecorder()
	handler.HandleSessions(rec, httptest.NewRequest("GET", "/api/sessions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var sessions []*models.PromptSession
	if err := json.Unmarshal(rec.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != "s1" {
		t.Errorf("Expected one session s1, got %v", sessions)
	}
}

func TestHandleSessionDetailNotFound(t *testing.T) {
	handler := newTestHandler(&stubProvider{})

	rec := httptest.NewRecorder()
	handler.HandleSessionDetail(rec, httptest.NewRequest("GET", "/api/sessions/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}
