package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/studiolanding/promptgen/internal/generation"
	"github.com/studiolanding/promptgen/internal/models"
	"github.com/studiolanding/promptgen/internal/storage"
)

type Handler struct {
	sessionStore *storage.SessionStore
	service      *generation.Service
}

func New() *Handler {
	return &Handler{
		sessionStore: storage.New(),
		service:      generation.NewService(),
	}
}

// NewWithService wires a handler around a preconfigured pipeline
// service (used by tests)
func NewWithService(service *generation.Service) *Handler {
	return &Handler{
		sessionStore: storage.New(),
		service:      service,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, sessionID string) (*models.PromptSession, bool) {
	session, exists := h.sessionStore.Get(sessionID)
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}
