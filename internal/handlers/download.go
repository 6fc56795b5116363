package handlers

import (
	"log/slog"
	"net/http"
)

// downloadFilename matches the artifact name the UI advertises.
const downloadFilename = "prompt_lovable.txt"

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := h.getSessionOrError(w, sessionID)
	if !ok {
		return
	}

	if session.FinalPrompt == "" {
		h.writeError(w, "Session has no generated prompt", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+downloadFilename+`"`)
	if _, err := w.Write([]byte(session.FinalPrompt)); err != nil {
		slog.Error("Unable to write prompt download", "session_id", sessionID, "err", err)
	}
}
