package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/studiolanding/promptgen/internal/generation"
	"github.com/studiolanding/promptgen/internal/images"
	"github.com/studiolanding/promptgen/internal/models"
	"github.com/studiolanding/promptgen/internal/secrets"
)

const maxImageBytes = 10 * 1024 * 1024

// HandleGenerate runs the whole pipeline for one multipart request
// carrying both upload groups: "brandboard" files and "copy" files.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(32 * 1024 * 1024); err != nil {
		h.writeError(w, "Failed to parse upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	brandImgs, err := h.encodeGroup(r.MultipartForm.File["brandboard"])
	if err != nil {
		h.writeError(w, "Failed to read brandboard images: "+err.Error(), http.StatusBadRequest)
		return
	}
	copyImgs, err := h.encodeGroup(r.MultipartForm.File["copy"])
	if err != nil {
		h.writeError(w, "Failed to read copy images: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Both groups are required; reject before the pipeline issues any
	// network call.
	if len(brandImgs) == 0 {
		h.writeError(w, generation.ErrNoBrandboardImages.Error(), http.StatusBadRequest)
		return
	}
	if len(copyImgs) == 0 {
		h.writeError(w, generation.ErrNoCopyImages.Error(), http.StatusBadRequest)
		return
	}

	session := &models.PromptSession{
		ID:          uuid.NewString(),
		BrandImages: len(brandImgs),
		CopyImages:  len(copyImgs),
		Provider:    h.service.ProviderName(),
		Model:       h.service.Model(),
		CreatedAt:   time.Now(),
	}

	result, err := h.service.Run(r.Context(), brandImgs, copyImgs)
	session.State = result.State.String()
	session.BrandInfo = result.BrandInfo
	session.RawCopy = result.RawCopy
	session.Sections = result.Sections
	session.FinalPrompt = result.FinalPrompt

	if err != nil {
		session.Error = err.Error()
		h.sessionStore.Set(session.ID, session)

		code := http.StatusBadGateway
		if errors.Is(err, secrets.ErrMissingAPIKey) {
			code = http.StatusInternalServerError
		}
		slog.Error("Pipeline failed", "session_id", session.ID, "state", session.State, "error", err)
		h.writeJSONWithStatus(w, session, code)
		return
	}

	h.sessionStore.Set(session.ID, session)
	slog.Info("Prompt generated", "session_id", session.ID, "length", len(session.FinalPrompt))
	h.writeJSON(w, session)
}

func (h *Handler) encodeGroup(files []*multipart.FileHeader) ([]images.Encoded, error) {
	var encoded []images.Encoded
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
		file.Close()
		if err != nil {
			return nil, err
		}
		if len(data) >= maxImageBytes {
			return nil, errors.New("file too large (max 10MB): " + header.Filename)
		}

		encoded = append(encoded, images.Encode(data, header.Filename))
	}
	return encoded, nil
}

func (h *Handler) writeJSONWithStatus(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}
