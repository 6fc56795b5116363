package handlers

import (
	"embed"
	"log/slog"
	"net/http"
	"strings"
)

//go:embed web
var webFS embed.FS

// HandleStatic serves the embedded single-page UI.
func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")
	if path == "" {
		path = "index.html"
	}

	data, err := webFS.ReadFile("web/" + path)
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch {
	case strings.HasSuffix(path, ".css"):
		w.Header().Set("Content-Type", "text/css")
	case strings.HasSuffix(path, ".js"):
		w.Header().Set("Content-Type", "application/javascript")
	case strings.HasSuffix(path, ".html"):
		w.Header().Set("Content-Type", "text/html")
	}

	if _, err := w.Write(data); err != nil {
		slog.Error("Unable to write static asset", "path", path, "err", err)
	}
}
