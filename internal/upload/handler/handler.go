package handler

import (
	"net/http"

	"github.com/nutvale/admin-gateway/internal/server"
	"github.com/nutvale/admin-gateway/internal/upload"
)

// 10 MiB, matching the upstream's upload limit.
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploader upload.Uploader
}

func NewUploadHandler(u upload.Uploader) *UploadHandler {
	return &UploadHandler{uploader: u}
}

func (h *UploadHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/upload", h.upload)
}

func (h *UploadHandler) upload(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		server.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "uploads not configured"})
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		server.WriteBadRequest(w, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		server.WriteBadRequest(w, "missing image file")
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(r.Context(), file, header.Filename)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}
