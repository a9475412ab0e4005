package handler

import (
	"net/http"
	"strconv"

	"github.com/nutvale/admin-gateway/internal/audit"
	"github.com/nutvale/admin-gateway/internal/server"
)

type AuditHandler struct {
	store *audit.Store
}

func NewAuditHandler(store *audit.Store) *AuditHandler {
	return &AuditHandler{store: store}
}

func (h *AuditHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/audit", h.list)
}

func (h *AuditHandler) list(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := h.store.Recent(r.Context(), limit)
	if err != nil {
		server.WriteError(w, err)
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]any{"items": entries})
}
