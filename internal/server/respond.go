package server

import (
	"encoding/json"
	"net/http"

	"github.com/nutvale/admin-gateway/internal/upstream"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps an error to a JSON error body, carrying the upstream's own
// status and message through when there is one.
func WriteError(w http.ResponseWriter, err error) {
	if apiErr, ok := err.(*upstream.APIError); ok {
		WriteJSON(w, apiErr.StatusCode, map[string]string{"error": apiErr.Message})
		return
	}
	WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func WriteBadRequest(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func WriteUnauthorized(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
}

func DecodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
