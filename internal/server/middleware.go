package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutvale/admin-gateway/internal/audit"
	"github.com/nutvale/admin-gateway/internal/auth"
	"github.com/nutvale/admin-gateway/pkg/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware wraps the mux with the request-id → logging → auth → audit chain.
func Middleware(next http.Handler, log logger.ZapLogger, recorder *audit.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		token := auth.FromRequest(r)
		r = r.WithContext(auth.WithToken(r.Context(), token))

		// Reads degrade to empty data without a token; mutations do not.
		if token == "" && r.Method != http.MethodGet {
			WriteUnauthorized(w)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))

		// Mutations that succeeded land in the audit trail.
		if recorder != nil && r.Method != http.MethodGet && rec.status < 400 {
			actor := r.Header.Get("X-Admin-User")
			if actor == "" {
				actor = "unknown"
			}
			recorder.Record(r.Context(), audit.Entry{
				ID:     requestID,
				Actor:  actor,
				Method: r.Method,
				Path:   r.URL.Path,
				Status: rec.status,
				At:     time.Now(),
			})
		}
	})
}
