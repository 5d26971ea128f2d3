package handler

import (
	"net/http"

	"github.com/devfolio/backend/internal/repository"
)

// Handler carries the cross-cutting HTTP concerns: CORS and health.
type Handler struct {
	db          repository.DB // nil when the active store has no database
	frontendURL string
}

// New creates the root Handler. db may be nil for the file and SMTP
// store strategies.
func New(db repository.DB, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

// CORS allows the portfolio frontend origin to call the API.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
