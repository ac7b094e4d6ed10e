package handler

import (
	"net/http"

	"github.com/webnova/backend/internal/repository"
)

// Handler holds the cross-cutting HTTP concerns: store health and CORS.
type Handler struct {
	db          repository.DB
	frontendURL string
}

// New creates a Handler. frontendURL is the allowed CORS origin; "*" allows
// any origin.
func New(db repository.DB, frontendURL string) *Handler {
	if frontendURL == "" {
		frontendURL = "*"
	}
	return &Handler{db: db, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		// Browsers reject credentials with a wildcard origin.
		if h.frontendURL != "*" {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
