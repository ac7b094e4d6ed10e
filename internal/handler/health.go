package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const healthMessage = "WebNova Backend is running!"

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.db.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "unhealthy",
			Message: "storage unavailable",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:  "OK",
		Message: healthMessage,
	})
}
