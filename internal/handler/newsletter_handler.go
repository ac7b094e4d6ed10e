package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/webnova/backend/internal/service"
)

const msgSubscribed = "Thank you for subscribing to our newsletter!"

// NewsletterHandler handles newsletter sign-ups and the subscriber listing.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

// NewNewsletterHandler creates a NewsletterHandler with the given service.
func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/newsletter.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	sub, err := h.newsletterService.Subscribe(r.Context(), req.Email)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, service.ErrAlreadySubscribed):
			writeError(w, http.StatusBadRequest, service.MsgAlreadySubscribed)
		default:
			slog.Error("newsletter subscribe failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
			writeError(w, http.StatusInternalServerError, msgSomethingWrong)
		}
		return
	}

	slog.Info("newsletter subscriber added", "subscriber_id", sub.ID)
	writeJSON(w, http.StatusCreated, envelope{Success: true, Message: msgSubscribed})
}

// List handles GET /api/newsletter.
func (h *NewsletterHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.newsletterService.List(r.Context())
	if err != nil {
		slog.Error("newsletter list failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "Error retrieving subscribers")
		return
	}
	writeList(w, subs)
}
