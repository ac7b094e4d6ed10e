package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/webnova/backend/internal/model"
	"github.com/webnova/backend/internal/repository"
	"github.com/webnova/backend/internal/service"
)

const (
	msgContactReceived = "Thank you! Your message has been received. We will contact you within 24 hours."
	msgContactNotFound = "Contact not found"
	msgContactUpdated  = "Contact updated successfully"
	msgContactDeleted  = "Contact deleted successfully"
	msgSomethingWrong  = "Something went wrong. Please try again later."
)

// ContactHandler handles contact form submission and the admin endpoints
// that read and manage submitted contacts.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// updateRequest is the expected body for PATCH /api/contact/{id}.
type updateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// Submit handles POST /api/contact.
// name, email, service and message are required; phone is optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	contact, err := h.contactService.Submit(r.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		slog.Error("contact submit failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, msgSomethingWrong)
		return
	}

	slog.Info("contact saved", "contact_id", contact.ID, "service", contact.Service)
	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: msgContactReceived,
		Data:    map[string]int64{"id": contact.ID},
	})
}

// List handles GET /api/contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		slog.Error("contact list failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "Error retrieving contacts")
		return
	}
	writeList(w, contacts)
}

// Get handles GET /api/contact/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgContactNotFound)
		return
	}

	contact, err := h.contactService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgContactNotFound)
			return
		}
		slog.Error("contact get failed", "error", err, "contact_id", id, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "Error retrieving contact")
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: contact})
}

// Update handles PATCH /api/contact/{id}. status and notes are optional;
// blank values leave the stored field unchanged.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgContactNotFound)
		return
	}

	var req updateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	contact, err := h.contactService.Update(r.Context(), id, model.ContactPatch{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgContactNotFound)
			return
		}
		slog.Error("contact update failed", "error", err, "contact_id", id, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "Error updating contact")
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: msgContactUpdated, Data: contact})
}

// Delete handles DELETE /api/contact/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(r)
	if !ok {
		writeError(w, http.StatusNotFound, msgContactNotFound)
		return
	}

	if err := h.contactService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgContactNotFound)
			return
		}
		slog.Error("contact delete failed", "error", err, "contact_id", id, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "Error deleting contact")
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: msgContactDeleted})
}

// contactID parses the {id} path value. A malformed id can never match a
// stored contact, so callers report it as not found.
func contactID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
