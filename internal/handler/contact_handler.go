package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/service"
	"github.com/devfolio/backend/pkg/contactform"
)

// confirmationMessage is the fixed success string returned to the visitor.
const confirmationMessage = "Thank you for your message! I'll get back to you soon."

// genericError is what callers see for any infrastructure failure.
// Relay and filesystem detail stays in the server logs.
const genericError = "Failed to send message. Please try again."

// contactResponse is the JSON envelope for POST /api/contact.
type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// Validation runs server-side regardless of what the client checked,
// short-circuiting on the first failure in order name → email → message.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Unparseable bodies fold into the generic failure branch.
		slog.Warn("contact: unparseable request body", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(contactResponse{Error: genericError})
		return
	}

	fields := contactform.Fields{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if kind, field, failed := contactform.First(fields); failed {
		slog.Debug("contact: validation failed", "field", field, "kind", string(kind))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(contactResponse{Error: kind.Message()})
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		slog.Error("contact: submission failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(contactResponse{Error: genericError})
		return
	}

	slog.Info("contact message received", "id", msg.ID)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(contactResponse{Success: true, Message: confirmationMessage})
}
