package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// AdminHandler exposes the stored message log to the site owner.
// Only wired when the active store can enumerate messages and an admin
// token is configured.
type AdminHandler struct {
	lister repository.ContactLister
	token  string
}

// NewAdminHandler creates an AdminHandler guarded by the given bearer token.
func NewAdminHandler(lister repository.ContactLister, token string) *AdminHandler {
	return &AdminHandler{lister: lister, token: token}
}

// adminListResponse is the JSON response for GET /api/admin/messages.
type adminListResponse struct {
	Messages []*model.ContactMessage `json:"messages"`
}

// Messages handles GET /api/admin/messages.
// Requires "Authorization: Bearer <ADMIN_TOKEN>". Supports limit/offset
// query params.
func (h *AdminHandler) Messages(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	provided, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(provided), []byte(h.token)) != 1 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	opts := model.ContactListOptions{Limit: 20}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	messages, err := h.lister.List(r.Context(), opts)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(adminListResponse{Messages: messages})
}
