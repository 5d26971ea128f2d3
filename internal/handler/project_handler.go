package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
)

// projectListResponse is the JSON envelope for GET /api/projects.
type projectListResponse struct {
	Success bool             `json:"success"`
	Data    []*model.Project `json:"data"`
	Error   string           `json:"error,omitempty"`
}

// projectResponse is the JSON envelope for GET /api/projects/{id}.
type projectResponse struct {
	Success bool           `json:"success"`
	Data    *model.Project `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// ProjectHandler serves the static project catalog.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /api/projects.
// Supports optional query params: category, featured (true/false).
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := model.ProjectListOptions{
		Category: r.URL.Query().Get("category"),
	}
	if f := r.URL.Query().Get("featured"); f == "true" || f == "false" {
		featured := f == "true"
		opts.Featured = &featured
	}

	projects, err := h.projectService.List(r.Context(), opts)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(projectListResponse{Error: "Failed to fetch projects"})
		return
	}

	// Return [] not null for empty lists
	if projects == nil {
		projects = []*model.Project{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(projectListResponse{Success: true, Data: projects})
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(projectResponse{Error: "Project not found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(projectResponse{Error: "Failed to fetch project"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(projectResponse{Success: true, Data: project})
}
