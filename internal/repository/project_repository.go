package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/devfolio/backend/internal/model"
)

// ProjectRepository is the read-only interface over the project catalog.
type ProjectRepository interface {
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	FindByID(ctx context.Context, id string) (*model.Project, error)
}

//go:embed projects.json
var projectsJSON []byte

// EmbeddedProjectRepository serves the project catalog bundled into the
// binary at build time. The catalog is static; there are no writes.
type EmbeddedProjectRepository struct {
	projects []*model.Project
}

// NewEmbeddedProjectRepository parses the bundled catalog.
func NewEmbeddedProjectRepository() (*EmbeddedProjectRepository, error) {
	var projects []*model.Project
	if err := json.Unmarshal(projectsJSON, &projects); err != nil {
		return nil, fmt.Errorf("project catalog: parse: %w", err)
	}
	return &EmbeddedProjectRepository{projects: projects}, nil
}

var _ ProjectRepository = (*EmbeddedProjectRepository)(nil)

// List returns catalog entries matching the given filters, in catalog order.
func (r *EmbeddedProjectRepository) List(_ context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	out := make([]*model.Project, 0, len(r.projects))
	for _, p := range r.projects {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if opts.Featured != nil && p.Featured != *opts.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// FindByID returns the catalog entry with the given id, or ErrNotFound.
func (r *EmbeddedProjectRepository) FindByID(_ context.Context, id string) (*model.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}
