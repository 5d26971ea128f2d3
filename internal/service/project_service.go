package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// ProjectService defines read access to the project catalog.
type ProjectService interface {
	List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	Get(ctx context.Context, id string) (*model.Project, error)
}
