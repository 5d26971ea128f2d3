package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

type mockProjectService struct {
	listFunc func(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error)
	getFunc  func(ctx context.Context, id string) (*model.Project, error)
}

func (m *mockProjectService) List(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockProjectService) Get(ctx context.Context, id string) (*model.Project, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func TestProjectHandler_List_Success(t *testing.T) {
	projects := []*model.Project{
		{ID: "a", Title: "A", GithubURL: "https://github.com/x/a", Category: model.CategoryWeb, Featured: true},
		{ID: "b", Title: "B", GithubURL: "https://github.com/x/b", Category: model.CategoryBackend},
	}
	mock := &mockProjectService{
		listFunc: func(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
			return projects, nil
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var resp projectListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 projects, got %d", len(resp.Data))
	}
}

// TestProjectHandler_List_EmptyIsArray verifies an empty catalog returns
// [] rather than null.
func TestProjectHandler_List_EmptyIsArray(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(raw["data"]) != "[]" {
		t.Errorf("expected data=[], got %s", raw["data"])
	}
}

func TestProjectHandler_List_ForwardsFilters(t *testing.T) {
	var capturedOpts model.ProjectListOptions
	mock := &mockProjectService{
		listFunc: func(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
			capturedOpts = opts
			return nil, nil
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects?category=ai&featured=true", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if capturedOpts.Category != "ai" {
		t.Errorf("expected category=ai forwarded, got %q", capturedOpts.Category)
	}
	if capturedOpts.Featured == nil || !*capturedOpts.Featured {
		t.Error("expected featured=true forwarded")
	}
}

func TestProjectHandler_List_InvalidFeaturedIgnored(t *testing.T) {
	var capturedOpts model.ProjectListOptions
	mock := &mockProjectService{
		listFunc: func(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
			capturedOpts = opts
			return nil, nil
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects?featured=yes", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if capturedOpts.Featured != nil {
		t.Error("expected invalid featured value ignored")
	}
}

func TestProjectHandler_List_ServiceError(t *testing.T) {
	mock := &mockProjectService{
		listFunc: func(ctx context.Context, opts model.ProjectListOptions) ([]*model.Project, error) {
			return nil, errors.New("catalog unavailable")
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}

func TestProjectHandler_Get_Success(t *testing.T) {
	mock := &mockProjectService{
		getFunc: func(ctx context.Context, id string) (*model.Project, error) {
			return &model.Project{ID: id, Title: "A"}, nil
		},
	}
	h := NewProjectHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/a", nil)
	req.SetPathValue("id", "a")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp projectResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data == nil || resp.Data.ID != "a" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestProjectHandler_Get_NotFound(t *testing.T) {
	h := NewProjectHandler(&mockProjectService{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
