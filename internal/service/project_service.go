package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"panelapi/internal/model"
	"panelapi/internal/repository"
)

type CreateProjectRequest struct {
	Name    string `json:"name" binding:"required"`
	Code    string `json:"code" binding:"required"`
	Manager string `json:"manager"`
}

type UpdateProjectRequest struct {
	Name    string `json:"name"`
	Manager string `json:"manager"`
	Active  *bool  `json:"active"`
}

type ProjectResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Manager   string `json:"manager"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

type ProjectService interface {
	ListProjects(ctx context.Context, page, limit int) ([]ProjectResponse, int64, error)
	GetProject(ctx context.Context, id string) (*ProjectResponse, error)
	CreateProject(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error)
	UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (*ProjectResponse, error)
	DeleteProject(ctx context.Context, id string) error
}

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func toProjectResponse(p *model.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Code:      p.Code,
		Manager:   p.Manager,
		Active:    p.Active,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func (s *projectService) ListProjects(ctx context.Context, page, limit int) ([]ProjectResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	projects, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, *toProjectResponse(&projects[i]))
	}
	return responses, total, nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("project not found")
	}
	return toProjectResponse(project), nil
}

func (s *projectService) CreateProject(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	if name == "" || code == "" {
		return nil, errors.New("name and code must not be empty")
	}

	if _, err := s.repo.GetByCode(ctx, code); err == nil {
		return nil, errors.New("project code already exists")
	}

	project := &model.Project{
		Name:    name,
		Code:    code,
		Manager: strings.TrimSpace(req.Manager),
		Active:  true,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("project not found")
	}

	if req.Name != "" {
		project.Name = strings.TrimSpace(req.Name)
	}
	if req.Manager != "" {
		project.Manager = strings.TrimSpace(req.Manager)
	}
	if req.Active != nil {
		project.Active = *req.Active
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return errors.New("project not found")
	}
	return s.repo.Delete(ctx, id)
}
