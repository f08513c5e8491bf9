package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	portsrepo "github.com/bizbooks/ledger/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/ledger/internal/core/ports/services"
	"github.com/bizbooks/ledger/internal/dto"
	"github.com/google/uuid"
)

// projectService implements the ProjectSvcFacade interface.
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service.
func NewProjectService(repo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: repo}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, userID string) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("project name must not be blank: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	project := domain.Project{
		ProjectID: uuid.NewString(),
		Name:      name,
		Status:    domain.ProjectActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("project_id", project.ProjectID))
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID))
	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, limit int, offset int) ([]domain.Project, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.projectRepo.ListProjects(ctx, limit, offset)
}

func (s *projectService) UpdateProjectStatus(ctx context.Context, projectID string, status domain.ProjectStatus, userID string) (*domain.Project, error) {
	if status != domain.ProjectActive && status != domain.ProjectCompleted {
		return nil, fmt.Errorf("%w: status must be ACTIVE or COMPLETED", apperrors.ErrValidation)
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.Status == status {
		return project, nil
	}

	if err := s.projectRepo.UpdateProjectStatus(ctx, projectID, status, userID); err != nil {
		s.LogError(ctx, err, "Failed to update project status", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project status: %w", err)
	}

	project.Status = status
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = userID

	s.LogInfo(ctx, "Project status updated", slog.String("project_id", projectID), slog.String("status", string(status)))
	return project, nil
}
