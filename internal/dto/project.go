package dto

import (
	"github.com/bizbooks/ledger/internal/core/domain"
)

// CreateProjectRequest is the payload for registering a project.
type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateProjectStatusRequest is the payload for flipping a project's status.
type UpdateProjectStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE COMPLETED"`
}

// ProjectResponse is the API representation of a project.
type ProjectResponse struct {
	ProjectID string `json:"projectID"`
	Name      string `json:"name"`
	Status    string `json:"status"`
}

// ToProjectResponse converts a domain project to its API representation.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID: p.ProjectID,
		Name:      p.Name,
		Status:    string(p.Status),
	}
}
