package repositories

import (
	"context"

	"github.com/bizbooks/ledger/internal/core/domain"
)

// CounterpartyRepositoryFacade defines storage operations for counterparties.
type CounterpartyRepositoryFacade interface {
	SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error
	FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error)
	ListCounterparties(ctx context.Context, role *domain.CounterpartyRole, limit int, offset int) ([]domain.Counterparty, error)
}

// ProjectRepositoryFacade defines storage operations for projects.
type ProjectRepositoryFacade interface {
	SaveProject(ctx context.Context, project domain.Project) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, limit int, offset int) ([]domain.Project, error)
	UpdateProjectStatus(ctx context.Context, projectID string, status domain.ProjectStatus, userID string) error
}
