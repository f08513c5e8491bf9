package services

import (
	"context"

	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/bizbooks/ledger/internal/dto"
)

// CounterpartySvcFacade manages the vendor/customer registry referenced by
// DEBT_TAKEN and DEBT_REPAID entries.
type CounterpartySvcFacade interface {
	CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, userID string) (*domain.Counterparty, error)
	GetCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error)
	ListCounterparties(ctx context.Context, role *domain.CounterpartyRole, limit int, offset int) ([]domain.Counterparty, error)
}

// ProjectSvcFacade manages the project registry used by the P&L aggregator.
type ProjectSvcFacade interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, userID string) (*domain.Project, error)
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, limit int, offset int) ([]domain.Project, error)

	// UpdateProjectStatus flips a project between ACTIVE and COMPLETED; journal
	// history is never rewritten, the P&L split follows automatically.
	UpdateProjectStatus(ctx context.Context, projectID string, status domain.ProjectStatus, userID string) (*domain.Project, error)
}
