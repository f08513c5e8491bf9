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

// counterpartyService implements the CounterpartySvcFacade interface.
type counterpartyService struct {
	BaseService
	counterpartyRepo portsrepo.CounterpartyRepositoryFacade
}

// NewCounterpartyService creates a new counterparty service.
func NewCounterpartyService(repo portsrepo.CounterpartyRepositoryFacade) portssvc.CounterpartySvcFacade {
	return &counterpartyService{counterpartyRepo: repo}
}

var _ portssvc.CounterpartySvcFacade = (*counterpartyService)(nil)

func (s *counterpartyService) CreateCounterparty(ctx context.Context, req dto.CreateCounterpartyRequest, userID string) (*domain.Counterparty, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("counterparty name must not be blank: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	counterparty := domain.Counterparty{
		CounterpartyID: uuid.NewString(),
		Name:           name,
		Role:           domain.CounterpartyRole(req.Role),
		DueDate:        req.DueDate,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.counterpartyRepo.SaveCounterparty(ctx, counterparty); err != nil {
		s.LogError(ctx, err, "Failed to save counterparty", slog.String("counterparty_id", counterparty.CounterpartyID))
		return nil, fmt.Errorf("failed to save counterparty: %w", err)
	}

	s.LogInfo(ctx, "Counterparty created", slog.String("counterparty_id", counterparty.CounterpartyID), slog.String("role", string(counterparty.Role)))
	return &counterparty, nil
}

func (s *counterpartyService) GetCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	return s.counterpartyRepo.FindCounterpartyByID(ctx, counterpartyID)
}

func (s *counterpartyService) ListCounterparties(ctx context.Context, role *domain.CounterpartyRole, limit int, offset int) ([]domain.Counterparty, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.counterpartyRepo.ListCounterparties(ctx, role, limit, offset)
}
