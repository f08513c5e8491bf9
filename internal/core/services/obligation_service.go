package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	portsrepo "github.com/bizbooks/ledger/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/ledger/internal/core/ports/services"
)

// obligationService derives debt and receivable records from the journal.
type obligationService struct {
	BaseService
	reportingRepo  portsrepo.ReportingRepository
	upcomingWindow time.Duration
	now            func() time.Time
}

// ObligationServiceOption is a functional option for configuring the obligation service
type ObligationServiceOption func(*obligationService)

// WithUpcomingWindow overrides how close a due date must be to count as UPCOMING.
func WithUpcomingWindow(window time.Duration) ObligationServiceOption {
	return func(s *obligationService) {
		if window > 0 {
			s.upcomingWindow = window
		}
	}
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) ObligationServiceOption {
	return func(s *obligationService) {
		s.now = now
	}
}

// NewObligationService creates a new obligation service.
func NewObligationService(reportingRepo portsrepo.ReportingRepository, options ...ObligationServiceOption) portssvc.ObligationSvcFacade {
	svc := &obligationService{
		reportingRepo:  reportingRepo,
		upcomingWindow: 7 * 24 * time.Hour,
		now:            time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ObligationSvcFacade = (*obligationService)(nil)

// ListObligations recomputes one record per counterparty of the role from the
// raw DEBT_TAKEN/DEBT_REPAID sums.
func (s *obligationService) ListObligations(ctx context.Context, role domain.CounterpartyRole) ([]domain.Obligation, error) {
	if role != domain.RoleVendor && role != domain.RoleCustomer {
		return nil, fmt.Errorf("%w: role must be VENDOR or CUSTOMER", apperrors.ErrValidation)
	}

	sums, err := s.reportingRepo.GetObligationSums(ctx, role)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch obligation sums", slog.String("role", string(role)))
		return nil, err
	}

	now := s.now()
	for i := range sums {
		o := &sums[i]
		o.Remaining, o.Surplus, o.Status = domain.DeriveObligation(o.AmountOwed, o.AmountSettled, o.DueDate, now, s.upcomingWindow)
	}

	return sums, nil
}
