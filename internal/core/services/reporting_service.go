package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	portsrepo "github.com/bizbooks/ledger/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// reportingService implements the profit and loss projections.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ProfitAndLoss aggregates the journal into monthly buckets plus project and
// company summaries. The two groupings are independent queries over the same
// snapshot, fetched concurrently.
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: report range end must be after start", apperrors.ErrValidation)
	}

	var (
		projects []domain.ProjectSummary
		months   []domain.MonthlySummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.reportingRepo.GetProjectLedgerGroups(gctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to fetch project groups: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		months, err = s.reportingRepo.GetMonthlyBuckets(gctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to fetch monthly buckets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build profit and loss report")
		return nil, err
	}

	report := &domain.ProfitAndLossReport{
		Projects:          projects,
		Months:            months,
		GrossProfit:       decimal.Zero,
		OperatingExpenses: decimal.Zero,
		NetProfit:         decimal.Zero,
		RealizedProfit:    decimal.Zero,
		PotentialProfit:   decimal.Zero,
	}

	for i := range report.Projects {
		p := &report.Projects[i]
		p.NetProfit = p.TotalIncome.Sub(p.TotalDirectCosts)
		if p.Status == domain.ProjectCompleted {
			report.RealizedProfit = report.RealizedProfit.Add(p.NetProfit)
		} else {
			report.PotentialProfit = report.PotentialProfit.Add(p.NetProfit)
		}
	}

	// Company totals fold the monthly buckets so that summing the buckets
	// always reconciles with the headline numbers, including income that was
	// never attributed to a project.
	for i := range report.Months {
		m := &report.Months[i]
		m.NetProfit = m.Income.Sub(m.DirectCosts).Sub(m.OperatingExpenses)
		report.GrossProfit = report.GrossProfit.Add(m.Income).Sub(m.DirectCosts)
		report.OperatingExpenses = report.OperatingExpenses.Add(m.OperatingExpenses)
	}

	report.NetProfit = report.GrossProfit.Sub(report.OperatingExpenses)
	return report, nil
}
