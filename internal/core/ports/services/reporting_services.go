package services

import (
	"context"
	"time"

	"github.com/bizbooks/ledger/internal/core/domain"
)

// ObligationSvcFacade exposes the derived counterparty obligation records.
type ObligationSvcFacade interface {
	// ListObligations returns one derived record per counterparty of the given
	// role, recomputed from the journal on every call.
	ListObligations(ctx context.Context, role domain.CounterpartyRole) ([]domain.Obligation, error)
}

// ReportingSvcFacade exposes the profit-and-loss projections.
type ReportingSvcFacade interface {
	// ProfitAndLoss aggregates the journal into monthly buckets plus project and
	// company summaries for the given range.
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error)
}
