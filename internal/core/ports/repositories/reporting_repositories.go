package repositories

import (
	"context"
	"time"

	"github.com/bizbooks/ledger/internal/core/domain"
)

// ReportingRepository defines the read-side aggregation queries. These run on a
// consistent snapshot of the journal and never take account locks.
type ReportingRepository interface {
	// GetObligationSums returns one partially-filled obligation per counterparty
	// with the raw DEBT_TAKEN/DEBT_REPAID sums and last payment date; the
	// service derives remaining, surplus and status.
	GetObligationSums(ctx context.Context, role domain.CounterpartyRole) ([]domain.Obligation, error)

	// GetProjectLedgerGroups returns per-project income and direct-cost sums for
	// the range; NetProfit is computed by the service.
	GetProjectLedgerGroups(ctx context.Context, from, to time.Time) ([]domain.ProjectSummary, error)

	// GetMonthlyBuckets returns one row per (year, month) bucket in the range
	// with income, direct costs and operating expenses.
	GetMonthlyBuckets(ctx context.Context, from, to time.Time) ([]domain.MonthlySummary, error)
}
