package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bizbooks/ledger/internal/core/domain"
	portsrepo "github.com/bizbooks/ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// aggregationFilter excludes reversed originals and the reversal rows
// themselves, so every aggregate sees only the net effective journal.
const aggregationFilter = `t.reversal_of IS NULL AND t.reversed_by IS NULL`

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates the read-side aggregation repository.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetObligationSums returns the raw DEBT_TAKEN/DEBT_REPAID sums per
// counterparty of the given role. Status derivation happens in the service.
func (r *PgxReportingRepository) GetObligationSums(ctx context.Context, role domain.CounterpartyRole) ([]domain.Obligation, error) {
	query := `
		SELECT
			c.counterparty_id,
			c.name,
			c.role,
			c.due_date,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'DEBT_TAKEN'), 0) AS amount_owed,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'DEBT_REPAID'), 0) AS amount_settled,
			MAX(t.occurred_at) FILTER (WHERE t.type = 'DEBT_REPAID') AS last_payment_date
		FROM counterparties c
		JOIN transactions t ON t.counterparty_id = c.counterparty_id
		WHERE c.role = $1
		  AND t.type IN ('DEBT_TAKEN', 'DEBT_REPAID')
		  AND ` + aggregationFilter + `
		GROUP BY c.counterparty_id, c.name, c.role, c.due_date
		ORDER BY c.name;
	`

	rows, err := r.Pool.Query(ctx, query, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to query obligation sums: %w", err)
	}
	defer rows.Close()

	obligations := []domain.Obligation{}
	for rows.Next() {
		var o domain.Obligation
		var roleStr string
		if err := rows.Scan(
			&o.CounterpartyID,
			&o.CounterpartyName,
			&roleStr,
			&o.DueDate,
			&o.AmountOwed,
			&o.AmountSettled,
			&o.LastPaymentDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan obligation row: %w", err)
		}
		o.Role = domain.CounterpartyRole(roleStr)
		obligations = append(obligations, o)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating obligation rows: %w", rows.Err())
	}

	return obligations, nil
}

// GetProjectLedgerGroups returns per-project income and direct-cost sums for
// the range. NetProfit is computed by the service.
func (r *PgxReportingRepository) GetProjectLedgerGroups(ctx context.Context, from, to time.Time) ([]domain.ProjectSummary, error) {
	query := `
		SELECT
			p.project_id,
			p.name,
			p.status,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'INCOME'), 0) AS total_income,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'EXPENSE'), 0) AS total_direct_costs
		FROM projects p
		JOIN transactions t ON t.project_id = p.project_id
		WHERE t.occurred_at >= $1 AND t.occurred_at <= $2
		  AND t.type IN ('INCOME', 'EXPENSE')
		  AND ` + aggregationFilter + `
		GROUP BY p.project_id, p.name, p.status
		ORDER BY p.name;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query project ledger groups: %w", err)
	}
	defer rows.Close()

	summaries := []domain.ProjectSummary{}
	for rows.Next() {
		var s domain.ProjectSummary
		var statusStr string
		if err := rows.Scan(
			&s.ProjectID,
			&s.Name,
			&statusStr,
			&s.TotalIncome,
			&s.TotalDirectCosts,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project summary row: %w", err)
		}
		s.Status = domain.ProjectStatus(statusStr)
		summaries = append(summaries, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating project summary rows: %w", rows.Err())
	}

	return summaries, nil
}

// GetMonthlyBuckets returns one row per (year, month) bucket in the range.
// Expenses with a project are direct costs; expenses without one are company
// operating expenses.
func (r *PgxReportingRepository) GetMonthlyBuckets(ctx context.Context, from, to time.Time) ([]domain.MonthlySummary, error) {
	query := `
		SELECT
			EXTRACT(YEAR FROM t.occurred_at)::int AS year,
			EXTRACT(MONTH FROM t.occurred_at)::int AS month,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'INCOME'), 0) AS income,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'EXPENSE' AND t.project_id <> ''), 0) AS direct_costs,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'EXPENSE' AND t.project_id = ''), 0) AS operating_expenses
		FROM transactions t
		WHERE t.occurred_at >= $1 AND t.occurred_at <= $2
		  AND t.type IN ('INCOME', 'EXPENSE')
		  AND ` + aggregationFilter + `
		GROUP BY 1, 2
		ORDER BY 1, 2;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly buckets: %w", err)
	}
	defer rows.Close()

	buckets := []domain.MonthlySummary{}
	for rows.Next() {
		var b domain.MonthlySummary
		if err := rows.Scan(
			&b.Year,
			&b.Month,
			&b.Income,
			&b.DirectCosts,
			&b.OperatingExpenses,
		); err != nil {
			return nil, fmt.Errorf("failed to scan monthly bucket row: %w", err)
		}
		buckets = append(buckets, b)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly bucket rows: %w", rows.Err())
	}

	return buckets, nil
}
