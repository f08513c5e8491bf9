package pgsql

import (
	"time"

	portsrepo "github.com/bizbooks/ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all repositories over one connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool, lockTimeout time.Duration) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, accountRepo, lockTimeout)
	counterpartyRepo := newPgxCounterpartyRepository(dbPool)
	projectRepo := newPgxProjectRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		JournalRepo:      journalRepo,
		CounterpartyRepo: counterpartyRepo,
		ProjectRepo:      projectRepo,
		ReportingRepo:    reportingRepo,
	}
}
