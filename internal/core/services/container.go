package services

import (
	"time"

	portsrepo "github.com/bizbooks/ledger/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/ledger/internal/core/ports/services"
	"github.com/bizbooks/ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.CommitNotifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithDefaultCurrency(cfg.DefaultCurrency),
	)

	journalOpts := []JournalServiceOption{}
	if notifier != nil {
		journalOpts = append(journalOpts, WithCommitNotifier(notifier))
	}
	container.Journal = NewJournalService(
		repos.JournalRepo,
		repos.AccountRepo,
		repos.CounterpartyRepo,
		repos.ProjectRepo,
		journalOpts...,
	)

	container.Counterparty = NewCounterpartyService(repos.CounterpartyRepo)
	container.Project = NewProjectService(repos.ProjectRepo)
	container.Obligation = NewObligationService(
		repos.ReportingRepo,
		WithUpcomingWindow(time.Duration(cfg.UpcomingWindowDays)*24*time.Hour),
	)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
