package services

import (
	"context"

	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/bizbooks/ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountsByIDs retrieves multiple accounts by their IDs.
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// GetBalance returns the current checkpointed balance of an account.
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)

	// ListAccounts retrieves a paginated list of active accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// OpenAccount creates a new account with its opening balance.
	OpenAccount(ctx context.Context, req dto.OpenAccountRequest, userID string) (*domain.Account, error)

	// CloseAccount marks an account inactive. Fails with ErrConflict while the
	// balance is non-zero or journal entries still reference the account.
	CloseAccount(ctx context.Context, accountID string, userID string) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
