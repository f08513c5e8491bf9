package repositories

import (
	"context"
	"time"

	"github.com/bizbooks/ledger/internal/core/domain"
)

// ListTransactionsFilter narrows a journal listing to one account and an
// optional date range on occurredAt.
type ListTransactionsFilter struct {
	AccountID string
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}

// JournalReader defines read operations over the append-only journal.
type JournalReader interface {
	// FindTransactionByID retrieves a committed entry by its id.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByTransferID retrieves both legs of a transfer pair.
	FindTransactionsByTransferID(ctx context.Context, transferID string) ([]domain.Transaction, error)

	// ListTransactionsByAccount lists committed entries touching one account,
	// ordered by occurredAt then sequence, with cursor pagination.
	ListTransactionsByAccount(ctx context.Context, filter ListTransactionsFilter) ([]domain.Transaction, *string, error)
}

// JournalWriter defines the append-side operations. Both methods commit the
// journal rows and the resulting balance mutations in a single database
// transaction: either everything is durable or nothing is.
type JournalWriter interface {
	// AppendTransactions appends one entry (or the two legs of a transfer pair),
	// assigns sequence numbers, and applies balance effects to the locked
	// accounts. Returns apperrors.ErrDuplicate when a transaction id was already
	// committed, so callers can make retries idempotent.
	AppendTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error)

	// AppendReversal appends the reversing entries and sets the reversed_by
	// backlink on the originals, all in one transaction.
	AppendReversal(ctx context.Context, reversing []domain.Transaction, originalIDs []string, userID string, now time.Time) ([]domain.Transaction, error)
}

// JournalRepositoryFacade combines journal read and append operations.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
