package services

import (
	"context"

	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/bizbooks/ledger/internal/dto"
)

// JournalSvcFacade is the transactional API of the ledger engine.
type JournalSvcFacade interface {
	// Append validates and commits a single journal entry together with its
	// balance effect. Retrying with the same transactionID returns the already
	// committed record without a second balance effect.
	Append(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// AppendTransfer commits an atomic transfer pair (TRANSFER_OUT leg plus the
	// materialized TRANSFER_IN leg) sharing one transferID.
	AppendTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) ([]domain.Transaction, error)

	// Reverse posts a reversing entry (or pair, for transfers) with a
	// back-reference to the original. Fails with ErrConflict when the original
	// was already reversed or is itself a reversal.
	Reverse(ctx context.Context, transactionID string, userID string) ([]domain.Transaction, error)

	// GetTransactionByID retrieves a committed entry.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount lists committed entries for one account within
	// an optional date range, ordered by occurredAt then sequence.
	ListTransactionsByAccount(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}
