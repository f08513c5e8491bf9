package dto

import (
	"time"

	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for appending a single journal entry.
// TransactionID is optional: when the caller supplies one, retries of the same
// request are idempotent.
type CreateTransactionRequest struct {
	TransactionID    string          `json:"transactionID" binding:"omitempty,uuid"`
	Type             string          `json:"type" binding:"required,txntype"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	OccurredAt       time.Time       `json:"occurredAt" binding:"required"`
	Description      string          `json:"description"`
	AccountID        string          `json:"accountID" binding:"required,uuid"`
	ProjectID        string          `json:"projectID" binding:"omitempty,uuid"`
	CounterpartyID   string          `json:"counterpartyID" binding:"omitempty,uuid"`
	CounterpartyRole string          `json:"counterpartyRole" binding:"omitempty,cptyrole"`
}

// CreateTransferRequest is the payload for one logical transfer; the journal
// materializes it as an atomic pair of entries.
type CreateTransferRequest struct {
	TransactionID string          `json:"transactionID" binding:"omitempty,uuid"`
	FromAccountID string          `json:"fromAccountID" binding:"required,uuid"`
	ToAccountID   string          `json:"toAccountID" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	OccurredAt    time.Time       `json:"occurredAt" binding:"required"`
	Description   string          `json:"description"`
	ProjectID     string          `json:"projectID" binding:"omitempty,uuid"`
}

// TransactionResponse is the API representation of a committed journal entry.
type TransactionResponse struct {
	TransactionID    string          `json:"transactionID"`
	Sequence         int64           `json:"sequence"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	OccurredAt       time.Time       `json:"occurredAt"`
	Description      string          `json:"description"`
	AccountID        string          `json:"accountID,omitempty"`
	FromAccountID    string          `json:"fromAccountID,omitempty"`
	ToAccountID      string          `json:"toAccountID,omitempty"`
	TransferID       string          `json:"transferID,omitempty"`
	ProjectID        string          `json:"projectID,omitempty"`
	CounterpartyID   string          `json:"counterpartyID,omitempty"`
	CounterpartyRole string          `json:"counterpartyRole,omitempty"`
	ReversalOf       *string         `json:"reversalOf,omitempty"`
	ReversedBy       *string         `json:"reversedBy,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ListTransactionsParams holds query parameters for listing journal entries.
type ListTransactionsParams struct {
	AccountID string     `form:"accountID" binding:"required,uuid"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Limit     int        `form:"limit,default=20"`
	NextToken *string    `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of journal entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain journal entry to its API representation.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    t.TransactionID,
		Sequence:         t.Sequence,
		Type:             string(t.Type),
		Amount:           t.Amount,
		OccurredAt:       t.OccurredAt,
		Description:      t.Description,
		AccountID:        t.AccountID,
		FromAccountID:    t.FromAccountID,
		ToAccountID:      t.ToAccountID,
		TransferID:       t.TransferID,
		ProjectID:        t.ProjectID,
		CounterpartyID:   t.CounterpartyID,
		CounterpartyRole: string(t.CounterpartyRole),
		ReversalOf:       t.ReversalOf,
		ReversedBy:       t.ReversedBy,
		CreatedAt:        t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain entries.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(ts))
	for i := range ts {
		out[i] = ToTransactionResponse(&ts[i])
	}
	return out
}
