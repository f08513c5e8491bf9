package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType for storage.
type TransactionType string

// Transaction is the database representation of a journal entry.
// Rows are append-only; reversed_by is the only column ever updated.
type Transaction struct {
	TransactionID    string          `db:"transaction_id"`
	Sequence         int64           `db:"sequence"`
	Type             TransactionType `db:"type"`
	Amount           decimal.Decimal `db:"amount"`
	OccurredAt       time.Time       `db:"occurred_at"`
	Description      string          `db:"description"`
	AccountID        string          `db:"account_id"`
	FromAccountID    string          `db:"from_account_id"`
	ToAccountID      string          `db:"to_account_id"`
	TransferID       string          `db:"transfer_id"`
	ProjectID        string          `db:"project_id"`
	CounterpartyID   string          `db:"counterparty_id"`
	CounterpartyRole string          `db:"counterparty_role"`
	ReversalOf       *string         `db:"reversal_of"`
	ReversedBy       *string         `db:"reversed_by"`
	AuditFields
}
