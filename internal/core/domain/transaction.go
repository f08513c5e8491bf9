package domain

import (
	"fmt"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType is the tag of a journal entry variant. Each type admits only
// the reference fields valid for it, enforced by Validate.
type TransactionType string

const (
	Income      TransactionType = "INCOME"
	Expense     TransactionType = "EXPENSE"
	TransferIn  TransactionType = "TRANSFER_IN"
	TransferOut TransactionType = "TRANSFER_OUT"
	DebtTaken   TransactionType = "DEBT_TAKEN"
	DebtRepaid  TransactionType = "DEBT_REPAID"
	Other       TransactionType = "OTHER"
)

// CounterpartyRole distinguishes vendor debts from customer receivables.
type CounterpartyRole string

const (
	RoleVendor   CounterpartyRole = "VENDOR"
	RoleCustomer CounterpartyRole = "CUSTOMER"
)

// Transaction is a single committed journal entry. Entries are immutable once
// committed; the only permitted later mutation is setting ReversedBy when a
// reversing entry is posted.
type Transaction struct {
	TransactionID string `json:"transactionID"`
	// Sequence is assigned by the journal on commit, monotonically increasing.
	Sequence    int64           `json:"sequence"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	OccurredAt  time.Time       `json:"occurredAt"`
	Description string          `json:"description"`

	// Exactly one of AccountID or the FromAccountID/ToAccountID pair is set,
	// matching the type (transfer legs carry the pair).
	AccountID     string `json:"accountID,omitempty"`
	FromAccountID string `json:"fromAccountID,omitempty"`
	ToAccountID   string `json:"toAccountID,omitempty"`

	// TransferID links the two legs of an atomic transfer pair.
	TransferID string `json:"transferID,omitempty"`

	ProjectID        string           `json:"projectID,omitempty"`
	CounterpartyID   string           `json:"counterpartyID,omitempty"`
	CounterpartyRole CounterpartyRole `json:"counterpartyRole,omitempty"`

	// ReversalOf references the original entry when this entry is a reversal.
	// ReversedBy backlinks the original to its reversal.
	ReversalOf *string `json:"reversalOf,omitempty"`
	ReversedBy *string `json:"reversedBy,omitempty"`

	AuditFields
}

// IsTransfer reports whether the entry is one leg of a transfer pair.
func (t Transaction) IsTransfer() bool {
	return t.Type == TransferIn || t.Type == TransferOut
}

// IsReversal reports whether the entry reverses an earlier entry.
func (t Transaction) IsReversal() bool {
	return t.ReversalOf != nil
}

// Validate enforces the per-type shape of the entry before it may be committed.
func (t Transaction) Validate() error {
	if t.Type != Other && t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive for type %s", apperrors.ErrValidation, t.Type)
	}
	if t.Type == Other && t.Amount.IsZero() {
		return fmt.Errorf("%w: amount must be non-zero", apperrors.ErrValidation)
	}
	if t.OccurredAt.IsZero() {
		return fmt.Errorf("%w: occurredAt is required", apperrors.ErrValidation)
	}

	switch t.Type {
	case TransferIn, TransferOut:
		if t.FromAccountID == "" || t.ToAccountID == "" {
			return fmt.Errorf("%w: transfer requires fromAccountID and toAccountID", apperrors.ErrValidation)
		}
		if t.FromAccountID == t.ToAccountID {
			return fmt.Errorf("%w: transfer source and destination must differ", apperrors.ErrValidation)
		}
		if t.AccountID != "" {
			return fmt.Errorf("%w: transfer must not set accountID", apperrors.ErrValidation)
		}
		if t.TransferID == "" {
			return fmt.Errorf("%w: transfer leg requires a transferID", apperrors.ErrValidation)
		}
		if t.CounterpartyID != "" {
			return fmt.Errorf("%w: transfer must not reference a counterparty", apperrors.ErrValidation)
		}
	case DebtTaken, DebtRepaid:
		if t.AccountID == "" {
			return fmt.Errorf("%w: %s requires accountID", apperrors.ErrValidation, t.Type)
		}
		if t.FromAccountID != "" || t.ToAccountID != "" {
			return fmt.Errorf("%w: %s must not set transfer accounts", apperrors.ErrValidation, t.Type)
		}
		if t.CounterpartyID == "" {
			return fmt.Errorf("%w: %s requires counterpartyID", apperrors.ErrValidation, t.Type)
		}
		if t.CounterpartyRole != RoleVendor && t.CounterpartyRole != RoleCustomer {
			return fmt.Errorf("%w: %s requires counterpartyRole VENDOR or CUSTOMER", apperrors.ErrValidation, t.Type)
		}
	case Income, Expense, Other:
		if t.AccountID == "" {
			return fmt.Errorf("%w: %s requires accountID", apperrors.ErrValidation, t.Type)
		}
		if t.FromAccountID != "" || t.ToAccountID != "" {
			return fmt.Errorf("%w: %s must not set transfer accounts", apperrors.ErrValidation, t.Type)
		}
	default:
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, t.Type)
	}
	return nil
}

// AffectedAccountIDs returns the account(s) whose balance this entry touches.
func (t Transaction) AffectedAccountIDs() []string {
	switch t.Type {
	case TransferOut:
		return []string{t.FromAccountID}
	case TransferIn:
		return []string{t.ToAccountID}
	default:
		return []string{t.AccountID}
	}
}
