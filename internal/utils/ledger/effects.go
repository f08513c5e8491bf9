package ledger

import (
	"fmt"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedEffect returns the balance delta a single committed entry applies to
// its affected account. This is the central effect table of the engine:
//
//	INCOME, DEBT_TAKEN            -> +amount
//	EXPENSE                       -> -amount
//	TRANSFER_OUT (leg)            -> -amount on the source account
//	TRANSFER_IN  (leg)            -> +amount on the destination account
//	DEBT_REPAID to a VENDOR       -> -amount (cash paid out)
//	DEBT_REPAID by a CUSTOMER     -> +amount (cash received)
//	OTHER                         -> signed amount as given
//
// Reversal entries invert the original's effect.
func SignedEffect(txn domain.Transaction) (decimal.Decimal, error) {
	var effect decimal.Decimal
	switch txn.Type {
	case domain.Income, domain.DebtTaken:
		effect = txn.Amount
	case domain.Expense, domain.TransferOut:
		effect = txn.Amount.Neg()
	case domain.TransferIn:
		effect = txn.Amount
	case domain.DebtRepaid:
		switch txn.CounterpartyRole {
		case domain.RoleVendor:
			effect = txn.Amount.Neg()
		case domain.RoleCustomer:
			effect = txn.Amount
		default:
			return decimal.Zero, fmt.Errorf("%w: debt repayment without counterparty role on transaction %s", apperrors.ErrInvariant, txn.TransactionID)
		}
	case domain.Other:
		effect = txn.Amount
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown transaction type %q on transaction %s", apperrors.ErrInvariant, txn.Type, txn.TransactionID)
	}

	if txn.IsReversal() {
		effect = effect.Neg()
	}
	return effect, nil
}

// BalanceChanges folds the signed effects of a batch of entries into per-account
// deltas. Used by the journal repository to update balances in the same database
// transaction as the journal insert.
func BalanceChanges(txns []domain.Transaction) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal, len(txns))
	for _, txn := range txns {
		effect, err := SignedEffect(txn)
		if err != nil {
			return nil, err
		}
		for _, accID := range txn.AffectedAccountIDs() {
			changes[accID] = changes[accID].Add(effect)
		}
	}
	return changes, nil
}
