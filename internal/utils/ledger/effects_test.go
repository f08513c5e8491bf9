package ledger_test

import (
	"testing"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/bizbooks/ledger/internal/utils/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(txType domain.TransactionType, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-" + string(txType),
		Type:          txType,
		Amount:        decimal.NewFromInt(amount),
		OccurredAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		AccountID:     "acc-1",
	}
}

func TestSignedEffect(t *testing.T) {
	tests := []struct {
		name   string
		txn    domain.Transaction
		expect int64
	}{
		{"income credits", entry(domain.Income, 100), 100},
		{"expense debits", entry(domain.Expense, 100), -100},
		{"debt taken credits", func() domain.Transaction {
			tx := entry(domain.DebtTaken, 150)
			tx.CounterpartyID = "v1"
			tx.CounterpartyRole = domain.RoleVendor
			return tx
		}(), 150},
		{"vendor repayment debits", func() domain.Transaction {
			tx := entry(domain.DebtRepaid, 150)
			tx.CounterpartyID = "v1"
			tx.CounterpartyRole = domain.RoleVendor
			return tx
		}(), -150},
		{"customer repayment credits", func() domain.Transaction {
			tx := entry(domain.DebtRepaid, 150)
			tx.CounterpartyID = "c1"
			tx.CounterpartyRole = domain.RoleCustomer
			return tx
		}(), 150},
		{"other keeps its sign", func() domain.Transaction {
			tx := entry(domain.Other, 0)
			tx.Amount = decimal.NewFromInt(-30)
			return tx
		}(), -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effect, err := ledger.SignedEffect(tt.txn)
			require.NoError(t, err)
			assert.True(t, effect.Equal(decimal.NewFromInt(tt.expect)), "effect = %s", effect)
		})
	}
}

func TestSignedEffect_ReversalInverts(t *testing.T) {
	origID := "orig-1"
	rev := entry(domain.Expense, 200)
	rev.ReversalOf = &origID

	effect, err := ledger.SignedEffect(rev)
	require.NoError(t, err)
	assert.True(t, effect.Equal(decimal.NewFromInt(200)), "reversing an expense must credit the account")
}

func TestSignedEffect_Errors(t *testing.T) {
	repaid := entry(domain.DebtRepaid, 100)
	_, err := ledger.SignedEffect(repaid)
	assert.ErrorIs(t, err, apperrors.ErrInvariant)

	bogus := entry("BOGUS", 100)
	_, err = ledger.SignedEffect(bogus)
	assert.ErrorIs(t, err, apperrors.ErrInvariant)
}

// A transfer pair must conserve money: the two legs' effects cancel exactly.
func TestBalanceChanges_TransferConservation(t *testing.T) {
	out := domain.Transaction{
		TransactionID: "t-out",
		Type:          domain.TransferOut,
		Amount:        decimal.NewFromInt(300),
		FromAccountID: "acc-a",
		ToAccountID:   "acc-b",
		TransferID:    "xfer-1",
	}
	in := out
	in.TransactionID = "t-in"
	in.Type = domain.TransferIn

	changes, err := ledger.BalanceChanges([]domain.Transaction{out, in})
	require.NoError(t, err)

	assert.True(t, changes["acc-a"].Equal(decimal.NewFromInt(-300)))
	assert.True(t, changes["acc-b"].Equal(decimal.NewFromInt(300)))

	total := decimal.Zero
	for _, delta := range changes {
		total = total.Add(delta)
	}
	assert.True(t, total.IsZero(), "transfer pair must not create or destroy money")
}

func TestBalanceChanges_FoldsSameAccount(t *testing.T) {
	changes, err := ledger.BalanceChanges([]domain.Transaction{
		entry(domain.Income, 1000),
		entry(domain.Expense, 200),
	})
	require.NoError(t, err)
	assert.True(t, changes["acc-1"].Equal(decimal.NewFromInt(800)))
}
