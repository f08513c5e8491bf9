package domain_test

import (
	"testing"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validIncome() domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-1",
		Type:          domain.Income,
		Amount:        decimal.NewFromInt(100),
		OccurredAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		AccountID:     "acc-1",
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr bool
	}{
		{"valid income", func(tx *domain.Transaction) {}, false},
		{"zero amount", func(tx *domain.Transaction) {
			tx.Amount = decimal.Zero
		}, true},
		{"negative amount", func(tx *domain.Transaction) {
			tx.Amount = decimal.NewFromInt(-5)
		}, true},
		{"missing occurredAt", func(tx *domain.Transaction) {
			tx.OccurredAt = time.Time{}
		}, true},
		{"income without account", func(tx *domain.Transaction) {
			tx.AccountID = ""
		}, true},
		{"income with transfer accounts", func(tx *domain.Transaction) {
			tx.FromAccountID = "acc-2"
		}, true},
		{"unknown type", func(tx *domain.Transaction) {
			tx.Type = "BOGUS"
		}, true},
		{"debt without counterparty", func(tx *domain.Transaction) {
			tx.Type = domain.DebtTaken
			tx.CounterpartyRole = domain.RoleVendor
		}, true},
		{"debt without role", func(tx *domain.Transaction) {
			tx.Type = domain.DebtRepaid
			tx.CounterpartyID = "cpty-1"
		}, true},
		{"valid debt", func(tx *domain.Transaction) {
			tx.Type = domain.DebtTaken
			tx.CounterpartyID = "cpty-1"
			tx.CounterpartyRole = domain.RoleVendor
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validIncome()
			tt.mutate(&txn)
			err := txn.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionValidate_TransferShape(t *testing.T) {
	leg := domain.Transaction{
		TransactionID: "txn-out",
		Type:          domain.TransferOut,
		Amount:        decimal.NewFromInt(50),
		OccurredAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		TransferID:    "xfer-1",
	}
	assert.NoError(t, leg.Validate())

	sameAccounts := leg
	sameAccounts.ToAccountID = "acc-1"
	assert.ErrorIs(t, sameAccounts.Validate(), apperrors.ErrValidation)

	noTransferID := leg
	noTransferID.TransferID = ""
	assert.ErrorIs(t, noTransferID.Validate(), apperrors.ErrValidation)

	withAccountID := leg
	withAccountID.AccountID = "acc-3"
	assert.ErrorIs(t, withAccountID.Validate(), apperrors.ErrValidation)

	withCounterparty := leg
	withCounterparty.CounterpartyID = "cpty-1"
	assert.ErrorIs(t, withCounterparty.Validate(), apperrors.ErrValidation)
}

func TestTransactionValidate_OtherAllowsNegative(t *testing.T) {
	txn := validIncome()
	txn.Type = domain.Other
	txn.Amount = decimal.NewFromInt(-25)
	assert.NoError(t, txn.Validate())

	txn.Amount = decimal.Zero
	assert.ErrorIs(t, txn.Validate(), apperrors.ErrValidation)
}

func TestAffectedAccountIDs(t *testing.T) {
	income := validIncome()
	assert.Equal(t, []string{"acc-1"}, income.AffectedAccountIDs())

	out := domain.Transaction{Type: domain.TransferOut, FromAccountID: "acc-1", ToAccountID: "acc-2"}
	assert.Equal(t, []string{"acc-1"}, out.AffectedAccountIDs())

	in := domain.Transaction{Type: domain.TransferIn, FromAccountID: "acc-1", ToAccountID: "acc-2"}
	assert.Equal(t, []string{"acc-2"}, in.AffectedAccountIDs())
}
