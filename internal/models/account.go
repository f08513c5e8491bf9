package models

import (
	"github.com/shopspring/decimal"
)

// AccountKind mirrors domain.AccountKind for storage.
type AccountKind string

// Account is the database representation of a monetary account.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	Kind           AccountKind     `db:"kind"`
	CurrencyCode   string          `db:"currency_code"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	Balance        decimal.Decimal `db:"balance"`
	IsActive       bool            `db:"is_active"`
	Version        int64           `db:"version"`
	AuditFields
}
