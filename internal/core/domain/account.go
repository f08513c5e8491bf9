package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind classifies where the money of an account physically lives.
type AccountKind string

const (
	Bank        AccountKind = "BANK"
	Cash        AccountKind = "CASH"
	MobileMoney AccountKind = "MOBILE_MONEY"
)

// Account represents a named monetary account.
// Balance is only ever changed as the effect of exactly one committed journal
// entry (or one linked pair, for transfers); nothing else writes it.
type Account struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Kind           AccountKind     `json:"kind"`
	CurrencyCode   string          `json:"currencyCode"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	IsActive       bool            `json:"isActive"`
	// Version is bumped on every balance mutation; used as an optimistic
	// concurrency guard alongside row locks.
	Version int64 `json:"version"`
	AuditFields
}
