package dto

import (
	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenAccountRequest is the payload for opening a new account.
type OpenAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	Kind           string          `json:"kind" binding:"required,accountkind"`
	CurrencyCode   string          `json:"currencyCode" binding:"omitempty,len=3"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	CurrencyCode   string          `json:"currencyCode"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	IsActive       bool            `json:"isActive"`
}

// ListAccountsParams holds query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// BalanceResponse is the API representation of an account balance lookup.
type BalanceResponse struct {
	AccountID    string          `json:"accountID"`
	Balance      decimal.Decimal `json:"balance"`
	CurrencyCode string          `json:"currencyCode"`
}

// ToAccountResponse converts a domain account to its API representation.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Name:           a.Name,
		Kind:           string(a.Kind),
		CurrencyCode:   a.CurrencyCode,
		OpeningBalance: a.OpeningBalance,
		Balance:        a.Balance,
		IsActive:       a.IsActive,
	}
}
