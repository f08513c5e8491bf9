package dto

import (
	"time"

	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ObligationResponse is the API representation of a derived obligation record.
type ObligationResponse struct {
	CounterpartyID   string          `json:"counterpartyID"`
	CounterpartyName string          `json:"counterpartyName"`
	Role             string          `json:"role"`
	AmountOwed       decimal.Decimal `json:"amountOwed"`
	AmountSettled    decimal.Decimal `json:"amountSettled"`
	Remaining        decimal.Decimal `json:"remaining"`
	Surplus          decimal.Decimal `json:"surplus"`
	Status           string          `json:"status"`
	DueDate          *time.Time      `json:"dueDate,omitempty"`
	LastPaymentDate  *time.Time      `json:"lastPaymentDate,omitempty"`
}

// ListObligationsResponse wraps the derived obligation records for one role.
type ListObligationsResponse struct {
	Obligations []ObligationResponse `json:"obligations"`
}

// ToObligationResponse converts a derived obligation to its API representation.
func ToObligationResponse(o *domain.Obligation) ObligationResponse {
	return ObligationResponse{
		CounterpartyID:   o.CounterpartyID,
		CounterpartyName: o.CounterpartyName,
		Role:             string(o.Role),
		AmountOwed:       o.AmountOwed,
		AmountSettled:    o.AmountSettled,
		Remaining:        o.Remaining,
		Surplus:          o.Surplus,
		Status:           string(o.Status),
		DueDate:          o.DueDate,
		LastPaymentDate:  o.LastPaymentDate,
	}
}

// ToObligationResponses converts a slice of derived obligations.
func ToObligationResponses(os []domain.Obligation) []ObligationResponse {
	out := make([]ObligationResponse, len(os))
	for i := range os {
		out[i] = ToObligationResponse(&os[i])
	}
	return out
}
