package dto

import (
	"time"

	"github.com/bizbooks/ledger/internal/core/domain"
)

// CreateCounterpartyRequest is the payload for registering a vendor or customer.
type CreateCounterpartyRequest struct {
	Name    string     `json:"name" binding:"required"`
	Role    string     `json:"role" binding:"required,cptyrole"`
	DueDate *time.Time `json:"dueDate" time_format:"2006-01-02"`
}

// CounterpartyResponse is the API representation of a counterparty.
type CounterpartyResponse struct {
	CounterpartyID string     `json:"counterpartyID"`
	Name           string     `json:"name"`
	Role           string     `json:"role"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	IsActive       bool       `json:"isActive"`
}

// ListCounterpartiesParams holds query parameters for listing counterparties.
type ListCounterpartiesParams struct {
	Role   string `form:"role" binding:"omitempty,cptyrole"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ToCounterpartyResponse converts a domain counterparty to its API representation.
func ToCounterpartyResponse(c *domain.Counterparty) CounterpartyResponse {
	return CounterpartyResponse{
		CounterpartyID: c.CounterpartyID,
		Name:           c.Name,
		Role:           string(c.Role),
		DueDate:        c.DueDate,
		IsActive:       c.IsActive,
	}
}
