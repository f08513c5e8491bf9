package domain

import "time"

// Counterparty is a vendor we may owe money to, or a customer who may owe us.
type Counterparty struct {
	CounterpartyID string           `json:"counterpartyID"`
	Name           string           `json:"name"`
	Role           CounterpartyRole `json:"role"`
	// DueDate, when set, drives the UPCOMING/OVERDUE obligation states.
	DueDate  *time.Time `json:"dueDate,omitempty"`
	IsActive bool       `json:"isActive"`
	AuditFields
}
