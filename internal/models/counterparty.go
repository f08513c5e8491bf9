package models

import "time"

// Counterparty is the database representation of a vendor or customer.
type Counterparty struct {
	CounterpartyID string     `db:"counterparty_id"`
	Name           string     `db:"name"`
	Role           string     `db:"role"`
	DueDate        *time.Time `db:"due_date"`
	IsActive       bool       `db:"is_active"`
	AuditFields
}
