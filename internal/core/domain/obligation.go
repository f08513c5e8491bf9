package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ObligationStatus is the lifecycle state of a derived counterparty obligation.
type ObligationStatus string

const (
	ObligationActive   ObligationStatus = "ACTIVE"
	ObligationUpcoming ObligationStatus = "UPCOMING"
	ObligationOverdue  ObligationStatus = "OVERDUE"
	// ObligationPaid is terminal: remaining can only shrink as repayments
	// accumulate, so no further entry moves a paid obligation back.
	ObligationPaid ObligationStatus = "PAID"
)

// Obligation is a derived record, never stored: the fold of all DEBT_TAKEN and
// DEBT_REPAID entries for one counterparty.
type Obligation struct {
	CounterpartyID   string           `json:"counterpartyID"`
	CounterpartyName string           `json:"counterpartyName"`
	Role             CounterpartyRole `json:"role"`
	AmountOwed       decimal.Decimal  `json:"amountOwed"`
	AmountSettled    decimal.Decimal  `json:"amountSettled"`
	// Remaining is clamped at zero; overpayment shows up as Surplus instead of
	// flipping the sign.
	Remaining       decimal.Decimal  `json:"remaining"`
	Surplus         decimal.Decimal  `json:"surplus"`
	Status          ObligationStatus `json:"status"`
	DueDate         *time.Time       `json:"dueDate,omitempty"`
	LastPaymentDate *time.Time       `json:"lastPaymentDate,omitempty"`
}

// DeriveObligation computes remaining, surplus and status from raw sums.
// The status rule is evaluated on read: PAID if nothing remains, else OVERDUE
// when past due, else UPCOMING within the near-term window, else ACTIVE.
func DeriveObligation(owed, settled decimal.Decimal, dueDate *time.Time, now time.Time, upcomingWindow time.Duration) (remaining, surplus decimal.Decimal, status ObligationStatus) {
	remaining = owed.Sub(settled)
	surplus = decimal.Zero
	if remaining.Sign() < 0 {
		surplus = remaining.Neg()
		remaining = decimal.Zero
	}

	if remaining.Sign() <= 0 {
		return remaining, surplus, ObligationPaid
	}
	if dueDate != nil {
		if dueDate.Before(now) {
			return remaining, surplus, ObligationOverdue
		}
		if dueDate.Sub(now) <= upcomingWindow {
			return remaining, surplus, ObligationUpcoming
		}
	}
	return remaining, surplus, ObligationActive
}
