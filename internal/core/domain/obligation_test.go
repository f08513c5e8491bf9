package domain_test

import (
	"testing"
	"time"

	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var obligationNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

const week = 7 * 24 * time.Hour

func TestDeriveObligation_Statuses(t *testing.T) {
	overdue := obligationNow.Add(-48 * time.Hour)
	upcoming := obligationNow.Add(72 * time.Hour)
	distant := obligationNow.Add(30 * 24 * time.Hour)

	tests := []struct {
		name          string
		owed, settled int64
		dueDate       *time.Time
		wantStatus    domain.ObligationStatus
		wantRemaining int64
		wantSurplus   int64
	}{
		{"nothing repaid, no due date", 150, 0, nil, domain.ObligationActive, 150, 0},
		{"fully repaid", 150, 150, nil, domain.ObligationPaid, 0, 0},
		{"overpaid clamps remaining", 150, 200, nil, domain.ObligationPaid, 0, 50},
		{"past due", 150, 50, &overdue, domain.ObligationOverdue, 100, 0},
		{"due inside window", 150, 50, &upcoming, domain.ObligationUpcoming, 100, 0},
		{"due far out", 150, 50, &distant, domain.ObligationActive, 100, 0},
		{"paid beats overdue", 150, 150, &overdue, domain.ObligationPaid, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, surplus, status := domain.DeriveObligation(
				decimal.NewFromInt(tt.owed),
				decimal.NewFromInt(tt.settled),
				tt.dueDate,
				obligationNow,
				week,
			)
			assert.Equal(t, tt.wantStatus, status)
			assert.True(t, remaining.Equal(decimal.NewFromInt(tt.wantRemaining)), "remaining = %s", remaining)
			assert.True(t, surplus.Equal(decimal.NewFromInt(tt.wantSurplus)), "surplus = %s", surplus)
		})
	}
}

// Once an obligation reaches PAID, further repayments only grow the surplus;
// no sequence of repayments can move it back to ACTIVE or OVERDUE.
func TestDeriveObligation_PaidIsTerminal(t *testing.T) {
	overdue := obligationNow.Add(-time.Hour)
	owed := decimal.NewFromInt(150)

	settled := decimal.NewFromInt(150)
	for i := 0; i < 5; i++ {
		_, _, status := domain.DeriveObligation(owed, settled, &overdue, obligationNow, week)
		assert.Equal(t, domain.ObligationPaid, status)
		settled = settled.Add(decimal.NewFromInt(25))
	}
}
