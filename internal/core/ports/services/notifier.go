package services

import (
	"context"

	"github.com/bizbooks/ledger/internal/core/domain"
)

// CommitNotifier is invoked after each successful journal commit so external
// consumers (dashboards, read caches) can refresh. Delivery is best-effort:
// a failed notification never fails the already-committed operation.
type CommitNotifier interface {
	NotifyCommitted(ctx context.Context, txns []domain.Transaction)
}
