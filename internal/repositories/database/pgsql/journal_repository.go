package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	portsrepo "github.com/bizbooks/ledger/internal/core/ports/repositories"
	"github.com/bizbooks/ledger/internal/models"
	"github.com/bizbooks/ledger/internal/utils/ledger"
	"github.com/bizbooks/ledger/internal/utils/mapping"
	"github.com/bizbooks/ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, sequence, type, amount, occurred_at, description, account_id, from_account_id, to_account_id, transfer_id, project_id, counterparty_id, counterparty_role, reversal_of, reversed_by, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountTransactionSupport
	lockTimeout time.Duration
}

// newPgxJournalRepository creates a new repository over the append-only journal.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountTransactionSupport, lockTimeout time.Duration) portsrepo.JournalRepositoryFacade {
	if lockTimeout <= 0 {
		lockTimeout = 3 * time.Second
	}
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
		lockTimeout:    lockTimeout,
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Sequence,
		&m.Type,
		&m.Amount,
		&m.OccurredAt,
		&m.Description,
		&m.AccountID,
		&m.FromAccountID,
		&m.ToAccountID,
		&m.TransferID,
		&m.ProjectID,
		&m.CounterpartyID,
		&m.CounterpartyRole,
		&m.ReversalOf,
		&m.ReversedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// AppendTransactions inserts the batch, locks the affected accounts and applies
// the balance deltas, all in one database transaction. The journal row and the
// balance mutation are either both durable or neither is.
func (r *PgxJournalRepository) AppendTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error) {
	if len(txns) == 0 {
		return nil, fmt.Errorf("%w: empty transaction batch", apperrors.ErrValidation)
	}

	balanceChanges, err := ledger.BalanceChanges(txns)
	if err != nil {
		return nil, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if err := r.setLockTimeout(ctx, tx); err != nil {
		return nil, err
	}

	committed, err := r.insertTransactions(ctx, tx, txns)
	if err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return nil, err
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, txns[0].CreatedBy, txns[0].CreatedAt); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return committed, nil
}

// AppendReversal appends the reversing entries and stamps the reversed_by
// backlink on the originals in the same transaction.
func (r *PgxJournalRepository) AppendReversal(ctx context.Context, reversing []domain.Transaction, originalIDs []string, userID string, now time.Time) ([]domain.Transaction, error) {
	if len(reversing) == 0 || len(reversing) != len(originalIDs) {
		return nil, fmt.Errorf("%w: reversal batch does not match originals", apperrors.ErrInvariant)
	}

	balanceChanges, err := ledger.BalanceChanges(reversing)
	if err != nil {
		return nil, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if err := r.setLockTimeout(ctx, tx); err != nil {
		return nil, err
	}

	committed, err := r.insertTransactions(ctx, tx, reversing)
	if err != nil {
		return nil, err
	}

	// Backlink originals. The guard on reversed_by IS NULL makes a concurrent
	// double-reversal lose deterministically.
	backlink := `
		UPDATE transactions
		SET reversed_by = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_id = $1 AND reversed_by IS NULL;
	`
	for i := range committed {
		ct, err := tx.Exec(ctx, backlink, originalIDs[i], committed[i].TransactionID, now, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to backlink original %s: %w", originalIDs[i], err)
		}
		if ct.RowsAffected() == 0 {
			return nil, fmt.Errorf("%w: transaction %s was already reversed", apperrors.ErrConflict, originalIDs[i])
		}
	}

	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}
	if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return nil, err
	}
	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return committed, nil
}

// insertTransactions inserts each entry and reads back its assigned sequence.
func (r *PgxJournalRepository) insertTransactions(ctx context.Context, tx pgx.Tx, txns []domain.Transaction) ([]domain.Transaction, error) {
	query := `
		INSERT INTO transactions (transaction_id, type, amount, occurred_at, description, account_id, from_account_id, to_account_id, transfer_id, project_id, counterparty_id, counterparty_role, reversal_of, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING sequence;
	`

	committed := make([]domain.Transaction, len(txns))
	for i := range txns {
		m := mapping.ToModelTransaction(txns[i])
		var sequence int64
		err := tx.QueryRow(ctx, query,
			m.TransactionID,
			m.Type,
			m.Amount,
			m.OccurredAt,
			m.Description,
			m.AccountID,
			m.FromAccountID,
			m.ToAccountID,
			m.TransferID,
			m.ProjectID,
			m.CounterpartyID,
			m.CounterpartyRole,
			m.ReversalOf,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		).Scan(&sequence)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, fmt.Errorf("%w: transaction %s was already committed", apperrors.ErrDuplicate, m.TransactionID)
			}
			return nil, fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
		}
		committed[i] = txns[i]
		committed[i].Sequence = sequence
	}
	return committed, nil
}

// setLockTimeout bounds how long the transaction waits on account row locks so
// contended appends fail fast with a retryable error instead of queueing.
func (r *PgxJournalRepository) setLockTimeout(ctx context.Context, tx pgx.Tx) error {
	timeoutMs := r.lockTimeout.Milliseconds()
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeoutMs)); err != nil {
		return fmt.Errorf("failed to set lock timeout: %w", err)
	}
	return nil
}

// FindTransactionByID retrieves a committed entry by its id.
func (r *PgxJournalRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// FindTransactionsByTransferID retrieves both legs of a transfer pair.
func (r *PgxJournalRepository) FindTransactionsByTransferID(ctx context.Context, transferID string) ([]domain.Transaction, error) {
	if transferID == "" {
		return nil, fmt.Errorf("%w: empty transfer id", apperrors.ErrValidation)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transfer_id = $1 ORDER BY sequence;`

	rows, err := r.Pool.Query(ctx, query, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfer %s: %w", transferID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transfer leg: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transfer legs: %w", rows.Err())
	}
	if len(txns) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return txns, nil
}

// ListTransactionsByAccount lists committed entries touching one account,
// ordered by occurred_at then sequence, with token-based cursor pagination.
func (r *PgxJournalRepository) ListTransactionsByAccount(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE (account_id = $1 OR from_account_id = $1 OR to_account_id = $1)
	`
	args := []any{filter.AccountID}
	argPos := 2

	if filter.From != nil {
		query += fmt.Sprintf(" AND occurred_at >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND occurred_at <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		occurredAt, sequence, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += fmt.Sprintf(" AND (occurred_at, sequence) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, occurredAt, sequence)
		argPos += 2
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(" ORDER BY occurred_at DESC, sequence DESC LIMIT $%d;", argPos)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for account %s: %w", filter.AccountID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	var nextToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[limit-1]
		token := pagination.EncodeToken(last.OccurredAt, last.Sequence)
		nextToken = &token
	}

	return txns, nextToken, nil
}
