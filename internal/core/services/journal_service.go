package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	portsrepo "github.com/bizbooks/ledger/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/ledger/internal/core/ports/services"
	"github.com/bizbooks/ledger/internal/dto"
	"github.com/google/uuid"
)

// journalService implements the JournalSvcFacade interface.
type journalService struct {
	BaseService
	journalRepo      portsrepo.JournalRepositoryFacade
	accountRepo      portsrepo.AccountReader
	counterpartyRepo portsrepo.CounterpartyRepositoryFacade
	projectRepo      portsrepo.ProjectRepositoryFacade
	notifier         portssvc.CommitNotifier
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithCommitNotifier wires a best-effort post-commit notifier.
func WithCommitNotifier(n portssvc.CommitNotifier) JournalServiceOption {
	return func(s *journalService) {
		s.notifier = n
	}
}

// NewJournalService creates a new journal service.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	counterpartyRepo portsrepo.CounterpartyRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	options ...JournalServiceOption,
) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo:      journalRepo,
		accountRepo:      accountRepo,
		counterpartyRepo: counterpartyRepo,
		projectRepo:      projectRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// Append validates and commits one journal entry with its balance effect.
func (s *journalService) Append(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	now := time.Now().UTC()

	txnID := req.TransactionID
	if txnID == "" {
		txnID = uuid.NewString()
	}

	txn := domain.Transaction{
		TransactionID:    txnID,
		Type:             domain.TransactionType(req.Type),
		Amount:           req.Amount,
		OccurredAt:       req.OccurredAt,
		Description:      req.Description,
		AccountID:        req.AccountID,
		ProjectID:        req.ProjectID,
		CounterpartyID:   req.CounterpartyID,
		CounterpartyRole: domain.CounterpartyRole(req.CounterpartyRole),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if txn.IsTransfer() {
		return nil, fmt.Errorf("%w: transfer legs must be created through the transfer endpoint", apperrors.ErrValidation)
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, []domain.Transaction{txn}); err != nil {
		return nil, err
	}

	committed, err := s.journalRepo.AppendTransactions(ctx, []domain.Transaction{txn})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Idempotent retry: the entry was already committed, return it
			// without a second balance effect.
			existing, findErr := s.journalRepo.FindTransactionByID(ctx, txnID)
			if findErr != nil {
				s.LogError(ctx, findErr, "Failed to fetch already-committed transaction on replay", slog.String("transaction_id", txnID))
				return nil, fmt.Errorf("failed to fetch committed transaction: %w", findErr)
			}
			s.LogInfo(ctx, "Replayed append returned committed entry", slog.String("transaction_id", txnID))
			return existing, nil
		}
		s.LogError(ctx, err, "Failed to append transaction", slog.String("transaction_id", txnID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction committed", slog.String("transaction_id", committed[0].TransactionID), slog.String("type", string(committed[0].Type)))
	s.notifyCommitted(ctx, committed)
	return &committed[0], nil
}

// AppendTransfer commits an atomic transfer pair sharing one transferID.
func (s *journalService) AppendTransfer(ctx context.Context, req dto.CreateTransferRequest, userID string) ([]domain.Transaction, error) {
	now := time.Now().UTC()
	transferID := uuid.NewString()

	outID := req.TransactionID
	if outID == "" {
		outID = uuid.NewString()
	}

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	pair := []domain.Transaction{
		{
			TransactionID: outID,
			Type:          domain.TransferOut,
			Amount:        req.Amount,
			OccurredAt:    req.OccurredAt,
			Description:   req.Description,
			FromAccountID: req.FromAccountID,
			ToAccountID:   req.ToAccountID,
			TransferID:    transferID,
			ProjectID:     req.ProjectID,
			AuditFields:   audit,
		},
		{
			TransactionID: uuid.NewString(),
			Type:          domain.TransferIn,
			Amount:        req.Amount,
			OccurredAt:    req.OccurredAt,
			Description:   req.Description,
			FromAccountID: req.FromAccountID,
			ToAccountID:   req.ToAccountID,
			TransferID:    transferID,
			ProjectID:     req.ProjectID,
			AuditFields:   audit,
		},
	}

	for i := range pair {
		if err := pair[i].Validate(); err != nil {
			return nil, err
		}
	}
	if err := s.checkReferences(ctx, pair); err != nil {
		return nil, err
	}

	committed, err := s.journalRepo.AppendTransactions(ctx, pair)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// The OUT leg carries the caller's idempotency key; return the
			// whole previously committed pair.
			existing, findErr := s.journalRepo.FindTransactionByID(ctx, outID)
			if findErr != nil {
				return nil, fmt.Errorf("failed to fetch committed transfer: %w", findErr)
			}
			legs, findErr := s.journalRepo.FindTransactionsByTransferID(ctx, existing.TransferID)
			if findErr != nil {
				return nil, fmt.Errorf("failed to fetch committed transfer legs: %w", findErr)
			}
			s.LogInfo(ctx, "Replayed transfer returned committed pair", slog.String("transfer_id", existing.TransferID))
			return legs, nil
		}
		s.LogError(ctx, err, "Failed to append transfer", slog.String("transfer_id", transferID))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer committed",
		slog.String("transfer_id", transferID),
		slog.String("from_account", req.FromAccountID),
		slog.String("to_account", req.ToAccountID))
	s.notifyCommitted(ctx, committed)
	return committed, nil
}

// Reverse posts a reversing entry (or pair) for a committed original.
func (s *journalService) Reverse(ctx context.Context, transactionID string, userID string) ([]domain.Transaction, error) {
	originals, err := s.loadReversalTargets(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	originalIDs := make([]string, 0, len(originals))
	reversing := make([]domain.Transaction, 0, len(originals))
	for i := range originals {
		orig := originals[i]
		originalIDs = append(originalIDs, orig.TransactionID)
		origID := orig.TransactionID
		rev := domain.Transaction{
			TransactionID:    uuid.NewString(),
			Type:             orig.Type,
			Amount:           orig.Amount,
			OccurredAt:       orig.OccurredAt,
			Description:      fmt.Sprintf("Reversal of: %s", strings.TrimSpace(orig.Description)),
			AccountID:        orig.AccountID,
			FromAccountID:    orig.FromAccountID,
			ToAccountID:      orig.ToAccountID,
			ProjectID:        orig.ProjectID,
			CounterpartyID:   orig.CounterpartyID,
			CounterpartyRole: orig.CounterpartyRole,
			ReversalOf:       &origID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		if orig.IsTransfer() {
			// The reversing pair is its own atomic transfer.
			rev.TransferID = uuid.NewString()
		}
		reversing = append(reversing, rev)
	}
	if len(reversing) == 2 && reversing[0].IsTransfer() {
		// Both reversing legs must share one transferID.
		reversing[1].TransferID = reversing[0].TransferID
	}

	committed, err := s.journalRepo.AppendReversal(ctx, reversing, originalIDs, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to append reversal", slog.String("original_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction reversed", slog.String("original_id", transactionID), slog.Int("entries", len(committed)))
	s.notifyCommitted(ctx, committed)
	return committed, nil
}

func (s *journalService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.journalRepo.FindTransactionByID(ctx, transactionID)
}

func (s *journalService) ListTransactionsByAccount(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, params.AccountID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	txns, nextToken, err := s.journalRepo.ListTransactionsByAccount(ctx, portsrepo.ListTransactionsFilter{
		AccountID: params.AccountID,
		From:      params.From,
		To:        params.To,
		Limit:     limit,
		NextToken: params.NextToken,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("account_id", params.AccountID))
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// loadReversalTargets fetches the original entry (and its pair leg for
// transfers) and rejects targets that cannot be reversed.
func (s *journalService) loadReversalTargets(ctx context.Context, transactionID string) ([]domain.Transaction, error) {
	original, err := s.journalRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if original.IsReversal() {
		return nil, fmt.Errorf("%w: transaction %s is itself a reversal", apperrors.ErrConflict, transactionID)
	}
	if original.ReversedBy != nil {
		return nil, fmt.Errorf("%w: transaction %s was already reversed by %s", apperrors.ErrConflict, transactionID, *original.ReversedBy)
	}

	if !original.IsTransfer() {
		return []domain.Transaction{*original}, nil
	}

	legs, err := s.journalRepo.FindTransactionsByTransferID(ctx, original.TransferID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transfer legs: %w", err)
	}
	if len(legs) != 2 {
		return nil, fmt.Errorf("%w: transfer %s has %d legs", apperrors.ErrInvariant, original.TransferID, len(legs))
	}
	for i := range legs {
		if legs[i].ReversedBy != nil {
			return nil, fmt.Errorf("%w: transfer %s was already reversed", apperrors.ErrConflict, original.TransferID)
		}
	}
	return legs, nil
}

// checkReferences verifies every account, project and counterparty referenced
// by the batch exists and is usable.
func (s *journalService) checkReferences(ctx context.Context, txns []domain.Transaction) error {
	accountIDs := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, txn := range txns {
		ids := []string{txn.AccountID, txn.FromAccountID, txn.ToAccountID}
		for _, id := range ids {
			if id != "" && !seen[id] {
				seen[id] = true
				accountIDs = append(accountIDs, id)
			}
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		acc, found := accounts[id]
		if !found {
			return fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
		}
		if !acc.IsActive {
			return fmt.Errorf("%w: account %s is closed", apperrors.ErrValidation, id)
		}
	}

	for _, txn := range txns {
		if txn.ProjectID != "" {
			if _, err := s.projectRepo.FindProjectByID(ctx, txn.ProjectID); err != nil {
				return fmt.Errorf("project %s: %w", txn.ProjectID, err)
			}
		}
		if txn.CounterpartyID != "" {
			cpty, err := s.counterpartyRepo.FindCounterpartyByID(ctx, txn.CounterpartyID)
			if err != nil {
				return fmt.Errorf("counterparty %s: %w", txn.CounterpartyID, err)
			}
			if cpty.Role != txn.CounterpartyRole {
				return fmt.Errorf("%w: counterparty %s has role %s, entry says %s", apperrors.ErrValidation, txn.CounterpartyID, cpty.Role, txn.CounterpartyRole)
			}
		}
	}
	return nil
}

// notifyCommitted invokes the notifier if one is wired. Best effort only.
func (s *journalService) notifyCommitted(ctx context.Context, txns []domain.Transaction) {
	if s.notifier == nil {
		return
	}
	s.notifier.NotifyCommitted(ctx, txns)
}
