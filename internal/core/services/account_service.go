package services

import (
	"context"
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
	"github.com/shopspring/decimal"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	defaultCurrency string
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountServiceImpl)

// WithDefaultCurrency sets the currency applied when a request omits one.
func WithDefaultCurrency(code string) AccountServiceOption {
	return func(s *accountServiceImpl) {
		s.defaultCurrency = code
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountServiceImpl{
		accountRepo:     repo,
		defaultCurrency: "INR",
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) OpenAccount(ctx context.Context, req dto.OpenAccountRequest, userID string) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		err := fmt.Errorf("account name must not be blank: %w", apperrors.ErrValidation)
		s.LogError(ctx, err, "Rejected account open request")
		return nil, err
	}
	if req.OpeningBalance.IsNegative() {
		err := fmt.Errorf("opening balance must not be negative: %w", apperrors.ErrValidation)
		s.LogError(ctx, err, "Rejected account open request", slog.String("name", name))
		return nil, err
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = s.defaultCurrency
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           name,
		Kind:           domain.AccountKind(req.Kind),
		CurrencyCode:   currency,
		OpeningBalance: req.OpeningBalance,
		Balance:        req.OpeningBalance,
		IsActive:       true,
		Version:        1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save new account", slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account opened", slog.String("account_id", account.AccountID), slog.String("kind", string(account.Kind)))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountServiceImpl) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

func (s *accountServiceImpl) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

func (s *accountServiceImpl) CloseAccount(ctx context.Context, accountID string, userID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account for closing", slog.String("account_id", accountID))
		return err
	}
	if !account.IsActive {
		return fmt.Errorf("account %s is already closed: %w", accountID, apperrors.ErrConflict)
	}
	if !account.Balance.IsZero() {
		return fmt.Errorf("account %s still holds a balance of %s: %w", accountID, account.Balance.String(), apperrors.ErrConflict)
	}

	hasTxns, err := s.accountRepo.HasTransactions(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check journal references", slog.String("account_id", accountID))
		return fmt.Errorf("failed to check journal references: %w", err)
	}
	if hasTxns {
		return fmt.Errorf("account %s is referenced by journal entries: %w", accountID, apperrors.ErrConflict)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	s.LogInfo(ctx, "Account closed", slog.String("account_id", accountID))
	return nil
}
