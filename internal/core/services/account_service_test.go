package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	portssvc "github.com/bizbooks/ledger/internal/core/ports/services"
	"github.com/bizbooks/ledger/internal/core/services"
	"github.com/bizbooks/ledger/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) HasTransactions(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, userID, now)
	return args.Error(0)
}

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo, services.WithDefaultCurrency("INR"))
}

func (suite *AccountServiceTestSuite) TestOpenAccount_Success() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{
		Name:           "Main Bank",
		Kind:           "BANK",
		CurrencyCode:   "INR",
		OpeningBalance: decimal.NewFromInt(1000),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.OpenAccount(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(domain.Bank, account.Kind)
	suite.True(account.Balance.Equal(decimal.NewFromInt(1000)))
	suite.True(account.OpeningBalance.Equal(decimal.NewFromInt(1000)))
	suite.True(account.IsActive)
	suite.Equal(int64(1), account.Version)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestOpenAccount_BlankName() {
	req := dto.OpenAccountRequest{Name: "   ", Kind: "CASH"}

	_, err := suite.service.OpenAccount(context.Background(), req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestOpenAccount_NegativeOpeningBalance() {
	req := dto.OpenAccountRequest{
		Name:           "Petty Cash",
		Kind:           "CASH",
		OpeningBalance: decimal.NewFromInt(-10),
	}

	_, err := suite.service.OpenAccount(context.Background(), req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestOpenAccount_DefaultCurrency() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{Name: "Wallet", Kind: "MOBILE_MONEY"}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.OpenAccount(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("INR", account.CurrencyCode)
}

func (suite *AccountServiceTestSuite) TestCloseAccount_Success() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "acc-1", Balance: decimal.Zero, IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockRepo.On("HasTransactions", ctx, "acc-1").Return(false, nil).Once()
	suite.mockRepo.On("DeactivateAccount", ctx, "acc-1", "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.CloseAccount(ctx, "acc-1", "user-1")

	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCloseAccount_NonZeroBalance() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "acc-1", Balance: decimal.NewFromInt(500), IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()

	err := suite.service.CloseAccount(ctx, "acc-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateAccount")
}

func (suite *AccountServiceTestSuite) TestCloseAccount_ReferencedByJournal() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "acc-1", Balance: decimal.Zero, IsActive: true}

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockRepo.On("HasTransactions", ctx, "acc-1").Return(true, nil).Once()

	err := suite.service.CloseAccount(ctx, "acc-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeactivateAccount")
}

func (suite *AccountServiceTestSuite) TestCloseAccount_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.CloseAccount(ctx, "missing", "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestGetBalance() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "acc-1", Balance: decimal.NewFromInt(800)}

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()

	balance, err := suite.service.GetBalance(ctx, "acc-1")

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(800)))
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
