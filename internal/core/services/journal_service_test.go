package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	portsrepo "github.com/bizbooks/ledger/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/ledger/internal/core/ports/services"
	"github.com/bizbooks/ledger/internal/core/services"
	"github.com/bizbooks/ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) FindTransactionsByTransferID(ctx context.Context, transferID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) ListTransactionsByAccount(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockJournalRepository) AppendTransactions(ctx context.Context, txns []domain.Transaction) ([]domain.Transaction, error) {
	args := m.Called(ctx, txns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockJournalRepository) AppendReversal(ctx context.Context, reversing []domain.Transaction, originalIDs []string, userID string, now time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, reversing, originalIDs, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockCounterpartyRepository is a mock type for the CounterpartyRepositoryFacade interface
type MockCounterpartyRepository struct {
	mock.Mock
}

func (m *MockCounterpartyRepository) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	args := m.Called(ctx, counterparty)
	return args.Error(0)
}

func (m *MockCounterpartyRepository) FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	args := m.Called(ctx, counterpartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Counterparty), args.Error(1)
}

func (m *MockCounterpartyRepository) ListCounterparties(ctx context.Context, role *domain.CounterpartyRole, limit int, offset int) ([]domain.Counterparty, error) {
	args := m.Called(ctx, role, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Counterparty), args.Error(1)
}

// MockProjectRepository is a mock type for the ProjectRepositoryFacade interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context, limit int, offset int) ([]domain.Project, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) UpdateProjectStatus(ctx context.Context, projectID string, status domain.ProjectStatus, userID string) error {
	args := m.Called(ctx, projectID, status, userID)
	return args.Error(0)
}

const (
	accountA = "11111111-1111-1111-1111-111111111111"
	accountB = "22222222-2222-2222-2222-222222222222"
	vendorX  = "33333333-3333-3333-3333-333333333333"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournal *MockJournalRepository
	mockAccount *MockAccountRepository
	mockCpty    *MockCounterpartyRepository
	mockProject *MockProjectRepository
	service     portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournal = new(MockJournalRepository)
	suite.mockAccount = new(MockAccountRepository)
	suite.mockCpty = new(MockCounterpartyRepository)
	suite.mockProject = new(MockProjectRepository)
	suite.service = services.NewJournalService(suite.mockJournal, suite.mockAccount, suite.mockCpty, suite.mockProject)
}

func (suite *JournalServiceTestSuite) expectActiveAccounts(ids ...string) {
	accounts := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		accounts[id] = domain.Account{AccountID: id, IsActive: true}
	}
	suite.mockAccount.On("FindAccountsByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(accounts, nil).Once()
}

func (suite *JournalServiceTestSuite) TestAppend_Expense() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:       "EXPENSE",
		Amount:     decimal.NewFromInt(200),
		OccurredAt: time.Now().UTC(),
		AccountID:  accountA,
	}

	suite.expectActiveAccounts(accountA)
	suite.mockJournal.On("AppendTransactions", ctx, mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			txns := args.Get(1).([]domain.Transaction)
			suite.Require().Len(txns, 1)
			suite.Equal(domain.Expense, txns[0].Type)
			suite.NotEmpty(txns[0].TransactionID)
		}).
		Return([]domain.Transaction{{TransactionID: "t-1", Type: domain.Expense, Amount: decimal.NewFromInt(200), AccountID: accountA, Sequence: 1}}, nil).Once()

	committed, err := suite.service.Append(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Expense, committed.Type)
	suite.Equal(int64(1), committed.Sequence)
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAppend_TransferTypeRejected() {
	req := dto.CreateTransactionRequest{
		Type:       "TRANSFER_OUT",
		Amount:     decimal.NewFromInt(50),
		OccurredAt: time.Now().UTC(),
		AccountID:  accountA,
	}

	_, err := suite.service.Append(context.Background(), req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournal.AssertNotCalled(suite.T(), "AppendTransactions")
}

func (suite *JournalServiceTestSuite) TestAppend_UnknownAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:       "INCOME",
		Amount:     decimal.NewFromInt(100),
		OccurredAt: time.Now().UTC(),
		AccountID:  accountA,
	}

	suite.mockAccount.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(map[string]domain.Account{}, nil).Once()

	_, err := suite.service.Append(ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestAppend_ClosedAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:       "INCOME",
		Amount:     decimal.NewFromInt(100),
		OccurredAt: time.Now().UTC(),
		AccountID:  accountA,
	}

	suite.mockAccount.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(map[string]domain.Account{accountA: {AccountID: accountA, IsActive: false}}, nil).Once()

	_, err := suite.service.Append(ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestAppend_CounterpartyRoleMismatch() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:             "DEBT_REPAID",
		Amount:           decimal.NewFromInt(150),
		OccurredAt:       time.Now().UTC(),
		AccountID:        accountA,
		CounterpartyID:   vendorX,
		CounterpartyRole: "CUSTOMER",
	}

	suite.expectActiveAccounts(accountA)
	suite.mockCpty.On("FindCounterpartyByID", ctx, vendorX).
		Return(&domain.Counterparty{CounterpartyID: vendorX, Role: domain.RoleVendor}, nil).Once()

	_, err := suite.service.Append(ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournal.AssertNotCalled(suite.T(), "AppendTransactions")
}

func (suite *JournalServiceTestSuite) TestAppend_IdempotentReplay() {
	ctx := context.Background()
	txnID := "44444444-4444-4444-4444-444444444444"
	req := dto.CreateTransactionRequest{
		TransactionID: txnID,
		Type:          "EXPENSE",
		Amount:        decimal.NewFromInt(200),
		OccurredAt:    time.Now().UTC(),
		AccountID:     accountA,
	}
	existing := &domain.Transaction{TransactionID: txnID, Type: domain.Expense, Amount: decimal.NewFromInt(200), AccountID: accountA, Sequence: 7}

	suite.expectActiveAccounts(accountA)
	suite.mockJournal.On("AppendTransactions", ctx, mock.AnythingOfType("[]domain.Transaction")).
		Return(nil, apperrors.ErrDuplicate).Once()
	suite.mockJournal.On("FindTransactionByID", ctx, txnID).Return(existing, nil).Once()

	committed, err := suite.service.Append(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(7), committed.Sequence)
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAppendTransfer_BuildsAtomicPair() {
	ctx := context.Background()
	req := dto.CreateTransferRequest{
		FromAccountID: accountA,
		ToAccountID:   accountB,
		Amount:        decimal.NewFromInt(300),
		OccurredAt:    time.Now().UTC(),
		Description:   "Move to savings",
	}

	suite.expectActiveAccounts(accountA, accountB)
	suite.mockJournal.On("AppendTransactions", ctx, mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			pair := args.Get(1).([]domain.Transaction)
			suite.Require().Len(pair, 2)
			suite.Equal(domain.TransferOut, pair[0].Type)
			suite.Equal(domain.TransferIn, pair[1].Type)
			suite.Equal(pair[0].TransferID, pair[1].TransferID)
			suite.NotEqual(pair[0].TransactionID, pair[1].TransactionID)
		}).
		Return([]domain.Transaction{
			{TransactionID: "out", Type: domain.TransferOut, Sequence: 1},
			{TransactionID: "in", Type: domain.TransferIn, Sequence: 2},
		}, nil).Once()

	committed, err := suite.service.AppendTransfer(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Len(committed, 2)
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestAppendTransfer_SameAccountRejected() {
	req := dto.CreateTransferRequest{
		FromAccountID: accountA,
		ToAccountID:   accountA,
		Amount:        decimal.NewFromInt(300),
		OccurredAt:    time.Now().UTC(),
	}

	_, err := suite.service.AppendTransfer(context.Background(), req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournal.AssertNotCalled(suite.T(), "AppendTransactions")
}

func (suite *JournalServiceTestSuite) TestAppendTransfer_IdempotentReplay() {
	ctx := context.Background()
	outID := "55555555-5555-5555-5555-555555555555"
	req := dto.CreateTransferRequest{
		TransactionID: outID,
		FromAccountID: accountA,
		ToAccountID:   accountB,
		Amount:        decimal.NewFromInt(300),
		OccurredAt:    time.Now().UTC(),
	}
	existingOut := &domain.Transaction{TransactionID: outID, Type: domain.TransferOut, TransferID: "xfer-1"}
	existingPair := []domain.Transaction{
		{TransactionID: outID, Type: domain.TransferOut, TransferID: "xfer-1", Sequence: 3},
		{TransactionID: "other", Type: domain.TransferIn, TransferID: "xfer-1", Sequence: 4},
	}

	suite.expectActiveAccounts(accountA, accountB)
	suite.mockJournal.On("AppendTransactions", ctx, mock.AnythingOfType("[]domain.Transaction")).
		Return(nil, apperrors.ErrDuplicate).Once()
	suite.mockJournal.On("FindTransactionByID", ctx, outID).Return(existingOut, nil).Once()
	suite.mockJournal.On("FindTransactionsByTransferID", ctx, "xfer-1").Return(existingPair, nil).Once()

	committed, err := suite.service.AppendTransfer(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Len(committed, 2)
	suite.Equal("xfer-1", committed[0].TransferID)
}

func (suite *JournalServiceTestSuite) TestReverse_SingleEntry() {
	ctx := context.Background()
	origID := "66666666-6666-6666-6666-666666666666"
	original := &domain.Transaction{
		TransactionID: origID,
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(200),
		OccurredAt:    time.Now().UTC(),
		Description:   "Office supplies",
		AccountID:     accountA,
	}

	suite.mockJournal.On("FindTransactionByID", ctx, origID).Return(original, nil).Once()
	suite.mockJournal.On("AppendReversal", ctx, mock.AnythingOfType("[]domain.Transaction"), []string{origID}, "user-1", mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			reversing := args.Get(1).([]domain.Transaction)
			suite.Require().Len(reversing, 1)
			suite.Equal(domain.Expense, reversing[0].Type)
			suite.True(reversing[0].Amount.Equal(decimal.NewFromInt(200)))
			suite.Require().NotNil(reversing[0].ReversalOf)
			suite.Equal(origID, *reversing[0].ReversalOf)
			suite.Equal("Reversal of: Office supplies", reversing[0].Description)
		}).
		Return([]domain.Transaction{{TransactionID: "rev-1", Type: domain.Expense}}, nil).Once()

	committed, err := suite.service.Reverse(ctx, origID, "user-1")

	suite.Require().NoError(err)
	suite.Len(committed, 1)
	suite.mockJournal.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestReverse_TransferPair() {
	ctx := context.Background()
	outID := "77777777-7777-7777-7777-777777777777"
	legs := []domain.Transaction{
		{TransactionID: outID, Type: domain.TransferOut, Amount: decimal.NewFromInt(300), FromAccountID: accountA, ToAccountID: accountB, TransferID: "xfer-2"},
		{TransactionID: "in-leg", Type: domain.TransferIn, Amount: decimal.NewFromInt(300), FromAccountID: accountA, ToAccountID: accountB, TransferID: "xfer-2"},
	}

	suite.mockJournal.On("FindTransactionByID", ctx, outID).Return(&legs[0], nil).Once()
	suite.mockJournal.On("FindTransactionsByTransferID", ctx, "xfer-2").Return(legs, nil).Once()
	suite.mockJournal.On("AppendReversal", ctx, mock.AnythingOfType("[]domain.Transaction"), []string{outID, "in-leg"}, "user-1", mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			reversing := args.Get(1).([]domain.Transaction)
			suite.Require().Len(reversing, 2)
			suite.Equal(reversing[0].TransferID, reversing[1].TransferID)
			suite.NotEqual("xfer-2", reversing[0].TransferID)
		}).
		Return([]domain.Transaction{{TransactionID: "rev-out"}, {TransactionID: "rev-in"}}, nil).Once()

	committed, err := suite.service.Reverse(ctx, outID, "user-1")

	suite.Require().NoError(err)
	suite.Len(committed, 2)
}

func (suite *JournalServiceTestSuite) TestReverse_AlreadyReversed() {
	ctx := context.Background()
	origID := "88888888-8888-8888-8888-888888888888"
	reversedBy := "rev-9"
	original := &domain.Transaction{TransactionID: origID, Type: domain.Income, ReversedBy: &reversedBy}

	suite.mockJournal.On("FindTransactionByID", ctx, origID).Return(original, nil).Once()

	_, err := suite.service.Reverse(ctx, origID, "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournal.AssertNotCalled(suite.T(), "AppendReversal")
}

func (suite *JournalServiceTestSuite) TestReverse_ReversalOfReversal() {
	ctx := context.Background()
	origTarget := "orig-1"
	reversal := &domain.Transaction{TransactionID: "rev-1", Type: domain.Income, ReversalOf: &origTarget}

	suite.mockJournal.On("FindTransactionByID", ctx, "rev-1").Return(reversal, nil).Once()

	_, err := suite.service.Reverse(ctx, "rev-1", "user-1")

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournal.AssertNotCalled(suite.T(), "AppendReversal")
}

func (suite *JournalServiceTestSuite) TestReverse_NotFound() {
	ctx := context.Background()
	suite.mockJournal.On("FindTransactionByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Reverse(ctx, "missing", "user-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestListTransactions_AccountMustExist() {
	ctx := context.Background()
	suite.mockAccount.On("FindAccountByID", ctx, accountA).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListTransactionsByAccount(ctx, dto.ListTransactionsParams{AccountID: accountA})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournal.AssertNotCalled(suite.T(), "ListTransactionsByAccount")
}

func (suite *JournalServiceTestSuite) TestListTransactions_ClampsLimit() {
	ctx := context.Background()
	account := &domain.Account{AccountID: accountA, IsActive: true}
	suite.mockAccount.On("FindAccountByID", ctx, accountA).Return(account, nil).Once()
	suite.mockJournal.On("ListTransactionsByAccount", ctx, mock.MatchedBy(func(f portsrepo.ListTransactionsFilter) bool {
		return f.Limit == 20
	})).Return([]domain.Transaction{}, nil, nil).Once()

	resp, err := suite.service.ListTransactionsByAccount(ctx, dto.ListTransactionsParams{AccountID: accountA, Limit: 500})

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.mockJournal.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
