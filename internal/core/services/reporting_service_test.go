package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/bizbooks/ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetObligationSums(ctx context.Context, role domain.CounterpartyRole) ([]domain.Obligation, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Obligation), args.Error(1)
}

func (m *MockReportingRepository) GetProjectLedgerGroups(ctx context.Context, from, to time.Time) ([]domain.ProjectSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectSummary), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyBuckets(ctx context.Context, from, to time.Time) ([]domain.MonthlySummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySummary), args.Error(1)
}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	from     time.Time
	to       time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.from = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_InvalidRange() {
	service := services.NewReportingService(suite.mockRepo)

	_, err := service.ProfitAndLoss(context.Background(), suite.to, suite.from)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetMonthlyBuckets")
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_MonthlyBucketsReconcile() {
	ctx := context.Background()
	service := services.NewReportingService(suite.mockRepo)

	months := []domain.MonthlySummary{
		{Year: 2025, Month: 1, Income: decimal.NewFromInt(1000), DirectCosts: decimal.NewFromInt(400), OperatingExpenses: decimal.NewFromInt(100)},
		{Year: 2025, Month: 2, Income: decimal.NewFromInt(2000), DirectCosts: decimal.NewFromInt(700), OperatingExpenses: decimal.NewFromInt(300)},
	}
	suite.mockRepo.On("GetProjectLedgerGroups", mock.Anything, suite.from, suite.to).Return([]domain.ProjectSummary{}, nil).Once()
	suite.mockRepo.On("GetMonthlyBuckets", mock.Anything, suite.from, suite.to).Return(months, nil).Once()

	report, err := service.ProfitAndLoss(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(report.GrossProfit.Equal(decimal.NewFromInt(1900)))
	suite.True(report.OperatingExpenses.Equal(decimal.NewFromInt(400)))
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(1500)))

	// Summing the bucket net profits must give the headline net profit.
	sum := decimal.Zero
	for _, m := range report.Months {
		sum = sum.Add(m.NetProfit)
	}
	suite.True(sum.Equal(report.NetProfit))
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_RealizedVsPotential() {
	ctx := context.Background()
	service := services.NewReportingService(suite.mockRepo)

	projects := []domain.ProjectSummary{
		{ProjectID: "p-1", Name: "Done deal", Status: domain.ProjectCompleted, TotalIncome: decimal.NewFromInt(500), TotalDirectCosts: decimal.NewFromInt(200)},
		{ProjectID: "p-2", Name: "In flight", Status: domain.ProjectActive, TotalIncome: decimal.NewFromInt(800), TotalDirectCosts: decimal.NewFromInt(100)},
	}
	suite.mockRepo.On("GetProjectLedgerGroups", mock.Anything, suite.from, suite.to).Return(projects, nil).Once()
	suite.mockRepo.On("GetMonthlyBuckets", mock.Anything, suite.from, suite.to).Return([]domain.MonthlySummary{}, nil).Once()

	report, err := service.ProfitAndLoss(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(report.RealizedProfit.Equal(decimal.NewFromInt(300)))
	suite.True(report.PotentialProfit.Equal(decimal.NewFromInt(700)))
	suite.True(report.Projects[0].NetProfit.Equal(decimal.NewFromInt(300)))
	suite.True(report.Projects[1].NetProfit.Equal(decimal.NewFromInt(700)))
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_RepositoryError() {
	ctx := context.Background()
	service := services.NewReportingService(suite.mockRepo)

	suite.mockRepo.On("GetProjectLedgerGroups", mock.Anything, suite.from, suite.to).Return([]domain.ProjectSummary{}, nil).Maybe()
	suite.mockRepo.On("GetMonthlyBuckets", mock.Anything, suite.from, suite.to).Return(nil, apperrors.ErrInternal).Once()

	_, err := service.ProfitAndLoss(ctx, suite.from, suite.to)

	suite.Error(err)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
