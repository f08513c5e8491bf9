package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizbooks/ledger/internal/apperrors"
	"github.com/bizbooks/ledger/internal/core/domain"
	"github.com/bizbooks/ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ObligationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	now      time.Time
}

func (suite *ObligationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func (suite *ObligationServiceTestSuite) TestListObligations_InvalidRole() {
	service := services.NewObligationService(suite.mockRepo)

	_, err := service.ListObligations(context.Background(), domain.CounterpartyRole("SUPPLIER"))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetObligationSums")
}

func (suite *ObligationServiceTestSuite) TestListObligations_DerivesStatusPerRow() {
	ctx := context.Background()
	service := services.NewObligationService(suite.mockRepo,
		services.WithClock(func() time.Time { return suite.now }),
		services.WithUpcomingWindow(7*24*time.Hour),
	)

	overdueDue := suite.now.Add(-48 * time.Hour)
	upcomingDue := suite.now.Add(3 * 24 * time.Hour)
	farDue := suite.now.Add(30 * 24 * time.Hour)

	sums := []domain.Obligation{
		{CounterpartyID: "c-1", Role: domain.RoleVendor, AmountOwed: decimal.NewFromInt(1000), AmountSettled: decimal.NewFromInt(400), DueDate: &overdueDue},
		{CounterpartyID: "c-2", Role: domain.RoleVendor, AmountOwed: decimal.NewFromInt(500), AmountSettled: decimal.NewFromInt(100), DueDate: &upcomingDue},
		{CounterpartyID: "c-3", Role: domain.RoleVendor, AmountOwed: decimal.NewFromInt(200), AmountSettled: decimal.NewFromInt(200), DueDate: &overdueDue},
		{CounterpartyID: "c-4", Role: domain.RoleVendor, AmountOwed: decimal.NewFromInt(300), AmountSettled: decimal.NewFromInt(350)},
		{CounterpartyID: "c-5", Role: domain.RoleVendor, AmountOwed: decimal.NewFromInt(900), AmountSettled: decimal.Zero, DueDate: &farDue},
	}
	suite.mockRepo.On("GetObligationSums", ctx, domain.RoleVendor).Return(sums, nil).Once()

	result, err := service.ListObligations(ctx, domain.RoleVendor)

	suite.Require().NoError(err)
	suite.Require().Len(result, 5)

	suite.Equal(domain.ObligationOverdue, result[0].Status)
	suite.True(result[0].Remaining.Equal(decimal.NewFromInt(600)))

	suite.Equal(domain.ObligationUpcoming, result[1].Status)

	// Fully settled beats overdue even with a past due date.
	suite.Equal(domain.ObligationPaid, result[2].Status)
	suite.True(result[2].Remaining.IsZero())

	// Overpayment clamps remaining at zero and reports the surplus.
	suite.Equal(domain.ObligationPaid, result[3].Status)
	suite.True(result[3].Remaining.IsZero())
	suite.True(result[3].Surplus.Equal(decimal.NewFromInt(50)))

	suite.Equal(domain.ObligationActive, result[4].Status)
}

func (suite *ObligationServiceTestSuite) TestListObligations_CustomWindow() {
	ctx := context.Background()
	service := services.NewObligationService(suite.mockRepo,
		services.WithClock(func() time.Time { return suite.now }),
		services.WithUpcomingWindow(24*time.Hour),
	)

	due := suite.now.Add(3 * 24 * time.Hour)
	sums := []domain.Obligation{
		{CounterpartyID: "c-1", Role: domain.RoleCustomer, AmountOwed: decimal.NewFromInt(100), AmountSettled: decimal.Zero, DueDate: &due},
	}
	suite.mockRepo.On("GetObligationSums", ctx, domain.RoleCustomer).Return(sums, nil).Once()

	result, err := service.ListObligations(ctx, domain.RoleCustomer)

	suite.Require().NoError(err)
	// Three days out is no longer upcoming under a one-day window.
	suite.Equal(domain.ObligationActive, result[0].Status)
}

func (suite *ObligationServiceTestSuite) TestListObligations_RepositoryError() {
	ctx := context.Background()
	service := services.NewObligationService(suite.mockRepo)

	suite.mockRepo.On("GetObligationSums", ctx, domain.RoleVendor).Return(nil, apperrors.ErrInternal).Once()

	_, err := service.ListObligations(ctx, domain.RoleVendor)

	suite.Error(err)
}

func TestObligationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ObligationServiceTestSuite))
}
