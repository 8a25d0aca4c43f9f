package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/novaerp/accounting_backend/internal/core/domain"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/core/services"
)

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetAccountTotalsAsOf(ctx context.Context, asOf time.Time) ([]domain.AccountTotals, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotals), args.Error(1)
}

func (m *MockReportingRepository) GetAccountTotalsBetween(ctx context.Context, from, to time.Time) ([]domain.AccountTotals, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotals), args.Error(1)
}

// --- Test Suite Setup ---

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockAccountRepo   *MockAccountRepository
	mockBudgetRepo    *MockBudgetRepository
	service           portssvc.ReportingSvcFacade

	cash    domain.Account
	sales   domain.Account
	rent    domain.Account
	payable domain.Account
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockAccountRepo, suite.mockBudgetRepo)

	suite.cash = domain.Account{AccountID: uuid.NewString(), Code: "1010", Name: "Cash", AccountType: domain.Asset}
	suite.sales = domain.Account{AccountID: uuid.NewString(), Code: "4010", Name: "Sales", AccountType: domain.Revenue}
	suite.rent = domain.Account{AccountID: uuid.NewString(), Code: "5010", Name: "Rent", AccountType: domain.Expense}
	suite.payable = domain.Account{AccountID: uuid.NewString(), Code: "2010", Name: "Payables", AccountType: domain.Liability}
}

func (suite *ReportingServiceTestSuite) allAccounts() []domain.Account {
	return []domain.Account{suite.cash, suite.payable, suite.sales, suite.rent}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestIncomeStatement_RevenueFromPostedSale() {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	// One posted sale: debit cash 100, credit sales 100.
	totals := []domain.AccountTotals{
		{AccountID: suite.cash.AccountID, TotalDebit: decimal.NewFromInt(100), TotalCredit: decimal.Zero},
		{AccountID: suite.sales.AccountID, TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(100)},
	}
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.allAccounts(), nil).Once()
	suite.mockReportingRepo.On("GetAccountTotalsBetween", ctx, from, to).Return(totals, nil).Once()

	report, err := suite.service.IncomeStatement(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Revenue, 1)
	suite.Equal("4010", report.Revenue[0].AccountCode)
	suite.True(report.Revenue[0].Balance.Equal(decimal.NewFromInt(100)))
	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(100)))
	suite.True(report.TotalExpenses.IsZero())
	suite.True(report.NetIncome.Equal(decimal.NewFromInt(100)))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_GroupsByType() {
	ctx := context.Background()
	asOf := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	totals := []domain.AccountTotals{
		{AccountID: suite.cash.AccountID, TotalDebit: decimal.NewFromInt(500), TotalCredit: decimal.NewFromInt(100)},
		{AccountID: suite.payable.AccountID, TotalDebit: decimal.NewFromInt(50), TotalCredit: decimal.NewFromInt(250)},
	}
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.allAccounts(), nil).Once()
	suite.mockReportingRepo.On("GetAccountTotalsAsOf", ctx, asOf).Return(totals, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.Equal("2026-06-30", report.AsOfDate)
	suite.Require().Len(report.Assets, 1)
	suite.True(report.Assets[0].Balance.Equal(decimal.NewFromInt(400)))
	suite.Require().Len(report.Liabilities, 1)
	suite.True(report.Liabilities[0].Balance.Equal(decimal.NewFromInt(-200)))
	suite.Empty(report.Equity)
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(400)))
	suite.True(report.TotalLiabilities.Equal(decimal.NewFromInt(-200)))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_ChildLevelsFollowParents() {
	ctx := context.Background()
	asOf := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	parent := domain.Account{AccountID: uuid.NewString(), Code: "1000", Name: "Current Assets", AccountType: domain.Asset}
	child := domain.Account{AccountID: uuid.NewString(), Code: "1010", Name: "Cash", AccountType: domain.Asset, ParentAccountID: &parent.AccountID}
	accounts := []domain.Account{parent, child}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()
	suite.mockReportingRepo.On("GetAccountTotalsAsOf", ctx, asOf).Return([]domain.AccountTotals{}, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(report.Assets, 2)
	suite.Equal("1000", report.Assets[0].AccountCode)
	suite.Equal(0, report.Assets[0].Level)
	suite.Equal("1010", report.Assets[1].AccountCode)
	suite.Equal(1, report.Assets[1].Level)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_TotalsMatchWhenEntriesBalance() {
	ctx := context.Background()
	asOf := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)

	totals := []domain.AccountTotals{
		{AccountID: suite.cash.AccountID, TotalDebit: decimal.NewFromInt(300), TotalCredit: decimal.NewFromInt(50)},
		{AccountID: suite.sales.AccountID, TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(300)},
		{AccountID: suite.rent.AccountID, TotalDebit: decimal.NewFromInt(50), TotalCredit: decimal.Zero},
	}
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.allAccounts(), nil).Once()
	suite.mockReportingRepo.On("GetAccountTotalsAsOf", ctx, asOf).Return(totals, nil).Once()

	report, err := suite.service.TrialBalance(ctx, asOf)

	suite.Require().NoError(err)
	suite.Len(report.Rows, 4)
	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(350)))
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(350)))
	suite.True(report.TotalDebit.Equal(report.TotalCredit))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBudgetVsActual_VarianceComputed() {
	ctx := context.Background()
	year := 2026
	budgets := []domain.Budget{
		{BudgetID: uuid.NewString(), AccountID: suite.rent.AccountID, FiscalYear: year, Amount: decimal.NewFromInt(1000)},
	}
	totals := []domain.AccountTotals{
		{AccountID: suite.rent.AccountID, TotalDebit: decimal.NewFromInt(1200), TotalCredit: decimal.Zero},
	}
	accountsMap := map[string]domain.Account{suite.rent.AccountID: suite.rent}

	suite.mockBudgetRepo.On("ListBudgets", ctx, mock.Anything).Return(budgets, nil).Once()
	suite.mockReportingRepo.On("GetAccountTotalsBetween", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(totals, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{suite.rent.AccountID}).Return(accountsMap, nil).Once()

	rows, err := suite.service.BudgetVsActual(ctx, year, nil)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.True(rows[0].Budgeted.Equal(decimal.NewFromInt(1000)))
	suite.True(rows[0].Actual.Equal(decimal.NewFromInt(1200)))
	suite.True(rows[0].Variance.Equal(decimal.NewFromInt(200)))
	suite.True(rows[0].VariancePct.Equal(decimal.NewFromInt(20)))
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBudgetVsActual_ZeroBudgetSkipsPct() {
	ctx := context.Background()
	year := 2026
	budgets := []domain.Budget{
		{BudgetID: uuid.NewString(), AccountID: suite.rent.AccountID, FiscalYear: year, Amount: decimal.Zero},
	}
	totals := []domain.AccountTotals{
		{AccountID: suite.rent.AccountID, TotalDebit: decimal.NewFromInt(75), TotalCredit: decimal.Zero},
	}
	accountsMap := map[string]domain.Account{suite.rent.AccountID: suite.rent}

	suite.mockBudgetRepo.On("ListBudgets", ctx, mock.Anything).Return(budgets, nil).Once()
	suite.mockReportingRepo.On("GetAccountTotalsBetween", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(totals, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{suite.rent.AccountID}).Return(accountsMap, nil).Once()

	rows, err := suite.service.BudgetVsActual(ctx, year, nil)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.True(rows[0].Variance.Equal(decimal.NewFromInt(75)))
	suite.True(rows[0].VariancePct.IsZero())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
