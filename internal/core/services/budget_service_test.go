package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	portsrepo "github.com/novaerp/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/core/services"
	"github.com/novaerp/accounting_backend/internal/dto"
)

// MockBudgetRepository is a mock type for the BudgetRepositoryFacade interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetByAccountAndYear(ctx context.Context, accountID string, fiscalYear int) (*domain.Budget, error) {
	args := m.Called(ctx, accountID, fiscalYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, filter portsrepo.BudgetFilter) ([]domain.Budget, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

// --- Test Suite Setup ---

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo  *MockBudgetRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.BudgetSvcFacade
	userID          string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockAccountRepo)
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateBudgetRequest{
		AccountID:  accountID,
		FiscalYear: 2026,
		Amount:     decimal.NewFromInt(50000),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockBudgetRepo.On("FindBudgetByAccountAndYear", ctx, accountID, 2026).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	created, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.BudgetID)
	suite.Equal(2026, created.FiscalYear)
	suite.True(created.Amount.Equal(decimal.NewFromInt(50000)))
	suite.Equal(suite.userID, created.CreatedBy)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_DuplicateYearRejected() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateBudgetRequest{
		AccountID:  accountID,
		FiscalYear: 2026,
		Amount:     decimal.NewFromInt(60000),
	}
	existing := &domain.Budget{BudgetID: uuid.NewString(), AccountID: accountID, FiscalYear: 2026}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(&domain.Account{AccountID: accountID}, nil).Once()
	suite.mockBudgetRepo.On("FindBudgetByAccountAndYear", ctx, accountID, 2026).Return(existing, nil).Once()

	created, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.ErrorIs(err, services.ErrDuplicateBudget)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_AccountMissing() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateBudgetRequest{
		AccountID:  accountID,
		FiscalYear: 2026,
		Amount:     decimal.NewFromInt(1000),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrBudgetAccountGone)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		AccountID:  uuid.NewString(),
		FiscalYear: 2026,
		Amount:     decimal.NewFromInt(-500),
	}

	created, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestListBudgets_ForwardsFilter() {
	ctx := context.Background()
	year := 2026
	expected := []domain.Budget{{BudgetID: uuid.NewString(), FiscalYear: year}}

	suite.mockBudgetRepo.On("ListBudgets", ctx, mock.MatchedBy(func(f portsrepo.BudgetFilter) bool {
		return f.FiscalYear != nil && *f.FiscalYear == year && f.AccountID == nil
	})).Return(expected, nil).Once()

	budgets, err := suite.service.ListBudgets(ctx, dto.ListBudgetsParams{FiscalYear: &year})

	suite.Require().NoError(err)
	suite.Equal(expected, budgets)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
