package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/core/services"
	"github.com/novaerp/accounting_backend/internal/dto"
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

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
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

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) HasPostedDetails(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Code:        "1010",
		Name:        "Cash",
		AccountType: domain.Asset,
	}

	suite.mockRepo.On("FindAccountByCode", ctx, "1010").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(req.Code, created.Code)
	suite.Equal(req.Name, created.Name)
	suite.Equal(domain.Asset, created.AccountType)
	suite.Nil(created.ParentAccountID)
	suite.Equal(creatorUserID, created.CreatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	existing := &domain.Account{AccountID: uuid.NewString(), Code: "1010"}
	req := dto.CreateAccountRequest{
		Code:        "1010",
		Name:        "Cash Again",
		AccountType: domain.Asset,
	}

	suite.mockRepo.On("FindAccountByCode", ctx, "1010").Return(existing, nil).Once()

	created, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.ErrorIs(err, services.ErrDuplicateAccountCode)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentNotFound() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Code:            "1011",
		Name:            "Petty Cash",
		AccountType:     domain.Asset,
		ParentAccountID: &parentID,
	}

	suite.mockRepo.On("FindAccountByCode", ctx, "1011").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByID", ctx, parentID).Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrParentNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "2010",
		Name:        "Accounts Payable",
		AccountType: domain.Liability,
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("FindAccountByCode", ctx, "2010").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(expectedErr).Once()

	created, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	ctx := context.Background()
	testID := uuid.NewString()
	expected := &domain.Account{
		AccountID:   testID,
		Code:        "3010",
		Name:        "Owner Equity",
		AccountType: domain.Equity,
	}

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(expected, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, testID)

	suite.Require().NoError(err)
	suite.Equal(expected, account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NameOnly() {
	ctx := context.Background()
	testID := uuid.NewString()
	updaterID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   testID,
		Code:        "4010",
		Name:        "Sales",
		AccountType: domain.Revenue,
	}
	newName := "Product Sales"

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, dto.UpdateAccountRequest{Name: &newName}, updaterID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal("4010", updated.Code)
	suite.Equal(updaterID, updated.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_TypeChangeWithPostedEntries() {
	ctx := context.Background()
	testID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   testID,
		Code:        "5010",
		Name:        "Rent",
		AccountType: domain.Expense,
	}
	newType := domain.Asset

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(existing, nil).Once()
	suite.mockRepo.On("HasPostedDetails", ctx, testID).Return(true, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, dto.UpdateAccountRequest{AccountType: &newType}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrTypeChangeWithPosted)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_ParentCycleRejected() {
	ctx := context.Background()
	accountID := uuid.NewString()
	childID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   accountID,
		Code:        "1000",
		Name:        "Current Assets",
		AccountType: domain.Asset,
	}
	// The proposed parent is a child of the account being updated.
	child := &domain.Account{
		AccountID:       childID,
		Code:            "1100",
		Name:            "Cash and Equivalents",
		AccountType:     domain.Asset,
		ParentAccountID: &accountID,
	}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()
	suite.mockRepo.On("FindAccountByID", ctx, childID).Return(child, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, accountID, dto.UpdateAccountRequest{ParentAccountID: &childID}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, services.ErrParentCycle)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_SelfParentRejected() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   accountID,
		Code:        "1000",
		Name:        "Current Assets",
		AccountType: domain.Asset,
	}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, accountID, dto.UpdateAccountRequest{ParentAccountID: &accountID}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, services.ErrParentCycle)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Success() {
	ctx := context.Background()
	expected := []domain.Account{
		{AccountID: uuid.NewString(), Code: "1010", Name: "Cash", AccountType: domain.Asset},
		{AccountID: uuid.NewString(), Code: "2010", Name: "Payables", AccountType: domain.Liability},
	}

	suite.mockRepo.On("ListAccounts", ctx).Return(expected, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
