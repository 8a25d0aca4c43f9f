package services_test

import (
	"context"
	"testing"
	"time"

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

// MockJournalRepository is a mock type for the JournalRepositoryFacade interface
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, filter portsrepo.JournalEntryFilter) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindDetailsByEntryID(ctx context.Context, entryID string) ([]domain.JournalDetail, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalDetail), args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, details []domain.JournalDetail) error {
	args := m.Called(ctx, entry, details)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateEntryStatus(ctx context.Context, entryID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, entryID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Test Suite Setup ---

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.JournalSvcFacade
	cashAccount     domain.Account
	revenueAccount  domain.Account
	userID          string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)

	suite.userID = uuid.NewString()
	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1010",
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	suite.revenueAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "4010",
		Name:        "Sales",
		AccountType: domain.Revenue,
	}
}

// --- Test Cases ---

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_Success() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   "2026-01-15",
		ReferenceNo: "JE-001",
		Description: "Cash sale",
		Details: []dto.JournalDetailRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(100)},
		},
	}

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:    suite.cashAccount,
		suite.revenueAccount.AccountID: suite.revenueAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{suite.cashAccount.AccountID, suite.revenueAccount.AccountID}).Return(accountsMap, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalDetail")).Return(nil).Once()

	entry, err := suite.service.CreateJournalEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(domain.Draft, entry.Status)
	suite.Equal("JE-001", entry.ReferenceNo)
	suite.Len(entry.Details, 2)
	suite.Equal(1, entry.Details[0].LineNo)
	suite.Equal(2, entry.Details[1].LineNo)
	suite.True(entry.TotalDebits().Equal(decimal.NewFromInt(100)))
	suite.True(entry.TotalCredits().Equal(decimal.NewFromInt(100)))
	suite.Equal(suite.userID, entry.CreatedBy)

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   "2026-01-15",
		ReferenceNo: "JE-002",
		Details: []dto.JournalDetailRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(90)},
		},
	}

	entry, err := suite.service.CreateJournalEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_UnknownAccount() {
	ctx := context.Background()
	ghostID := uuid.NewString()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   "2026-01-15",
		ReferenceNo: "JE-003",
		Details: []dto.JournalDetailRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(50)},
			{AccountID: ghostID, Credit: decimal.NewFromInt(50)},
		},
	}

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{suite.cashAccount.AccountID, ghostID}).Return(accountsMap, nil).Once()

	entry, err := suite.service.CreateJournalEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrDetailAccountGone)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_EmptyDetailLine() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   "2026-01-15",
		ReferenceNo: "JE-004",
		Details: []dto.JournalDetailRequest{
			{AccountID: suite.cashAccount.AccountID},
		},
	}

	entry, err := suite.service.CreateJournalEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrEmptyDetailLine)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_DuplicateReference() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   "2026-01-15",
		ReferenceNo: "JE-001",
		Details: []dto.JournalDetailRequest{
			{AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(25)},
			{AccountID: suite.revenueAccount.AccountID, Credit: decimal.NewFromInt(25)},
		},
	}

	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:    suite.cashAccount,
		suite.revenueAccount.AccountID: suite.revenueAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.AnythingOfType("[]string")).Return(accountsMap, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalDetail")).Return(apperrors.ErrDuplicate).Once()

	entry, err := suite.service.CreateJournalEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrDuplicateReference)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostJournalEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	draft := &domain.JournalEntry{
		EntryID:   entryID,
		EntryDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:    domain.Draft,
		Details: []domain.JournalDetail{
			{DetailID: uuid.NewString(), AccountID: suite.cashAccount.AccountID, Debit: decimal.NewFromInt(100), Credit: decimal.Zero},
			{DetailID: uuid.NewString(), AccountID: suite.revenueAccount.AccountID, Debit: decimal.Zero, Credit: decimal.NewFromInt(100)},
		},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(draft, nil).Once()
	suite.mockJournalRepo.On("UpdateEntryStatus", ctx, entryID, domain.Posted, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	posted, err := suite.service.PostJournalEntry(ctx, entryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, posted.Status)
	suite.Equal(suite.userID, posted.LastUpdatedBy)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostJournalEntry_AlreadyPosted() {
	ctx := context.Background()
	entryID := uuid.NewString()
	posted := &domain.JournalEntry{EntryID: entryID, Status: domain.Posted}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(posted, nil).Once()

	entry, err := suite.service.PostJournalEntry(ctx, entryID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateEntryStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestVoidJournalEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	posted := &domain.JournalEntry{EntryID: entryID, Status: domain.Posted}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(posted, nil).Once()
	suite.mockJournalRepo.On("UpdateEntryStatus", ctx, entryID, domain.Void, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	voided, err := suite.service.VoidJournalEntry(ctx, entryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Void, voided.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestVoidJournalEntry_AlreadyVoid() {
	ctx := context.Background()
	entryID := uuid.NewString()
	void := &domain.JournalEntry{EntryID: entryID, Status: domain.Void}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(void, nil).Once()

	entry, err := suite.service.VoidJournalEntry(ctx, entryID, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrAlreadyVoid)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestUpdateJournalEntry_PostedRejected() {
	ctx := context.Background()
	entryID := uuid.NewString()
	posted := &domain.JournalEntry{EntryID: entryID, Status: domain.Posted}
	newDesc := "late edit"

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(posted, nil).Once()

	entry, err := suite.service.UpdateJournalEntry(ctx, entryID, dto.UpdateJournalEntryRequest{Description: &newDesc}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, services.ErrNotDraft)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListJournalEntries_StatusFilter() {
	ctx := context.Background()
	status := "POSTED"
	expected := []domain.JournalEntry{{EntryID: uuid.NewString(), Status: domain.Posted}}

	suite.mockJournalRepo.On("ListEntries", ctx, mock.MatchedBy(func(f portsrepo.JournalEntryFilter) bool {
		return f.Status != nil && *f.Status == domain.Posted && f.StartDate == nil && f.EndDate == nil
	})).Return(expected, nil).Once()

	entries, err := suite.service.ListJournalEntries(ctx, dto.ListJournalEntriesParams{Status: &status})

	suite.Require().NoError(err)
	suite.Equal(expected, entries)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
