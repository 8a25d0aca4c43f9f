package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/core/services"
	"github.com/novaerp/accounting_backend/internal/dto"
	"github.com/novaerp/accounting_backend/internal/utils"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "bookkeeper",
		Password: "s3cret-pass",
		Role:     domain.RoleManager,
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "bookkeeper").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(domain.RoleManager, user.Role)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DefaultsToUserRole() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "viewer",
		Password: "s3cret-pass",
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "viewer").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleUser, user.Role)
	suite.False(user.Role.CanMutateAccounting())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Username: "bookkeeper"}
	req := dto.RegisterRequest{Username: "bookkeeper", Password: "whatever1"}

	suite.mockRepo.On("FindUserByUsername", ctx, "bookkeeper").Return(existing, nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.ErrorIs(err, services.ErrDuplicateUsername)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "bookkeeper", PasswordHash: hash, Role: domain.RoleAdmin}

	suite.mockRepo.On("FindUserByUsername", ctx, "bookkeeper").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "bookkeeper", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "bookkeeper", PasswordHash: hash}

	suite.mockRepo.On("FindUserByUsername", ctx, "bookkeeper").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "bookkeeper", "battery-staple")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever1")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
