package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/dto"
	"github.com/novaerp/accounting_backend/internal/handlers"
	"github.com/novaerp/accounting_backend/internal/middleware"
	"github.com/novaerp/accounting_backend/pkg/config"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// envelope mirrors dto.Response with a raw data payload for re-decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	jwtSecret          string
}

// generateTestToken creates a signed JWT carrying the given role.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	claims := middleware.AuthClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "accounting-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockAccountService = new(MockAccountService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "accounting-test",
		LoginRateLimit:    "5-M",
	}
	services := &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AccountHandlerTestSuite) doRequest(method, url string, body []byte, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	userID := uuid.NewString()
	expected := []domain.Account{
		{AccountID: uuid.NewString(), Code: "1010", Name: "Cash", AccountType: domain.Asset},
		{AccountID: uuid.NewString(), Code: "4010", Name: "Sales", AccountType: domain.Revenue},
	}
	suite.mockAccountService.On("ListAccounts", mock.Anything).Return(expected, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleUser)
	w := suite.doRequest(http.MethodGet, "/api/accounting/chart-of-accounts", nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var body envelope
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)

	var accounts []dto.AccountResponse
	suite.NoError(json.Unmarshal(body.Data, &accounts))
	suite.Len(accounts, 2)
	suite.Equal("1010", accounts[0].Code)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListAccounts_Unauthorized() {
	w := suite.doRequest(http.MethodGet, "/api/accounting/chart-of-accounts", nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateAccountRequest{
		Code:        "1010",
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	created := &domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1010",
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	suite.mockAccountService.On("CreateAccount", mock.Anything, reqBody, userID).Return(created, nil).Once()

	payload, _ := json.Marshal(reqBody)
	token := suite.generateTestToken(userID, domain.RoleManager)
	w := suite.doRequest(http.MethodPost, "/api/accounting/chart-of-accounts", payload, token)

	suite.Equal(http.StatusCreated, w.Code)

	var body envelope
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Success)

	var account dto.AccountResponse
	suite.NoError(json.Unmarshal(body.Data, &account))
	suite.Equal(created.AccountID, account.AccountID)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_ForbiddenForUserRole() {
	reqBody := dto.CreateAccountRequest{
		Code:        "1010",
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	payload, _ := json.Marshal(reqBody)
	token := suite.generateTestToken(uuid.NewString(), domain.RoleUser)
	w := suite.doRequest(http.MethodPost, "/api/accounting/chart-of-accounts", payload, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateCode() {
	userID := uuid.NewString()
	reqBody := dto.CreateAccountRequest{
		Code:        "1010",
		Name:        "Cash",
		AccountType: domain.Asset,
	}
	suite.mockAccountService.On("CreateAccount", mock.Anything, reqBody, userID).
		Return(nil, apperrors.ErrDuplicate).Once()

	payload, _ := json.Marshal(reqBody)
	token := suite.generateTestToken(userID, domain.RoleAdmin)
	w := suite.doRequest(http.MethodPost, "/api/accounting/chart-of-accounts", payload, token)

	suite.Equal(http.StatusConflict, w.Code)

	var body envelope
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Success)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("GetAccountByID", mock.Anything, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(uuid.NewString(), domain.RoleUser)
	w := suite.doRequest(http.MethodGet, "/api/accounting/chart-of-accounts/"+accountID, nil, token)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidBody() {
	token := suite.generateTestToken(uuid.NewString(), domain.RoleManager)
	w := suite.doRequest(http.MethodPost, "/api/accounting/chart-of-accounts", []byte(`{"code":"12"}`), token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
