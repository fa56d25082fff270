package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cherryfin/loanledger/internal/apperrors"
	"github.com/cherryfin/loanledger/internal/core/domain"
	portssvc "github.com/cherryfin/loanledger/internal/core/ports/services"
	"github.com/cherryfin/loanledger/internal/dto"
	"github.com/cherryfin/loanledger/internal/handlers"
	"github.com/cherryfin/loanledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret-key-that-is-long-enough"

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) ListEnabledUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreatePayment(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// newTestRouter builds a router with the full route tree and mock services.
func newTestRouter(us *MockUserService, ts *MockTransactionService, as *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{
		JWTSecret:      testSecret,
		LoginRateLimit: "100-S",
	}
	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{
		User:        us,
		Transaction: ts,
		Auth:        as,
	})
	return r
}

// generateTestToken creates a JWT accepted by the auth middleware.
func generateTestToken(t *testing.T) string {
	claims := jwt.RegisteredClaims{
		Subject:   "9876543210",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	mockTxnService  *MockTransactionService
	mockAuthService *MockAuthService
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.mockUserService = new(MockUserService)
	suite.mockTxnService = new(MockTransactionService)
	suite.mockAuthService = new(MockAuthService)
	suite.router = newTestRouter(suite.mockUserService, suite.mockTxnService, suite.mockAuthService)
}

func (suite *UserHandlerTestSuite) doRequest(method, url, body string, authed bool) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.T()))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *UserHandlerTestSuite) TestCreateUser_Success() {
	userID := uuid.NewString()
	created := &domain.User{
		UserID:    userID,
		Mobile:    "9876543210",
		Name:      "Test Borrower",
		StartDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Balance:   decimal.NewFromInt(1000),
		Interest:  decimal.NewFromInt(50),
		Enabled:   true,
	}

	suite.mockUserService.On("CreateUser", mock.Anything, mock.MatchedBy(func(req dto.CreateUserRequest) bool {
		return req.Name == "Test Borrower" && req.StartDate == "2024-01-01"
	})).Return(created, nil).Once()

	body := `{"mobile":"9876543210","name":"Test Borrower","startDate":"2024-01-01","balance":1000}`
	w := suite.doRequest(http.MethodPost, "/api/v1/users", body, true)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(userID, resp.UserID)
	suite.Equal("2024-01-02", resp.StartDate)
	suite.Equal("2024-02-01", resp.EndDate)
	suite.True(resp.Enabled)

	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestCreateUser_MissingToken() {
	body := `{"mobile":"9876543210","name":"Test Borrower","startDate":"2024-01-01","balance":1000}`
	w := suite.doRequest(http.MethodPost, "/api/v1/users", body, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestCreateUser_BadDateRejectedByBinding() {
	body := `{"mobile":"9876543210","name":"Test Borrower","startDate":"01/01/2024","balance":1000}`
	w := suite.doRequest(http.MethodPost, "/api/v1/users", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestListUsers_Success() {
	users := []domain.User{
		{UserID: uuid.NewString(), Name: "First"},
		{UserID: uuid.NewString(), Name: "Second"},
	}
	suite.mockUserService.On("ListUsers", mock.Anything).Return(users, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/users", "", true)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestListEnabledUsers_Success() {
	users := []domain.User{{UserID: uuid.NewString(), Enabled: true}}
	suite.mockUserService.On("ListEnabledUsers", mock.Anything).Return(users, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/users/enabled", "", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
	suite.mockUserService.AssertNotCalled(suite.T(), "ListUsers", mock.Anything)
}

func (suite *UserHandlerTestSuite) TestGetUser_NotFound() {
	userID := uuid.NewString()
	suite.mockUserService.On("GetUserByID", mock.Anything, userID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/users/"+userID, "", true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestDeleteUser_Success() {
	userID := uuid.NewString()
	suite.mockUserService.On("DeleteUser", mock.Anything, userID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/users/"+userID, "", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "deleted successfully")
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestUsersHealthCheck_Public() {
	w := suite.doRequest(http.MethodGet, "/api/v1/users/healthCheck", "", false)

	suite.Equal(http.StatusOK, w.Code)
}

// --- Run Test Suite ---
func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
