package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cherryfin/loanledger/internal/apperrors"
	"github.com/cherryfin/loanledger/internal/core/domain"
	"github.com/cherryfin/loanledger/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	mockTxnService  *MockTransactionService
	mockAuthService *MockAuthService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	suite.mockUserService = new(MockUserService)
	suite.mockTxnService = new(MockTransactionService)
	suite.mockAuthService = new(MockAuthService)
	suite.router = newTestRouter(suite.mockUserService, suite.mockTxnService, suite.mockAuthService)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.T()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	userID := uuid.NewString()
	txn := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		UserID:          userID,
		TransactionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Comment:         domain.DefaultPaymentComment,
		AmountPaid:      decimal.NewFromInt(400),
		Balance:         decimal.NewFromInt(600),
	}

	suite.mockTxnService.On("CreatePayment", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.UserID == userID && req.AmountPaid.Equal(decimal.NewFromInt(400))
	})).Return(txn, nil).Once()

	body := fmt.Sprintf(`{"userId":%q,"amountPaid":400}`, userID)
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(txn.TransactionID, resp.TransactionID)
	suite.Equal("2024-01-15", resp.TransactionDate)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(600)))

	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidUserID() {
	body := `{"userId":"not-a-uuid","amountPaid":400}`
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_UserNotFound() {
	userID := uuid.NewString()
	suite.mockTxnService.On("CreatePayment", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.ErrNotFound).Once()

	body := fmt.Sprintf(`{"userId":%q,"amountPaid":400}`, userID)
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", body)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Conflict() {
	userID := uuid.NewString()
	suite.mockTxnService.On("CreatePayment", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.ErrConflict).Once()

	body := fmt.Sprintf(`{"userId":%q,"amountPaid":400}`, userID)
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", body)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListUserTransactions_Success() {
	userID := uuid.NewString()
	txns := []domain.Transaction{
		{
			TransactionID:   uuid.NewString(),
			UserID:          userID,
			TransactionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			AmountPaid:      decimal.Zero,
			Balance:         decimal.NewFromInt(1000),
		},
		{
			TransactionID:   uuid.NewString(),
			UserID:          userID,
			TransactionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			AmountPaid:      decimal.NewFromInt(400),
			Balance:         decimal.NewFromInt(600),
		},
	}
	suite.mockTxnService.On("ListTransactionsByUser", mock.Anything, userID).Return(txns, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/user/"+userID, "")

	suite.Equal(http.StatusOK, w.Code)

	// The per-account listing is projected and must not echo the account ID.
	var resp []dto.UserTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.NotContains(w.Body.String(), userID)

	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	txnID := uuid.NewString()
	suite.mockTxnService.On("GetTransactionByID", mock.Anything, txnID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/"+txnID, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	txnID := uuid.NewString()
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, txnID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+txnID, "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
