package dto

import (
	"github.com/cherryfin/loanledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a payment.
// The amount is deliberately unguarded: negative and over-payment amounts are
// accepted and applied as-is.
type CreateTransactionRequest struct {
	UserID     string          `json:"userId" binding:"required,uuid"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Comment    string          `json:"comment"`
}

// TransactionResponse defines the full data returned for a payment.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionId"`
	UserID          string          `json:"userId"`
	TransactionDate string          `json:"transactionDate"`
	Comment         string          `json:"comment"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	Balance         decimal.Decimal `json:"balance"`
}

// UserTransactionResponse is the projected view of a payment returned when
// listing an account's history. It omits the account back-reference.
type UserTransactionResponse struct {
	TransactionID   string          `json:"transactionId"`
	TransactionDate string          `json:"transactionDate"`
	Comment         string          `json:"comment"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	Balance         decimal.Decimal `json:"balance"`
}

// ToTransactionResponse converts a domain.Transaction to a TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		UserID:          t.UserID,
		TransactionDate: t.TransactionDate.Format(DateFormat),
		Comment:         t.Comment,
		AmountPaid:      t.AmountPaid,
		Balance:         t.Balance,
	}
}

// ToUserTransactionResponses converts a slice of domain.Transaction to the
// projected per-account view.
func ToUserTransactionResponses(txns []domain.Transaction) []UserTransactionResponse {
	res := make([]UserTransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = UserTransactionResponse{
			TransactionID:   t.TransactionID,
			TransactionDate: t.TransactionDate.Format(DateFormat),
			Comment:         t.Comment,
			AmountPaid:      t.AmountPaid,
			Balance:         t.Balance,
		}
	}
	return res
}
