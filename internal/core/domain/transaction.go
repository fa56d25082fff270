package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPaymentComment is used when a payment is submitted without a comment.
const DefaultPaymentComment = "Payment Received"

// Transaction represents one ledger entry against a loan account: an amount
// paid and the account balance immediately after the payment was applied.
// The balance is a snapshot, not recomputed from history.
type Transaction struct {
	TransactionID   string          `json:"transactionId"`   // Primary Key (UUID)
	UserID          string          `json:"userId"`          // FK -> User.UserID
	TransactionDate time.Time       `json:"transactionDate"` // When the payment was received
	Comment         string          `json:"comment"`         // Free text, defaults to DefaultPaymentComment
	AmountPaid      decimal.Decimal `json:"amountPaid"`      // Zero for the opening seed record
	Balance         decimal.Decimal `json:"balance"`         // Account balance after this payment
	CreatedAt       time.Time       `json:"createdAt"`
}
