package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence representation of a payment ledger entry.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Comment         string          `db:"comment"`
	AmountPaid      decimal.Decimal `db:"amount_paid"`
	Balance         decimal.Decimal `db:"balance"`
	CreatedAt       time.Time       `db:"created_at"`
}
