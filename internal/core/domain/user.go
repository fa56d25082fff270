package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a loan account held by a single borrower.
// This is the primary representation used by services.
type User struct {
	UserID    string          `json:"userId"`    // Primary Key (UUID)
	Mobile    string          `json:"mobile"`    // Borrower contact number
	Name      string          `json:"name"`      // Borrower display name
	StartDate time.Time       `json:"startDate"` // Loan window start (day after the submitted date)
	EndDate   time.Time       `json:"endDate"`   // Loan window end
	Balance   decimal.Decimal `json:"balance"`   // Outstanding balance
	Interest  decimal.Decimal `json:"interest"`  // Accrued interest, never decreases
	Remarks   bool            `json:"remarks"`   // Manual flag set by the operator
	Enabled   bool            `json:"enabled"`   // Derived: balance > 0
	Version   int64           `json:"-"`         // Optimistic concurrency counter
	AuditFields
}
