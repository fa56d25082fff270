package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the persistence representation of a loan account.
type User struct {
	UserID    string          `db:"user_id"`
	Mobile    string          `db:"mobile"`
	Name      string          `db:"name"`
	StartDate time.Time       `db:"start_date"`
	EndDate   time.Time       `db:"end_date"`
	Balance   decimal.Decimal `db:"balance"`
	Interest  decimal.Decimal `db:"interest"`
	Remarks   bool            `db:"remarks"`
	Enabled   bool            `db:"enabled"`
	Version   int64           `db:"version"`
	AuditFields
}
