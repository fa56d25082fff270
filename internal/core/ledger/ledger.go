package ledger

import (
	"fmt"
	"time"

	"github.com/cherryfin/loanledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Terms holds the fixed loan parameters applied to every account.
// They are set once at process start and never change at runtime.
type Terms struct {
	InterestRate decimal.Decimal // Fraction applied to each payment amount
	DurationDays int             // Length of the loan window in days
}

// Ledger performs the pure balance/interest/date computations for loan
// accounts. It holds no state beyond the injected terms and never touches
// persistence.
type Ledger struct {
	terms Terms
}

// New creates a Ledger with the given terms.
func New(terms Terms) *Ledger {
	return &Ledger{terms: terms}
}

// Terms returns the loan terms the ledger was constructed with.
func (l *Ledger) Terms() Terms {
	return l.terms
}

// OpenAccount populates the computed fields of a freshly submitted account:
// the start date is shifted forward one day, the end date is the shifted
// start plus the loan duration, and the opening interest is
// balance * InterestRate. Balance and enabled are left untouched.
func (l *Ledger) OpenAccount(user domain.User) domain.User {
	start := user.StartDate.AddDate(0, 0, 1)
	user.StartDate = start
	user.EndDate = start.AddDate(0, 0, l.terms.DurationDays)
	user.Interest = user.Balance.Mul(l.terms.InterestRate)
	return user
}

// SeedTransaction synthesizes the opening ledger entry for an account that
// has already been through OpenAccount. It is dated one day before the
// shifted start date, carries a zero amount, and snapshots the opening
// balance so the account's full history lives in one place.
func (l *Ledger) SeedTransaction(user domain.User) domain.Transaction {
	return domain.Transaction{
		UserID:          user.UserID,
		TransactionDate: user.StartDate.AddDate(0, 0, -1),
		Comment:         fmt.Sprintf("Initial loan amount paid %s", user.Balance.String()),
		AmountPaid:      decimal.Zero,
		Balance:         user.Balance,
	}
}

// ApplyPayment applies a payment of the given amount to the account and
// returns the updated account plus the new ledger entry.
//
// newBalance = balance - amount
// newInterest = interest + amount * InterestRate
// enabled = newBalance > 0
//
// The amount is accepted as-is: negative amounts and over-payments are not
// rejected, matching the established account behavior. A blank comment is
// replaced with domain.DefaultPaymentComment.
func (l *Ledger) ApplyPayment(user domain.User, amount decimal.Decimal, comment string, now time.Time) (domain.User, domain.Transaction) {
	if comment == "" {
		comment = domain.DefaultPaymentComment
	}

	newBalance := user.Balance.Sub(amount)
	user.Interest = user.Interest.Add(amount.Mul(l.terms.InterestRate))
	user.Balance = newBalance
	user.Enabled = newBalance.GreaterThan(decimal.Zero)

	txn := domain.Transaction{
		UserID:          user.UserID,
		TransactionDate: now,
		Comment:         comment,
		AmountPaid:      amount,
		Balance:         newBalance,
	}
	return user, txn
}
