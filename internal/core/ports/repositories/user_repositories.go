package repositories

import (
	"context"

	"github.com/cherryfin/loanledger/internal/core/domain"
)

// UserRepository defines persistence operations for loan accounts.
//
// The multi-row writes (account + payment pairs, cascade delete) are single
// methods so implementations can make them atomic: an account must never be
// persisted without its seed payment, a payment must never land without the
// matching balance update, and a cascade delete must not be split by a crash.
type UserRepository interface {
	// SaveUserWithSeed persists a new account together with its opening
	// ledger entry in one transaction.
	SaveUserWithSeed(ctx context.Context, user domain.User, seed domain.Transaction) error

	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUsers(ctx context.Context) ([]domain.User, error)
	FindEnabledUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUserWithPayment persists the recalculated account and the new
	// payment in one transaction. The update is guarded by the account's
	// version counter; apperrors.ErrConflict is returned when another write
	// got there first.
	UpdateUserWithPayment(ctx context.Context, user domain.User, txn domain.Transaction) error

	// DeleteUserCascade removes the account and all of its payments in one
	// transaction. Returns apperrors.ErrNotFound when the account is absent.
	DeleteUserCascade(ctx context.Context, userID string) error
}
