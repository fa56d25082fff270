package repositories

import (
	"context"

	"github.com/cherryfin/loanledger/internal/core/domain"
)

// TransactionRepository defines read/delete operations for payment ledger
// entries. Writes happen through UserRepository so account and payment always
// change together.
type TransactionRepository interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
