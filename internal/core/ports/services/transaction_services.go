package services

import (
	"context"

	"github.com/cherryfin/loanledger/internal/core/domain"
	"github.com/cherryfin/loanledger/internal/dto"
)

// TransactionSvcFacade defines the payment operations exposed to handlers.
type TransactionSvcFacade interface {
	// CreatePayment applies a payment to the referenced account and persists
	// the updated account and new ledger entry together.
	CreatePayment(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
