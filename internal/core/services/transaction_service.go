package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cherryfin/loanledger/internal/apperrors"
	"github.com/cherryfin/loanledger/internal/core/domain"
	"github.com/cherryfin/loanledger/internal/core/ledger"
	portsrepo "github.com/cherryfin/loanledger/internal/core/ports/repositories"
	portssvc "github.com/cherryfin/loanledger/internal/core/ports/services"
	"github.com/cherryfin/loanledger/internal/dto"
	"github.com/cherryfin/loanledger/internal/middleware"
	"github.com/google/uuid"
)

// maxPaymentAttempts bounds the reload-and-recompute loop when concurrent
// payments race on the same account.
const maxPaymentAttempts = 3

// transactionService manages payment ledger entries.
type transactionService struct {
	ledger   *ledger.Ledger
	userRepo portsrepo.UserRepository
	txnRepo  portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(l *ledger.Ledger, userRepo portsrepo.UserRepository, txnRepo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{ledger: l, userRepo: userRepo, txnRepo: txnRepo}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreatePayment applies a payment to the referenced account. The account is
// re-read and the computation redone whenever the version-guarded write loses
// a race, so concurrent payments can never overwrite each other's balance.
func (s *transactionService) CreatePayment(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for attempt := 1; attempt <= maxPaymentAttempts; attempt++ {
		user, err := s.userRepo.FindUserByID(ctx, req.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user %s for payment: %w", req.UserID, err)
		}

		now := time.Now().UTC()
		updatedUser, txn := s.ledger.ApplyPayment(*user, req.AmountPaid, req.Comment, now)
		updatedUser.LastUpdatedAt = now
		txn.TransactionID = uuid.NewString()
		txn.CreatedAt = now

		err = s.userRepo.UpdateUserWithPayment(ctx, updatedUser, txn)
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Concurrent payment detected, retrying",
				slog.String("user_id", req.UserID), slog.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to record payment for user %s: %w", req.UserID, err)
		}
		return &txn, nil
	}

	return nil, fmt.Errorf("payment for user %s lost %d concurrent update races: %w",
		req.UserID, maxPaymentAttempts, apperrors.ErrConflict)
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}
	return txns, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	err := s.txnRepo.DeleteTransaction(ctx, transactionID)
	if errors.Is(err, apperrors.ErrNotFound) {
		// Deleting an absent payment is a no-op.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return nil
}
