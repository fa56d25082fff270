package services

import (
	"context"

	"github.com/cherryfin/loanledger/internal/core/domain"
	"github.com/cherryfin/loanledger/internal/dto"
)

// UserSvcFacade defines the loan account lifecycle operations exposed to handlers.
type UserSvcFacade interface {
	// CreateUser opens a loan account: computes the loan window and opening
	// interest, then persists the account together with its seed payment.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListEnabledUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// DeleteUser removes the account and all of its payments as one unit.
	// Deleting an absent account is a no-op.
	DeleteUser(ctx context.Context, userID string) error
}
