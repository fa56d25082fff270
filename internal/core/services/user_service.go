package services

import (
	"context"
	"errors"
	"fmt"
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

// userService manages the loan account lifecycle: opening accounts with
// their seed ledger entry, reads, and cascade deletion.
type userService struct {
	ledger   *ledger.Ledger
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(l *ledger.Ledger, userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{ledger: l, userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	startDate, err := time.Parse(dto.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate must be in %s format", apperrors.ErrValidation, dto.DateFormat)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:    uuid.NewString(),
		Mobile:    req.Mobile,
		Name:      req.Name,
		StartDate: startDate,
		Balance:   req.Balance,
		Remarks:   req.Remarks,
		Enabled:   true,
		Version:   1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	user = s.ledger.OpenAccount(user)

	seed := s.ledger.SeedTransaction(user)
	seed.TransactionID = uuid.NewString()
	seed.CreatedAt = now

	// One DB transaction: an account must never exist without its opening record.
	if err := s.userRepo.SaveUserWithSeed(ctx, user, seed); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) ListEnabledUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindEnabledUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	err := s.userRepo.DeleteUserCascade(ctx, userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		// Deleting an absent account is a no-op, not an error.
		middleware.GetLoggerFromCtx(ctx).Info("Delete of absent user treated as no-op")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	return nil
}
