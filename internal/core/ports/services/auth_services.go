package services

import (
	"context"

	"github.com/cherryfin/loanledger/internal/dto"
)

// AuthSvcFacade defines operator authentication.
type AuthSvcFacade interface {
	// Login verifies the operator credentials and returns a signed token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
