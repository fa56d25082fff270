package services

import (
	"context"
	"time"

	"github.com/cherryfin/loanledger/internal/apperrors"
	portssvc "github.com/cherryfin/loanledger/internal/core/ports/services"
	"github.com/cherryfin/loanledger/internal/dto"
	"github.com/cherryfin/loanledger/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService verifies the single operator credential and issues JWTs.
type authService struct {
	cfg *config.Config
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

// Ensure authService implements the portssvc.AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if len(s.cfg.OperatorPasswordHash) == 0 || req.Mobile != s.cfg.OperatorMobile {
		return nil, apperrors.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(s.cfg.OperatorPasswordHash, []byte(req.Password)); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   req.Mobile,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}
