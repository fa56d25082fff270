package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/cherryfin/loanledger/internal/apperrors"
	portssvc "github.com/cherryfin/loanledger/internal/core/ports/services"
	"github.com/cherryfin/loanledger/internal/core/services"
	"github.com/cherryfin/loanledger/internal/dto"
	"github.com/cherryfin/loanledger/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const (
	testOperatorMobile   = "9876543210"
	testOperatorPassword = "correct-horse-battery"
	testJWTSecret        = "test-secret"
)

type AuthServiceTestSuite struct {
	suite.Suite
	cfg     *config.Config
	service portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupSuite() {
	hash, err := bcrypt.GenerateFromPassword([]byte(testOperatorPassword), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.cfg = &config.Config{
		JWTSecret:            testJWTSecret,
		JWTExpiryDuration:    12 * time.Hour,
		JWTIssuer:            "loanledger-backend",
		OperatorMobile:       testOperatorMobile,
		OperatorPasswordHash: hash,
	}
	suite.service = services.NewAuthService(suite.cfg)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	req := dto.LoginRequest{Mobile: testOperatorMobile, Password: testOperatorPassword}

	resp, err := suite.service.Login(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.NotEmpty(resp.Token)
	suite.NotEmpty(resp.ExpiresAt)

	// The token must be a valid HS256 JWT carrying the operator identity.
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	suite.Require().NoError(err)
	suite.True(parsed.Valid)
	suite.Equal(testOperatorMobile, claims.Subject)
	suite.Equal("loanledger-backend", claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	req := dto.LoginRequest{Mobile: testOperatorMobile, Password: "wrong-password"}

	resp, err := suite.service.Login(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownMobile() {
	ctx := context.Background()
	req := dto.LoginRequest{Mobile: "0000000000", Password: testOperatorPassword}

	resp, err := suite.service.Login(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_NoOperatorConfigured() {
	ctx := context.Background()
	unconfigured := services.NewAuthService(&config.Config{JWTSecret: testJWTSecret})

	resp, err := unconfigured.Login(ctx, dto.LoginRequest{Mobile: testOperatorMobile, Password: testOperatorPassword})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
