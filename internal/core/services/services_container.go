package services

import (
	"github.com/cherryfin/loanledger/internal/core/ledger"
	portssvc "github.com/cherryfin/loanledger/internal/core/ports/services"
	"github.com/cherryfin/loanledger/internal/platform/config"
	"github.com/cherryfin/loanledger/internal/repositories/database/pgsql"
)

// NewServiceContainer wires the ledger, repositories and services together.
func NewServiceContainer(cfg *config.Config, repos *pgsql.RepositoryContainer) *portssvc.ServiceContainer {
	l := ledger.New(ledger.Terms{
		InterestRate: cfg.InterestRate,
		DurationDays: cfg.LoanDurationDays,
	})

	return &portssvc.ServiceContainer{
		User:        NewUserService(l, repos.User),
		Transaction: NewTransactionService(l, repos.User, repos.Transaction),
		Auth:        NewAuthService(cfg),
	}
}
