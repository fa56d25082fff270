package pgsql

import (
	portsrepo "github.com/cherryfin/loanledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryContainer bundles the pgx repositories built from one pool.
type RepositoryContainer struct {
	User        portsrepo.UserRepository
	Transaction portsrepo.TransactionRepository
}

// NewRepositoryContainer creates all repositories against the given pool.
func NewRepositoryContainer(pool *pgxpool.Pool) *RepositoryContainer {
	return &RepositoryContainer{
		User:        NewUserRepository(pool),
		Transaction: NewTransactionRepository(pool),
	}
}
