package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cherryfin/loanledger/internal/apperrors"
	"github.com/cherryfin/loanledger/internal/core/domain"
	portsrepo "github.com/cherryfin/loanledger/internal/core/ports/repositories"
	"github.com/cherryfin/loanledger/internal/models"
	"github.com/cherryfin/loanledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a pgx-backed repository for payment ledger entries.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, user_id, transaction_date, comment, amount_paid, balance, created_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.TransactionDate,
		&m.Comment,
		&m.AmountPaid,
		&m.Balance,
		&m.CreatedAt,
	)
	return m, err
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(m)
	return &domainTxn, nil
}

func (r *PgxTransactionRepository) FindTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for user %s: %w", userID, err)
		}
		modelTxns = append(modelTxns, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows for user %s: %w", userID, rows.Err())
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
