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

type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a pgx-backed repository for loan accounts.
func NewUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{pool: pool}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `user_id, mobile, name, start_date, end_date, balance, interest, remarks, enabled, version, created_at, last_updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Mobile,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Balance,
		&m.Interest,
		&m.Remarks,
		&m.Enabled,
		&m.Version,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, user_id, transaction_date, comment, amount_paid, balance, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

func insertTransaction(ctx context.Context, tx pgx.Tx, txn models.Transaction) error {
	_, err := tx.Exec(ctx, insertTransactionQuery,
		txn.TransactionID,
		txn.UserID,
		txn.TransactionDate,
		txn.Comment,
		txn.AmountPaid,
		txn.Balance,
		txn.CreatedAt,
	)
	return err
}

// SaveUserWithSeed inserts the account and its opening ledger entry within a
// single DB transaction, so an account can never exist without its seed.
func (r *PgxUserRepository) SaveUserWithSeed(ctx context.Context, user domain.User, seed domain.Transaction) error {
	modelUser := mapping.ToModelUser(user)
	modelSeed := mapping.ToModelTransaction(seed)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore rollback error
	}()

	userQuery := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, userQuery,
		modelUser.UserID,
		modelUser.Mobile,
		modelUser.Name,
		modelUser.StartDate,
		modelUser.EndDate,
		modelUser.Balance,
		modelUser.Interest,
		modelUser.Remarks,
		modelUser.Enabled,
		modelUser.Version,
		modelUser.CreatedAt,
		modelUser.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user %s: %w", modelUser.UserID, err)
	}

	if err := insertTransaction(ctx, tx, modelSeed); err != nil {
		return fmt.Errorf("failed to insert seed transaction for user %s: %w", modelUser.UserID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit user creation for %s: %w", modelUser.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	modelUser, err := scanUser(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}

	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at;`
	return r.queryUsers(ctx, query)
}

func (r *PgxUserRepository) FindEnabledUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE enabled = TRUE ORDER BY created_at;`
	return r.queryUsers(ctx, query)
}

func (r *PgxUserRepository) queryUsers(ctx context.Context, query string) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	modelUsers := []models.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		modelUsers = append(modelUsers, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return mapping.ToDomainUserSlice(modelUsers), nil
}

// UpdateUserWithPayment writes the recalculated account fields and the new
// ledger entry within one DB transaction. The account update carries a
// version guard; a zero-row update means another payment landed after the
// caller read the account, and apperrors.ErrConflict is returned so the
// caller can reload and recompute.
func (r *PgxUserRepository) UpdateUserWithPayment(ctx context.Context, user domain.User, txn domain.Transaction) error {
	modelUser := mapping.ToModelUser(user)
	modelTxn := mapping.ToModelTransaction(txn)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	updateQuery := `
		UPDATE users
		SET balance = $1, interest = $2, enabled = $3, version = version + 1, last_updated_at = $4
		WHERE user_id = $5 AND version = $6;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery,
		modelUser.Balance,
		modelUser.Interest,
		modelUser.Enabled,
		modelUser.LastUpdatedAt,
		modelUser.UserID,
		modelUser.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", modelUser.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s changed since read: %w", modelUser.UserID, apperrors.ErrConflict)
	}

	if err := insertTransaction(ctx, tx, modelTxn); err != nil {
		return fmt.Errorf("failed to insert transaction for user %s: %w", modelUser.UserID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payment for user %s: %w", modelUser.UserID, err)
	}
	return nil
}

// DeleteUserCascade removes the account's payments and then the account
// itself within one DB transaction, so the pair cannot be split by a crash.
func (r *PgxUserRepository) DeleteUserCascade(ctx context.Context, userID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete transactions for user %s: %w", userID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cascade delete for user %s: %w", userID, err)
	}
	return nil
}
