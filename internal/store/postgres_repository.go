/**
 * @description
 * PostgreSQL implementation of the `Repository` interface. Three tables hold
 * the wallet state, mirroring the logical per-user layout
 * users/{uid}/banking/{details,balance} and users/{uid}/transactions:
 *
 *   wallet_bank_details  (user_id PK, bank_name, account_holder_name,
 *                         account_number, iban, updated_at)
 *   wallet_balances      (user_id PK, amount, updated_at)
 *   wallet_transactions  (id PK, user_id, type, amount, status,
 *                         transaction_ref, display_date, created_at)
 *
 * @dependencies
 * - github.com/jackc/pgx/v5: PostgreSQL driver and connection pooling.
 *
 * @notes
 * - Credit and debit are single guarded UPDATE statements so two concurrent
 *   operations on the same balance cannot lose an update. The debit guard
 *   (amount >= $2) is the authoritative insufficient-funds check; the
 *   service's pre-flight check only exists to fail fast before the simulated
 *   bank confirmation.
 */

package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rentreturn/wallet-service/internal/domain"
)

// PostgresRepository is the production Repository backed by a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgresRepository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetBankDetails fetches the user's payout details.
func (r *PostgresRepository) GetBankDetails(ctx context.Context, userID string) (*domain.BankAccountDetails, error) {
	var details domain.BankAccountDetails
	query := `SELECT bank_name, account_holder_name, account_number, COALESCE(iban, ''), updated_at
	          FROM wallet_bank_details WHERE user_id = $1`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&details.BankName,
		&details.AccountHolderName,
		&details.AccountNumber,
		&details.IBAN,
		&details.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &details, nil
}

// SaveBankDetails upserts the full details record. Prior values are replaced
// entirely; there is no partial merge.
func (r *PostgresRepository) SaveBankDetails(ctx context.Context, userID string, details domain.BankAccountDetails) error {
	query := `INSERT INTO wallet_bank_details (user_id, bank_name, account_holder_name, account_number, iban, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (user_id) DO UPDATE SET
	              bank_name = EXCLUDED.bank_name,
	              account_holder_name = EXCLUDED.account_holder_name,
	              account_number = EXCLUDED.account_number,
	              iban = EXCLUDED.iban,
	              updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, userID,
		details.BankName, details.AccountHolderName, details.AccountNumber, details.IBAN, details.UpdatedAt)
	return err
}

// GetOrInitBalance seeds the balance row on first access, then reads it.
// ON CONFLICT DO NOTHING keeps the seed idempotent under concurrent first reads.
func (r *PostgresRepository) GetOrInitBalance(ctx context.Context, userID string, seed float64) (float64, error) {
	insert := `INSERT INTO wallet_balances (user_id, amount, updated_at)
	           VALUES ($1, $2, $3) ON CONFLICT (user_id) DO NOTHING`
	if _, err := r.db.Exec(ctx, insert, userID, seed, time.Now().UTC()); err != nil {
		return 0, err
	}

	var amount float64
	err := r.db.QueryRow(ctx, `SELECT amount FROM wallet_balances WHERE user_id = $1`, userID).Scan(&amount)
	if err != nil {
		return 0, err
	}
	return amount, nil
}

// CreditBalance atomically adds to the balance.
func (r *PostgresRepository) CreditBalance(ctx context.Context, userID string, amount float64) (float64, error) {
	var newBalance float64
	query := `UPDATE wallet_balances SET amount = amount + $2, updated_at = $3
	          WHERE user_id = $1 RETURNING amount`
	err := r.db.QueryRow(ctx, query, userID, amount, time.Now().UTC()).Scan(&newBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return newBalance, nil
}

// DebitBalance atomically subtracts from the balance; the guard refuses a
// debit that would take it negative.
func (r *PostgresRepository) DebitBalance(ctx context.Context, userID string, amount float64) (float64, error) {
	var newBalance float64
	query := `UPDATE wallet_balances SET amount = amount - $2, updated_at = $3
	          WHERE user_id = $1 AND amount >= $2 RETURNING amount`
	err := r.db.QueryRow(ctx, query, userID, amount, time.Now().UTC()).Scan(&newBalance)
	if err == nil {
		return newBalance, nil
	}
	if err != pgx.ErrNoRows {
		return 0, err
	}

	// Distinguish a missing row from a guarded rejection.
	var exists bool
	if checkErr := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM wallet_balances WHERE user_id = $1)`, userID).Scan(&exists); checkErr != nil {
		return 0, checkErr
	}
	if !exists {
		return 0, ErrNotFound
	}
	return 0, ErrInsufficientFunds
}

// AppendTransaction stores one immutable ledger entry.
func (r *PostgresRepository) AppendTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	query := `INSERT INTO wallet_transactions (id, user_id, type, amount, status, transaction_ref, display_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		txn.ID, userID, string(txn.Type), txn.Amount, txn.Status, txn.TransactionID, txn.Date, txn.Timestamp)
	return err
}

// ListTransactions returns the user's ledger newest first.
func (r *PostgresRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT id, type, amount, status, transaction_ref, display_date, created_at
	          FROM wallet_transactions WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		var txnType string
		if err := rows.Scan(&txn.ID, &txnType, &txn.Amount, &txn.Status, &txn.TransactionID, &txn.Date, &txn.Timestamp); err != nil {
			return nil, err
		}
		txn.Type = domain.TransactionType(txnType)
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}
