/**
 * @description
 * This file defines the `Repository` interface, the contract for all wallet
 * persistence required by the service: the per-user balance, the append-only
 * transaction log, and the payout banking details. Defining an interface
 * decouples the ledger orchestration from the storage backend, so the
 * Postgres implementation and the in-memory sandbox implementation are
 * interchangeable.
 *
 * @notes
 * - Balance arithmetic is part of the contract on purpose: CreditBalance and
 *   DebitBalance are atomic at the store, which closes the read-modify-write
 *   race that a fetch-then-save flow would have between concurrent sessions.
 */

package store

import (
	"context"
	"errors"

	"github.com/rentreturn/wallet-service/internal/domain"
)

var (
	// ErrNotFound is returned when a record does not exist for the user.
	ErrNotFound = errors.New("record not found")
	// ErrInsufficientFunds is returned by DebitBalance when the debit would
	// take the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Repository defines the persistence operations for the wallet ledger and
// banking details. All records are exclusively scoped to the given userID;
// no operation reads or writes another user's data.
type Repository interface {
	// GetBankDetails fetches the user's payout details. ErrNotFound when never set.
	GetBankDetails(ctx context.Context, userID string) (*domain.BankAccountDetails, error)
	// SaveBankDetails overwrites the user's payout details entirely.
	SaveBankDetails(ctx context.Context, userID string, details domain.BankAccountDetails) error

	// GetOrInitBalance returns the current balance, seeding it with the given
	// amount on first access. The seed write is idempotent: concurrent first
	// reads observe the same seeded value.
	GetOrInitBalance(ctx context.Context, userID string, seed float64) (float64, error)
	// CreditBalance atomically adds amount and returns the new balance.
	CreditBalance(ctx context.Context, userID string, amount float64) (float64, error)
	// DebitBalance atomically subtracts amount and returns the new balance,
	// or ErrInsufficientFunds if the balance would go negative.
	DebitBalance(ctx context.Context, userID string, amount float64) (float64, error)

	// AppendTransaction stores one immutable ledger entry.
	AppendTransaction(ctx context.Context, userID string, txn domain.Transaction) error
	// ListTransactions returns the user's ledger entries newest first.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}
