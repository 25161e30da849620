/**
 * @description
 * In-memory implementation of the `Repository` interface. This is the sandbox
 * backend the service boots with when no DATABASE_URL is configured, and the
 * default double in ledger tests. All maps are guarded by one RWMutex;
 * balance arithmetic happens under the write lock, so credit and debit are
 * atomic here just as they are in the Postgres implementation.
 */

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rentreturn/wallet-service/internal/domain"
)

// MemoryRepository keeps all wallet state in process memory.
type MemoryRepository struct {
	mu           sync.RWMutex
	bankDetails  map[string]domain.BankAccountDetails
	balances     map[string]domain.Balance
	transactions map[string][]domain.Transaction
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		bankDetails:  make(map[string]domain.BankAccountDetails),
		balances:     make(map[string]domain.Balance),
		transactions: make(map[string][]domain.Transaction),
	}
}

func (r *MemoryRepository) GetBankDetails(ctx context.Context, userID string) (*domain.BankAccountDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	details, ok := r.bankDetails[userID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := details
	return &copied, nil
}

func (r *MemoryRepository) SaveBankDetails(ctx context.Context, userID string, details domain.BankAccountDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bankDetails[userID] = details
	return nil
}

func (r *MemoryRepository) GetOrInitBalance(ctx context.Context, userID string, seed float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if balance, ok := r.balances[userID]; ok {
		return balance.Amount, nil
	}
	r.balances[userID] = domain.Balance{Amount: seed, UpdatedAt: time.Now().UTC()}
	return seed, nil
}

func (r *MemoryRepository) CreditBalance(ctx context.Context, userID string, amount float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance, ok := r.balances[userID]
	if !ok {
		return 0, ErrNotFound
	}
	balance.Amount += amount
	balance.UpdatedAt = time.Now().UTC()
	r.balances[userID] = balance
	return balance.Amount, nil
}

func (r *MemoryRepository) DebitBalance(ctx context.Context, userID string, amount float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance, ok := r.balances[userID]
	if !ok {
		return 0, ErrNotFound
	}
	if balance.Amount < amount {
		return 0, ErrInsufficientFunds
	}
	balance.Amount -= amount
	balance.UpdatedAt = time.Now().UTC()
	r.balances[userID] = balance
	return balance.Amount, nil
}

func (r *MemoryRepository) AppendTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions[userID] = append(r.transactions[userID], txn)
	return nil
}

func (r *MemoryRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.transactions[userID]
	txns := make([]domain.Transaction, len(stored))
	copy(txns, stored)

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Timestamp.After(txns[j].Timestamp)
	})
	return txns, nil
}
