/**
 * @description
 * This file contains the core business logic of the wallet-service. The
 * `Service` struct owns the wallet ledger (balance reads, deposits,
 * withdrawals, transaction history) and the banking-details store, and
 * coordinates between the repository, the bank confirmation provider, the
 * rate limiter, and the event producer.
 *
 * Key behavior:
 * - Every operation takes an explicit user id; there is no ambient
 *   authenticated-user state in this layer.
 * - Nothing here returns a Go error across the public boundary. Storage
 *   failures are logged and collapsed into nil/false/zero-value results so a
 *   UI caller always gets something renderable.
 * - Deposits and withdrawals await the bank confirmation before any balance
 *   mutation; a rejected confirmation leaves the ledger untouched.
 *
 * @dependencies
 * - internal/domain, internal/store: models and persistence.
 * - pkg/rabbitmq: wallet event publishing for notification fan-out.
 */

package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rentreturn/wallet-service/internal/domain"
	"github.com/rentreturn/wallet-service/internal/store"
	"github.com/rentreturn/wallet-service/pkg/rabbitmq"
)

const (
	msgInsufficientFunds  = "Insufficient funds in your account."
	msgConfirmationFailed = "Bank confirmation failed. Please try again later."
	msgDepositFailed      = "Deposit failed. Please try again."
	msgWithdrawalFailed   = "Withdrawal failed. Please try again."

	rateLimitScopeWallet = "wallet_ops"

	// displayDateLayout is the human-readable creation time stored alongside
	// the machine timestamp on every transaction.
	displayDateLayout = "2 Jan 2006, 03:04 PM"
)

// Service provides the wallet ledger and banking-details operations.
type Service struct {
	repo      store.Repository
	confirmer ConfirmationProvider
	events    rabbitmq.Publisher
	limiter   RateLimiter

	seedBalance     float64
	rateLimit       int
	rateLimitWindow time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates a new wallet service instance. producer may be nil when
// no broker is available; limiter may be nil to disable rate limiting.
func NewService(repo store.Repository, confirmer ConfirmationProvider, producer rabbitmq.Publisher, seedBalance float64) *Service {
	if seedBalance < 0 {
		seedBalance = domain.SeedBalance
	}
	return &Service{
		repo:        repo,
		confirmer:   confirmer,
		events:      producer,
		seedBalance: seedBalance,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRateLimiter enables per-user rate limiting on deposit and withdrawal
// attempts: limit attempts per window.
func (s *Service) SetRateLimiter(limiter RateLimiter, limit int, window time.Duration) {
	s.limiter = limiter
	s.rateLimit = limit
	s.rateLimitWindow = window
}

// GetUserBankDetails fetches the user's payout details, or nil when never
// set or unavailable. Callers treat nil as "not configured".
func (s *Service) GetUserBankDetails(ctx context.Context, userID string) *domain.BankAccountDetails {
	details, err := s.repo.GetBankDetails(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("level=error component=banking msg=\"bank details fetch failed\" user_id=%s err=%v", userID, err)
		}
		return nil
	}
	return details
}

// HasBankingDetails reports whether the user completed banking setup: bank
// name, account number, and holder name all present.
func (s *Service) HasBankingDetails(ctx context.Context, userID string) bool {
	return s.GetUserBankDetails(ctx, userID).Complete()
}

// SaveUserBankDetails persists the details as-is with a refreshed UpdatedAt,
// overwriting any prior record. Validation is the caller's responsibility via
// the validation engine before calling save. Returns false on storage failure.
func (s *Service) SaveUserBankDetails(ctx context.Context, userID string, details domain.BankAccountDetails) bool {
	details.UpdatedAt = time.Now().UTC()
	if err := s.repo.SaveBankDetails(ctx, userID, details); err != nil {
		log.Printf("level=error component=banking msg=\"bank details save failed\" user_id=%s err=%v", userID, err)
		return false
	}
	return true
}

// GetBalance returns the user's current balance, seeding it on first read.
// On storage failure the seed amount is returned so the UI still renders.
func (s *Service) GetBalance(ctx context.Context, userID string) float64 {
	balance, err := s.repo.GetOrInitBalance(ctx, userID, s.seedBalance)
	if err != nil {
		log.Printf("level=error component=ledger msg=\"balance read failed\" user_id=%s err=%v", userID, err)
		return s.seedBalance
	}
	return balance
}

// GetTransactions returns the user's ledger entries newest first, or an
// empty slice when none exist or storage is unavailable.
func (s *Service) GetTransactions(ctx context.Context, userID string) []domain.Transaction {
	txns, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		log.Printf("level=error component=ledger msg=\"transaction list failed\" user_id=%s err=%v", userID, err)
		return []domain.Transaction{}
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns
}

// ProcessDeposit runs the deposit state machine: confirm with the bank, then
// credit the balance and append the ledger entry. A rejected confirmation
// aborts with no mutation.
func (s *Service) ProcessDeposit(ctx context.Context, userID string, amount float64) domain.TransactionResult {
	if !validAmount(amount) {
		return domain.TransactionResult{Success: false, Message: "Deposit amount must be greater than 0."}
	}
	if result, limited := s.checkRateLimit(ctx, userID); limited {
		return result
	}

	confirmation, err := s.confirmer.Confirm(ctx, amount, domain.TransactionTypeDeposit)
	if err != nil {
		log.Printf("level=warn component=ledger msg=\"deposit confirmation rejected\" user_id=%s amount=%.2f err=%v", userID, amount, err)
		return domain.TransactionResult{Success: false, Message: msgConfirmationFailed}
	}

	// Seed-on-first-read applies to deposits too: a fresh user's first
	// deposit lands on top of the seed balance.
	if _, err := s.repo.GetOrInitBalance(ctx, userID, s.seedBalance); err != nil {
		log.Printf("level=error component=ledger msg=\"deposit balance init failed\" user_id=%s err=%v", userID, err)
		return domain.TransactionResult{Success: false, Message: msgDepositFailed}
	}

	newBalance, err := s.repo.CreditBalance(ctx, userID, amount)
	if err != nil {
		log.Printf("level=error component=ledger msg=\"deposit credit failed\" user_id=%s amount=%.2f err=%v", userID, amount, err)
		return domain.TransactionResult{Success: false, Message: msgDepositFailed}
	}

	s.appendLedgerEntry(ctx, userID, domain.TransactionTypeDeposit, amount, confirmation)
	s.publishWalletEvent(ctx, userID, domain.TransactionTypeDeposit, amount, newBalance, confirmation.TransactionID)

	return domain.TransactionResult{
		Success:       true,
		TransactionID: confirmation.TransactionID,
		Amount:        amount,
		NewBalance:    newBalance,
		Message:       confirmation.Message,
	}
}

// ProcessWithdrawal runs the withdrawal state machine. Insufficient funds is
// detected before the bank confirmation so a request that cannot succeed
// never pays the simulated latency; the store-level debit guard then closes
// the race window against concurrent operations.
func (s *Service) ProcessWithdrawal(ctx context.Context, userID string, amount float64) domain.TransactionResult {
	if !validAmount(amount) {
		return domain.TransactionResult{Success: false, Message: "Withdrawal amount must be greater than 0."}
	}
	if result, limited := s.checkRateLimit(ctx, userID); limited {
		return result
	}

	currentBalance, err := s.repo.GetOrInitBalance(ctx, userID, s.seedBalance)
	if err != nil {
		log.Printf("level=error component=ledger msg=\"withdrawal balance read failed\" user_id=%s err=%v", userID, err)
		return domain.TransactionResult{Success: false, Message: msgWithdrawalFailed}
	}
	if amount > currentBalance {
		return domain.TransactionResult{Success: false, Message: msgInsufficientFunds}
	}

	confirmation, err := s.confirmer.Confirm(ctx, amount, domain.TransactionTypeWithdrawal)
	if err != nil {
		log.Printf("level=warn component=ledger msg=\"withdrawal confirmation rejected\" user_id=%s amount=%.2f err=%v", userID, amount, err)
		return domain.TransactionResult{Success: false, Message: msgConfirmationFailed}
	}

	newBalance, err := s.repo.DebitBalance(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, store.ErrInsufficientFunds) {
			// A concurrent operation drained the balance between the
			// pre-flight check and the debit.
			return domain.TransactionResult{Success: false, Message: msgInsufficientFunds}
		}
		log.Printf("level=error component=ledger msg=\"withdrawal debit failed\" user_id=%s amount=%.2f err=%v", userID, amount, err)
		return domain.TransactionResult{Success: false, Message: msgWithdrawalFailed}
	}

	s.appendLedgerEntry(ctx, userID, domain.TransactionTypeWithdrawal, amount, confirmation)
	s.publishWalletEvent(ctx, userID, domain.TransactionTypeWithdrawal, amount, newBalance, confirmation.TransactionID)

	return domain.TransactionResult{
		Success:       true,
		TransactionID: confirmation.TransactionID,
		Amount:        amount,
		NewBalance:    newBalance,
		Message:       confirmation.Message,
	}
}

// appendLedgerEntry writes the immutable transaction record. The balance has
// already been committed at this point, so an append failure is logged and
// swallowed rather than rolling anything back.
func (s *Service) appendLedgerEntry(ctx context.Context, userID string, txnType domain.TransactionType, amount float64, confirmation *ConfirmationResult) {
	now := time.Now().UTC()

	txnRef := confirmation.TransactionID
	if txnRef == "" {
		s.mu.Lock()
		txnRef = generateTransactionID(now, s.rng)
		s.mu.Unlock()
	}

	status := confirmation.Status
	if status == "" {
		status = domain.StatusConfirmed
	}

	txn := domain.Transaction{
		ID:            uuid.New(),
		Type:          txnType,
		Amount:        amount,
		Status:        status,
		TransactionID: txnRef,
		Timestamp:     now,
		Date:          now.Format(displayDateLayout),
	}
	if err := s.repo.AppendTransaction(ctx, userID, txn); err != nil {
		log.Printf("level=error component=ledger msg=\"transaction append failed\" user_id=%s txn_ref=%s err=%v", userID, txnRef, err)
	}
}

// publishWalletEvent emits a wallet event for downstream consumers (in-app
// notifications). Broker failures never fail the ledger operation.
func (s *Service) publishWalletEvent(ctx context.Context, userID string, txnType domain.TransactionType, amount, newBalance float64, txnRef string) {
	if s.events == nil {
		return
	}
	event := rabbitmq.WalletEvent{
		UserID:        userID,
		Type:          string(txnType),
		Amount:        amount,
		NewBalance:    newBalance,
		TransactionID: txnRef,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.events.PublishWalletEvent(ctx, event); err != nil {
		log.Printf("level=warn component=ledger msg=\"wallet event publish failed\" user_id=%s type=%s err=%v", userID, txnType, err)
	}
}

// checkRateLimit consumes one attempt from the user's wallet-operation
// budget. Limiter errors fail open: a broken Redis must not block the wallet.
func (s *Service) checkRateLimit(ctx context.Context, userID string) (domain.TransactionResult, bool) {
	if s.limiter == nil || s.rateLimit <= 0 {
		return domain.TransactionResult{}, false
	}

	count, retryAfter, err := s.limiter.ConsumeRateLimit(ctx, rateLimitScopeWallet, userID, s.rateLimit, s.rateLimitWindow)
	if err != nil {
		log.Printf("level=warn component=ledger msg=\"rate limiter unavailable; allowing operation\" user_id=%s err=%v", userID, err)
		return domain.TransactionResult{}, false
	}
	if count > s.rateLimit {
		minutes := int(math.Ceil(float64(retryAfter) / 60.0))
		if minutes < 1 {
			minutes = 1
		}
		return domain.TransactionResult{
			Success: false,
			Message: fmt.Sprintf("Too many attempts. Please try again in %d minute(s).", minutes),
		}, true
	}
	return domain.TransactionResult{}, false
}

func validAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}
