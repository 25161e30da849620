/**
 * @description
 * This file defines the bank confirmation capability: the stand-in for
 * calling out to a real settlement backend before a wallet ledger mutation.
 * The default implementation simulates a flaky external call with randomized
 * latency and a fixed failure rate; pkg/bankgateway provides a real HTTP
 * implementation with the same contract.
 *
 * @notes
 * - Once invoked, a confirmation always settles (success or failure) after
 *   its delay. There is no separate cancellation path; the timeout branch is
 *   the simulated failure itself.
 */

package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rentreturn/wallet-service/internal/domain"
	"github.com/rentreturn/wallet-service/pkg/validation"
)

// ErrBankTimeout is the fixed failure category for a rejected confirmation.
var ErrBankTimeout = errors.New("bank confirmation timed out")

// ConfirmationResult is a settled confirmation from the bank backend.
type ConfirmationResult struct {
	TransactionID string
	Status        string
	Message       string
}

// ConfirmationProvider is the abstracted bank settlement call. The ledger
// orchestration awaits Confirm before mutating any balance, so a real
// payment gateway can replace the simulator without touching the ledger.
type ConfirmationProvider interface {
	Confirm(ctx context.Context, amount float64, txnType domain.TransactionType) (*ConfirmationResult, error)
}

// SimulatedBankConfirmation models the external settlement call with a
// uniformly random delay in [minDelay, maxDelay) and a fixed success rate.
type SimulatedBankConfirmation struct {
	minDelay    time.Duration
	maxDelay    time.Duration
	successRate float64

	mu    sync.Mutex
	rng   *rand.Rand
	sleep func(time.Duration)
}

// SimulatorOption customizes a SimulatedBankConfirmation, primarily so tests
// can pin the random source and skip real sleeping.
type SimulatorOption func(*SimulatedBankConfirmation)

// WithRand sets the simulator's random source.
func WithRand(rng *rand.Rand) SimulatorOption {
	return func(s *SimulatedBankConfirmation) { s.rng = rng }
}

// WithSleep replaces the delay function.
func WithSleep(sleep func(time.Duration)) SimulatorOption {
	return func(s *SimulatedBankConfirmation) { s.sleep = sleep }
}

// NewSimulatedBankConfirmation creates the default confirmation simulator.
// Production defaults are a 2000-3000ms delay and a 0.95 success rate.
func NewSimulatedBankConfirmation(minDelay, maxDelay time.Duration, successRate float64, opts ...SimulatorOption) *SimulatedBankConfirmation {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	if successRate < 0 {
		successRate = 0
	}
	if successRate > 1 {
		successRate = 1
	}
	s := &SimulatedBankConfirmation{
		minDelay:    minDelay,
		maxDelay:    maxDelay,
		successRate: successRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Confirm settles after its randomized delay. On the failure branch it
// returns ErrBankTimeout; no distinction finer than the timeout category
// exists in the simulation.
func (s *SimulatedBankConfirmation) Confirm(ctx context.Context, amount float64, txnType domain.TransactionType) (*ConfirmationResult, error) {
	s.mu.Lock()
	delay := s.minDelay
	if spread := s.maxDelay - s.minDelay; spread > 0 {
		delay += time.Duration(s.rng.Float64() * float64(spread))
	}
	failed := s.rng.Float64() >= s.successRate
	txnID := generateTransactionID(time.Now(), s.rng)
	s.mu.Unlock()

	s.sleep(delay)

	if failed {
		return nil, fmt.Errorf("%w: bank confirmation failed", ErrBankTimeout)
	}

	verb := "Deposit"
	if txnType == domain.TransactionTypeWithdrawal {
		verb = "Withdrawal"
	}
	return &ConfirmationResult{
		TransactionID: txnID,
		Status:        domain.StatusConfirmed,
		Message:       fmt.Sprintf("%s of %s confirmed by bank.", verb, validation.FormatCurrency(amount)),
	}, nil
}
