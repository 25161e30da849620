package app

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/rentreturn/wallet-service/internal/domain"
)

var txnIDPattern = regexp.MustCompile(`^TXN-\d{8}-\d{6}$`)

func TestGenerateTransactionID_Format(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2026, time.March, 7, 22, 30, 0, 0, time.FixedZone("PKT", 5*3600))

	id := generateTransactionID(now, rng)
	if !txnIDPattern.MatchString(id) {
		t.Fatalf("transaction id %q does not match TXN-YYYYMMDD-NNNNNN", id)
	}
	// The date segment is the UTC day, not the local one.
	if id[4:12] != "20260307" {
		t.Fatalf("expected UTC date segment 20260307, got %q", id[4:12])
	}
}

func TestGenerateTransactionID_PadsShortCounters(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	now := time.Now()

	for i := 0; i < 50; i++ {
		id := generateTransactionID(now, rng)
		if len(id) != len("TXN-20060102-000000") {
			t.Fatalf("transaction id %q has unexpected length", id)
		}
	}
}

func TestSimulatedConfirmation_DelayWithinBounds(t *testing.T) {
	var slept time.Duration
	sim := NewSimulatedBankConfirmation(
		2000*time.Millisecond,
		3000*time.Millisecond,
		1,
		WithRand(rand.New(rand.NewSource(7))),
		WithSleep(func(d time.Duration) { slept = d }),
	)

	for i := 0; i < 20; i++ {
		if _, err := sim.Confirm(context.Background(), 100, domain.TransactionTypeDeposit); err != nil {
			t.Fatalf("confirmation failed: %v", err)
		}
		if slept < 2000*time.Millisecond || slept >= 3000*time.Millisecond {
			t.Fatalf("delay %v outside [2000ms, 3000ms)", slept)
		}
	}
}

func TestSimulatedConfirmation_FailureRate(t *testing.T) {
	sim := NewSimulatedBankConfirmation(0, 0, 0, WithSleep(func(time.Duration) {}))

	_, err := sim.Confirm(context.Background(), 100, domain.TransactionTypeWithdrawal)
	if !errors.Is(err, ErrBankTimeout) {
		t.Fatalf("zero success rate must always fail with ErrBankTimeout, got %v", err)
	}

	always := NewSimulatedBankConfirmation(0, 0, 1, WithSleep(func(time.Duration) {}))
	result, err := always.Confirm(context.Background(), 100, domain.TransactionTypeWithdrawal)
	if err != nil {
		t.Fatalf("full success rate must never fail, got %v", err)
	}
	if result.Status != domain.StatusConfirmed {
		t.Fatalf("unexpected status %q", result.Status)
	}
	if result.Message != "Withdrawal of Rs. 100 confirmed by bank." {
		t.Fatalf("unexpected message %q", result.Message)
	}
}

func TestSimulatedConfirmation_ClampsBadConfiguration(t *testing.T) {
	sim := NewSimulatedBankConfirmation(3*time.Second, 1*time.Second, 2, WithSleep(func(time.Duration) {}))
	if sim.maxDelay != sim.minDelay {
		t.Fatalf("expected inverted delays clamped, got min=%v max=%v", sim.minDelay, sim.maxDelay)
	}
	if sim.successRate != 1 {
		t.Fatalf("expected success rate clamped to 1, got %f", sim.successRate)
	}
}
