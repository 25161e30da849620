/**
 * @description
 * This file defines the core domain models for the wallet-service.
 * These structs represent the wallet ledger entities (balance, transactions),
 * the user's payout banking details, and the data transfer objects (DTOs)
 * used by the API layer.
 *
 * @notes
 * - The wallet is a sandbox ledger denominated in PKR. Amounts are float64 to
 *   match the simulated-banking contract; the store layer guards against a
 *   balance ever going negative.
 * - Transactions are append-only. A record is written exactly once per
 *   confirmed operation and never mutated or deleted afterwards.
 */

package domain

import (
	"time"

	"github.com/google/uuid"
)

// SeedBalance is the sandbox signing-bonus assigned the first time a user's
// balance is read and found absent.
const SeedBalance = 50000

// TransactionType distinguishes the two wallet ledger operations.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// StatusConfirmed is the only persisted transaction status. The bank
// confirmation simulation resolves before any write, so no pending state
// is ever stored.
const StatusConfirmed = "Confirmed by Bank"

// BankAccountDetails holds a user's payout account metadata. One record per
// user, upserted as a whole; no history is kept.
type BankAccountDetails struct {
	BankName          string    `json:"bankName"`
	AccountHolderName string    `json:"accountHolderName"`
	AccountNumber     string    `json:"accountNumber"`
	IBAN              string    `json:"iban,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Complete reports whether the details gate wallet-affecting UI actions:
// bank name, account number, and holder name must all be non-empty.
func (d *BankAccountDetails) Complete() bool {
	return d != nil && d.BankName != "" && d.AccountNumber != "" && d.AccountHolderName != ""
}

// Balance is a user's current wallet balance.
type Balance struct {
	Amount    float64   `json:"amount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Transaction is one append-only wallet ledger entry, scoped to a user.
// ID is the storage primary key; TransactionID is the display reference in
// the TXN-YYYYMMDD-NNNNNN format and carries no uniqueness guarantee.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transactionId"`
	Timestamp     time.Time       `json:"timestamp"`
	Date          string          `json:"date"` // human-readable creation time
}

// TransactionResult is the renderable outcome of a deposit or withdrawal.
// Failure is always communicated through this value, never through an error.
type TransactionResult struct {
	Success       bool    `json:"success"`
	TransactionID string  `json:"transactionId,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	NewBalance    float64 `json:"newBalance,omitempty"`
	Message       string  `json:"message"`
}

// AmountRequest is the DTO for deposit and withdrawal API requests.
type AmountRequest struct {
	Amount float64 `json:"amount"`
}

// SaveBankDetailsRequest is the DTO for the banking-details upsert endpoint.
// ProfileFullName is the caller's profile name, used only for the non-blocking
// holder-name similarity check.
type SaveBankDetailsRequest struct {
	BankName          string `json:"bankName"`
	AccountHolderName string `json:"accountHolderName"`
	AccountNumber     string `json:"accountNumber"`
	IBAN              string `json:"iban,omitempty"`
	ProfileFullName   string `json:"profileFullName,omitempty"`
}
