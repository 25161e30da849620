/**
 * @description
 * This file contains the HTTP handlers for the wallet-service's API endpoints.
 * Handlers are responsible for parsing incoming requests, running the
 * validation engine over writable payloads, calling the appropriate methods
 * on the application service, and writing the HTTP response.
 *
 * @dependencies
 * - encoding/json, net/http: Standard Go libraries.
 * - internal/app, internal/domain, pkg/validation: Service logic, models, and
 *   the stateless validation engine.
 *
 * @notes
 * - Ledger operations never surface as HTTP errors: a failed deposit or
 *   withdrawal is a 200 with a success=false TransactionResult, mirroring the
 *   value-shaped contract of the service layer. Only malformed requests and
 *   validation failures produce 4xx responses.
 */

package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rentreturn/wallet-service/internal/app"
	"github.com/rentreturn/wallet-service/internal/domain"
	"github.com/rentreturn/wallet-service/pkg/validation"
)

// WalletHandlers holds the application service that handlers will use.
type WalletHandlers struct {
	service *app.Service
}

// NewWalletHandlers creates a new instance of WalletHandlers.
func NewWalletHandlers(service *app.Service) *WalletHandlers {
	return &WalletHandlers{service: service}
}

// balanceResponse is the payload for GET /balance.
type balanceResponse struct {
	Balance   float64 `json:"balance"`
	Formatted string  `json:"formatted"`
}

// transactionsResponse is the payload for GET /transactions, newest first.
type transactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// bankDetailsResponse is the payload for GET /banking/details. The account
// number is masked for display.
type bankDetailsResponse struct {
	BankName          string `json:"bankName"`
	AccountHolderName string `json:"accountHolderName"`
	AccountNumber     string `json:"accountNumber"`
	MaskedNumber      string `json:"maskedNumber"`
	IBAN              string `json:"iban,omitempty"`
	UpdatedAt         string `json:"updatedAt"`
}

// bankingStatusResponse is the payload for GET /banking/status.
type bankingStatusResponse struct {
	Configured bool `json:"configured"`
}

// saveBankDetailsResponse is the payload for a successful PUT /banking/details.
type saveBankDetailsResponse struct {
	Saved   bool   `json:"saved"`
	Warning string `json:"warning,omitempty"`
}

// GetBalanceHandler returns the caller's current wallet balance, seeding a
// fresh user on first read.
func (h *WalletHandlers) GetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusInternalServerError, "Could not get user ID from context")
		return
	}

	balance := h.service.GetBalance(r.Context(), userID)
	h.writeJSON(w, http.StatusOK, balanceResponse{
		Balance:   balance,
		Formatted: validation.FormatCurrency(balance),
	})
}

// ListTransactionsHandler returns the caller's ledger entries, newest first.
func (h *WalletHandlers) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusInternalServerError, "Could not get user ID from context")
		return
	}

	txns := h.service.GetTransactions(r.Context(), userID)
	h.writeJSON(w, http.StatusOK, transactionsResponse{Transactions: txns, Count: len(txns)})
}

// DepositHandler handles POST /deposit. The outcome is always a 200 with a
// TransactionResult; inspect the success flag.
func (h *WalletHandlers) DepositHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusInternalServerError, "Could not get user ID from context")
		return
	}

	var req domain.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if v := validation.Amount(req.Amount); !v.IsValid {
		h.writeError(w, http.StatusBadRequest, v.Message)
		return
	}

	result := h.service.ProcessDeposit(r.Context(), userID, req.Amount)
	if !result.Success {
		log.Printf("level=info component=api endpoint=deposit outcome=reject user_id=%s amount=%.2f reason=%q", userID, req.Amount, result.Message)
	}
	h.writeJSON(w, http.StatusOK, result)
}

// WithdrawHandler handles POST /withdraw with the same contract as deposits.
func (h *WalletHandlers) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusInternalServerError, "Could not get user ID from context")
		return
	}

	var req domain.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if v := validation.Amount(req.Amount); !v.IsValid {
		h.writeError(w, http.StatusBadRequest, v.Message)
		return
	}

	result := h.service.ProcessWithdrawal(r.Context(), userID, req.Amount)
	if !result.Success {
		log.Printf("level=info component=api endpoint=withdraw outcome=reject user_id=%s amount=%.2f reason=%q", userID, req.Amount, result.Message)
	}
	h.writeJSON(w, http.StatusOK, result)
}

// GetBankDetailsHandler returns the caller's saved payout details, or 404
// when banking setup was never completed.
func (h *WalletHandlers) GetBankDetailsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusInternalServerError, "Could not get user ID from context")
		return
	}

	details := h.service.GetUserBankDetails(r.Context(), userID)
	if details == nil {
		h.writeError(w, http.StatusNotFound, "Banking details not found")
		return
	}

	h.writeJSON(w, http.StatusOK, bankDetailsResponse{
		BankName:          details.BankName,
		AccountHolderName: details.AccountHolderName,
		AccountNumber:     details.AccountNumber,
		MaskedNumber:      validation.MaskAccountNumber(details.AccountNumber),
		IBAN:              details.IBAN,
		UpdatedAt:         details.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// SaveBankDetailsHandler validates and upserts the caller's payout details.
// Validation failures come back as a 400 with a field-to-message map so the
// client can render per-field errors in one pass.
func (h *WalletHandlers) SaveBankDetailsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusInternalServerError, "Could not get user ID from context")
		return
	}

	var req domain.SaveBankDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fieldErrors := map[string]string{}
	if !domain.IsSupportedBank(req.BankName) {
		fieldErrors["bankName"] = "Please select a supported bank"
	}

	holder := validation.AccountHolderName(req.AccountHolderName, req.ProfileFullName)
	if !holder.IsValid {
		fieldErrors["accountHolderName"] = holder.Message
	}

	account := validation.AccountNumber(req.AccountNumber, req.BankName)
	if !account.IsValid {
		fieldErrors["accountNumber"] = account.Message
	}

	iban := validation.IBAN(req.IBAN)
	if !iban.IsValid {
		fieldErrors["iban"] = iban.Message
	}

	if len(fieldErrors) > 0 {
		h.writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors})
		return
	}

	details := domain.BankAccountDetails{
		BankName:          req.BankName,
		AccountHolderName: holder.Formatted,
		AccountNumber:     account.Formatted,
		IBAN:              iban.Formatted,
	}
	if !h.service.SaveUserBankDetails(r.Context(), userID, details) {
		h.writeError(w, http.StatusInternalServerError, "Unable to save banking details")
		return
	}

	h.writeJSON(w, http.StatusOK, saveBankDetailsResponse{Saved: true, Warning: holder.Warning})
}

// BankingStatusHandler reports whether the caller completed banking setup.
func (h *WalletHandlers) BankingStatusHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.writeError(w, http.StatusInternalServerError, "Could not get user ID from context")
		return
	}

	h.writeJSON(w, http.StatusOK, bankingStatusResponse{
		Configured: h.service.HasBankingDetails(r.Context(), userID),
	})
}

// ListBanksHandler returns the supported Pakistani banks for selection UIs.
func (h *WalletHandlers) ListBanksHandler(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string][]string{"banks": domain.PakistaniBanks})
}

// writeJSON is a helper for writing JSON responses.
func (h *WalletHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for writing JSON error responses.
func (h *WalletHandlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
