/**
 * @description
 * This package is the stateless validation engine for the wallet-service.
 * Every validator is a pure function over primitive inputs: no I/O, no side
 * effects, and no panics. Failure is communicated exclusively through the
 * returned Result value with the first violated rule's message, so UI callers
 * always receive a renderable outcome.
 */

package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Result is the common validator outcome. Formatted carries the normalized
// input on success (e.g. a cleaned phone number or upper-cased IBAN).
// Warning is a non-blocking advisory: the input is valid but worth flagging.
type Result struct {
	IsValid   bool    `json:"isValid"`
	Message   string  `json:"message,omitempty"`
	Formatted string  `json:"formatted,omitempty"`
	Warning   string  `json:"warning,omitempty"`
	Value     float64 `json:"value,omitempty"` // set by Price only
}

var (
	phoneRegex       = regexp.MustCompile(`^\+[1-9]\d{9,14}$`)
	emailRegex       = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	fullNameRegex    = regexp.MustCompile(`^[a-zA-Z\s'-]{2,50}$`)
	holderNameRegex  = regexp.MustCompile(`^[a-zA-Z\s.'-]{2,100}$`)
	ibanRegex        = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]+$`)
	digitsOnlyRegex  = regexp.MustCompile(`^\d+$`)
	upperRegex       = regexp.MustCompile(`[A-Z]`)
	lowerRegex       = regexp.MustCompile(`[a-z]`)
	numberRegex      = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	separatorRegex   = regexp.MustCompile(`[\s-]`)
)

// holderNameWarnThreshold is the similarity score below which the account
// holder name is flagged as not matching the user's profile name. Mismatch is
// a fraud signal surfaced as a warning, never a rejection.
const holderNameWarnThreshold = 0.5

// PhoneNumber validates an international-format phone number such as
// +923001234567. Spaces and dashes are stripped before matching.
func PhoneNumber(phone string) Result {
	cleaned := separatorRegex.ReplaceAllString(phone, "")
	if !phoneRegex.MatchString(cleaned) {
		return Result{Message: "Phone number must be in international format (e.g., +923001234567)"}
	}
	return Result{IsValid: true, Formatted: cleaned}
}

// Email validates a local@domain.tld address and lower-cases it on success.
func Email(email string) Result {
	if !emailRegex.MatchString(email) {
		return Result{Message: "Please enter a valid email address"}
	}
	return Result{IsValid: true, Formatted: strings.ToLower(email)}
}

// PasswordRequirements is the per-rule breakdown of a password check.
type PasswordRequirements struct {
	MinLength    bool `json:"minLength"`
	HasUppercase bool `json:"hasUppercase"`
	HasLowercase bool `json:"hasLowercase"`
	HasNumber    bool `json:"hasNumber"`
	HasSpecial   bool `json:"hasSpecial"`
}

// PasswordResult extends the common result with the requirement breakdown and
// a coarse strength label (weak, medium, strong).
type PasswordResult struct {
	IsValid      bool                 `json:"isValid"`
	Message      string               `json:"message,omitempty"`
	Requirements PasswordRequirements `json:"requirements"`
	Strength     string               `json:"strength"`
}

// Password checks the five password requirements and reports the first unmet
// one in priority order: length, uppercase, lowercase, number, special char.
func Password(password string) PasswordResult {
	reqs := PasswordRequirements{
		MinLength:    len(password) >= 8,
		HasUppercase: upperRegex.MatchString(password),
		HasLowercase: lowerRegex.MatchString(password),
		HasNumber:    numberRegex.MatchString(password),
		HasSpecial:   specialCharRegex.MatchString(password),
	}

	allMet := reqs.MinLength && reqs.HasUppercase && reqs.HasLowercase && reqs.HasNumber && reqs.HasSpecial

	var message string
	switch {
	case !reqs.MinLength:
		message = "Password must be at least 8 characters long"
	case !reqs.HasUppercase:
		message = "Password must contain at least one uppercase letter"
	case !reqs.HasLowercase:
		message = "Password must contain at least one lowercase letter"
	case !reqs.HasNumber:
		message = "Password must contain at least one number"
	case !reqs.HasSpecial:
		message = "Password must contain at least one special character"
	}

	strength := "weak"
	if allMet {
		strength = "strong"
	} else if reqs.MinLength && reqs.HasUppercase {
		strength = "medium"
	}

	return PasswordResult{
		IsValid:      allMet,
		Message:      message,
		Requirements: reqs,
		Strength:     strength,
	}
}

// FullName validates a profile name: letters, spaces, hyphens and apostrophes
// only, 2-50 characters after trimming.
func FullName(name string) Result {
	trimmed := strings.TrimSpace(name)
	if !fullNameRegex.MatchString(trimmed) {
		return Result{Message: "Name must contain only letters, spaces, hyphens, or apostrophes (2-50 characters)"}
	}
	return Result{IsValid: true, Formatted: trimmed}
}

// AccountHolderName validates the payout account holder name (letters,
// spaces, dots, hyphens, apostrophes, 2-100 chars). When referenceName is
// supplied it is fuzzy-matched against the holder name; a score below 0.5
// produces a warning on an otherwise valid result.
func AccountHolderName(name, referenceName string) Result {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Result{Message: "Account holder name is required"}
	}
	if !holderNameRegex.MatchString(trimmed) {
		return Result{Message: "Account holder name contains invalid characters"}
	}

	if referenceName != "" && Similarity(trimmed, referenceName) < holderNameWarnThreshold {
		return Result{
			IsValid:   true,
			Formatted: trimmed,
			Warning:   "Account holder name does not match your profile name",
		}
	}

	return Result{IsValid: true, Formatted: trimmed}
}

// AccountNumber validates a bank account number: digits only after stripping
// spaces and hyphens, 10-16 digits, with bank-specific exact-length overrides
// (HBL accounts are 14 digits).
func AccountNumber(accountNumber, bankName string) Result {
	if strings.TrimSpace(accountNumber) == "" {
		return Result{Message: "Account number is required"}
	}

	cleaned := separatorRegex.ReplaceAllString(accountNumber, "")
	if !digitsOnlyRegex.MatchString(cleaned) {
		return Result{Message: "Account number must contain only digits"}
	}
	if len(cleaned) < 10 || len(cleaned) > 16 {
		return Result{Message: "Account number must be between 10 and 16 digits"}
	}
	if strings.Contains(bankName, "HBL") && len(cleaned) != 14 {
		return Result{Message: "HBL account numbers are typically 14 digits"}
	}

	return Result{IsValid: true, Formatted: cleaned}
}

// IBAN validates an optional IBAN. Empty input is valid. Otherwise the value
// is upper-cased, stripped of spaces, and must be 15-34 characters starting
// with a country code and two check digits. Pakistani IBANs are exactly 24
// characters.
func IBAN(iban string) Result {
	if iban == "" {
		return Result{IsValid: true, Message: "IBAN is optional"}
	}

	cleaned := strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
	if len(cleaned) < 15 || len(cleaned) > 34 {
		return Result{Message: "IBAN must be between 15 and 34 characters"}
	}
	if !ibanRegex.MatchString(cleaned) {
		return Result{Message: "IBAN format is invalid. Should start with country code (e.g., PK)"}
	}
	if strings.HasPrefix(cleaned, "PK") && len(cleaned) != 24 {
		return Result{Message: "Pakistan IBAN must be exactly 24 characters"}
	}

	return Result{IsValid: true, Formatted: cleaned}
}

// Price validates a listing price: a finite number greater than zero and at
// most 10,000,000.
func Price(price string) Result {
	numPrice, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || math.IsNaN(numPrice) || math.IsInf(numPrice, 0) {
		return Result{Message: "Price must be a valid number"}
	}
	if numPrice <= 0 {
		return Result{Message: "Price must be greater than 0"}
	}
	if numPrice > 10000000 {
		return Result{Message: "Price seems unreasonably high. Please verify."}
	}
	return Result{IsValid: true, Value: numPrice}
}

// ProductTitle validates a listing title: 3-100 characters after trimming.
func ProductTitle(title string) Result {
	trimmed := strings.TrimSpace(title)
	switch {
	case trimmed == "":
		return Result{Message: "Product title is required"}
	case len(trimmed) < 3:
		return Result{Message: "Product title must be at least 3 characters"}
	case len(trimmed) > 100:
		return Result{Message: "Product title must not exceed 100 characters"}
	}
	return Result{IsValid: true, Formatted: trimmed}
}

// ProductDescription validates a listing description: 10-1000 characters
// after trimming.
func ProductDescription(description string) Result {
	trimmed := strings.TrimSpace(description)
	switch {
	case trimmed == "":
		return Result{Message: "Product description is required"}
	case len(trimmed) < 10:
		return Result{Message: "Product description must be at least 10 characters"}
	case len(trimmed) > 1000:
		return Result{Message: "Product description must not exceed 1000 characters"}
	}
	return Result{IsValid: true, Formatted: trimmed}
}

// Amount validates a wallet operation amount: a finite number greater than
// zero. Upper bounds are the ledger's concern, not the validator's.
func Amount(amount float64) Result {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Result{Message: "Amount must be a valid number"}
	}
	if amount <= 0 {
		return Result{Message: "Amount must be greater than 0"}
	}
	return Result{IsValid: true, Value: amount}
}
