package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var (
	nonDialRegex = regexp.MustCompile(`[^\d+]`)
	pkPhoneRegex = regexp.MustCompile(`(\+92)(\d{3})(\d+)`)
	usPhoneRegex = regexp.MustCompile(`(\+1)(\d{3})(\d{3})(\d{4})`)
	intlRegex    = regexp.MustCompile(`(\+\d{1,3})(\d{3})(\d+)`)
)

// FormatCurrency renders an amount for display as Pakistani Rupees with
// thousands separators and no decimal places, e.g. "Rs. 51,000".
func FormatCurrency(amount float64) string {
	rounded := int64(math.Round(amount))
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := fmt.Sprintf("%d", rounded)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "Rs. -" + b.String()
	}
	return "Rs. " + b.String()
}

// FormatPhoneForDisplay spaces out a phone number by country convention,
// e.g. +923001234567 -> "+92 300 1234567".
func FormatPhoneForDisplay(phone string) string {
	if phone == "" {
		return ""
	}
	cleaned := nonDialRegex.ReplaceAllString(phone, "")
	switch {
	case strings.HasPrefix(cleaned, "+92"):
		return pkPhoneRegex.ReplaceAllString(cleaned, "$1 $2 $3")
	case strings.HasPrefix(cleaned, "+1"):
		return usPhoneRegex.ReplaceAllString(cleaned, "$1 ($2) $3-$4")
	}
	return intlRegex.ReplaceAllString(cleaned, "$1 $2 $3")
}

// MaskAccountNumber hides the middle of an account number for display,
// keeping the first two and last four digits: 12********3456.
func MaskAccountNumber(accountNumber string) string {
	if accountNumber == "" {
		return ""
	}
	cleaned := separatorRegex.ReplaceAllString(accountNumber, "")
	if len(cleaned) <= 6 {
		return cleaned
	}
	return cleaned[:2] + strings.Repeat("*", len(cleaned)-6) + cleaned[len(cleaned)-4:]
}

// SanitizeInput escapes HTML-significant characters in user input.
func SanitizeInput(input string) string {
	replacer := strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
		"/", "&#x2F;",
	)
	return replacer.Replace(input)
}
