package validation

import (
	"strings"
	"testing"
)

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue string
	}{
		{name: "pakistani mobile", input: "+923001234567", wantValid: true, wantValue: "+923001234567"},
		{name: "spaces and dashes stripped", input: "+92 300-123-4567", wantValid: true, wantValue: "+923001234567"},
		{name: "missing plus", input: "923001234567", wantValid: false},
		{name: "leading zero after plus", input: "+0923001234567", wantValid: false},
		{name: "too short", input: "+92300", wantValid: false},
		{name: "empty", input: "", wantValid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PhoneNumber(tc.input)
			if got.IsValid != tc.wantValid {
				t.Fatalf("PhoneNumber(%q).IsValid = %v, want %v (message %q)", tc.input, got.IsValid, tc.wantValid, got.Message)
			}
			if tc.wantValid && got.Formatted != tc.wantValue {
				t.Fatalf("PhoneNumber(%q).Formatted = %q, want %q", tc.input, got.Formatted, tc.wantValue)
			}
			if !tc.wantValid && got.Message != "Phone number must be in international format (e.g., +923001234567)" {
				t.Fatalf("unexpected message %q", got.Message)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	got := Email("Renter.One@Example.COM")
	if !got.IsValid {
		t.Fatalf("expected valid email, got message %q", got.Message)
	}
	if got.Formatted != "renter.one@example.com" {
		t.Fatalf("expected lower-cased email, got %q", got.Formatted)
	}

	for _, bad := range []string{"", "plainaddress", "a@b", "user@domain.c", "user @domain.com"} {
		if Email(bad).IsValid {
			t.Fatalf("expected %q to be invalid", bad)
		}
	}
}

func TestPassword_RequirementPriority(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantValid   bool
		wantMessage string
	}{
		{name: "too short reported first", input: "Ab1!", wantMessage: "Password must be at least 8 characters long"},
		{name: "missing uppercase", input: "abcdef1!", wantMessage: "Password must contain at least one uppercase letter"},
		{name: "missing lowercase", input: "ABCDEF1!", wantMessage: "Password must contain at least one lowercase letter"},
		{name: "missing number", input: "Abcdefg!", wantMessage: "Password must contain at least one number"},
		{name: "missing special", input: "Abcdefg1", wantMessage: "Password must contain at least one special character"},
		{name: "all requirements met", input: "Abcdef1!", wantValid: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Password(tc.input)
			if got.IsValid != tc.wantValid {
				t.Fatalf("Password(%q).IsValid = %v, want %v", tc.input, got.IsValid, tc.wantValid)
			}
			if got.Message != tc.wantMessage {
				t.Fatalf("Password(%q).Message = %q, want %q", tc.input, got.Message, tc.wantMessage)
			}
		})
	}
}

func TestPassword_Strength(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "abc", want: "weak"},
		{input: "abcdefgh", want: "weak"},
		{input: "Abcdefgh", want: "medium"},
		{input: "Abcdefg1", want: "medium"},
		{input: "Abcdef1!", want: "strong"},
	}

	for _, tc := range tests {
		if got := Password(tc.input).Strength; got != tc.want {
			t.Errorf("Password(%q).Strength = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFullName(t *testing.T) {
	if got := FullName("  Mary-Jane O'Connor  "); !got.IsValid || got.Formatted != "Mary-Jane O'Connor" {
		t.Fatalf("expected trimmed valid name, got %+v", got)
	}
	for _, bad := range []string{"", "A", "Name42", strings.Repeat("a", 51)} {
		if FullName(bad).IsValid {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}

func TestAccountHolderName(t *testing.T) {
	t.Run("matching profile name passes clean", func(t *testing.T) {
		got := AccountHolderName("Ahmed Khan", "Ahmed Khan")
		if !got.IsValid || got.Warning != "" {
			t.Fatalf("expected clean pass, got %+v", got)
		}
	})

	t.Run("near match passes clean", func(t *testing.T) {
		got := AccountHolderName("Ahmad Khan", "Ahmed Khan")
		if !got.IsValid || got.Warning != "" {
			t.Fatalf("expected near match to pass without warning, got %+v", got)
		}
	})

	t.Run("mismatch warns but never rejects", func(t *testing.T) {
		got := AccountHolderName("Zara Ali", "Ahmed Khan")
		if !got.IsValid {
			t.Fatalf("mismatch must stay valid, got %+v", got)
		}
		if got.Warning != "Account holder name does not match your profile name" {
			t.Fatalf("unexpected warning %q", got.Warning)
		}
	})

	t.Run("no reference name skips the check", func(t *testing.T) {
		got := AccountHolderName("Zara Ali", "")
		if !got.IsValid || got.Warning != "" {
			t.Fatalf("expected clean pass without reference, got %+v", got)
		}
	})

	t.Run("empty name is required", func(t *testing.T) {
		got := AccountHolderName("   ", "Ahmed Khan")
		if got.IsValid || got.Message != "Account holder name is required" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("invalid characters rejected", func(t *testing.T) {
		got := AccountHolderName("Ahmed Khan 3rd", "")
		if got.IsValid || got.Message != "Account holder name contains invalid characters" {
			t.Fatalf("unexpected result %+v", got)
		}
	})
}

func TestAccountNumber(t *testing.T) {
	tests := []struct {
		name        string
		number      string
		bank        string
		wantValid   bool
		wantMessage string
	}{
		{name: "generic 12 digits", number: "123456789012", bank: "UBL - United Bank Limited", wantValid: true},
		{name: "spaces and dashes stripped", number: "1234-5678 9012", bank: "UBL - United Bank Limited", wantValid: true},
		{name: "letters rejected", number: "12345abc9012", bank: "UBL - United Bank Limited", wantMessage: "Account number must contain only digits"},
		{name: "too short", number: "12345", bank: "UBL - United Bank Limited", wantMessage: "Account number must be between 10 and 16 digits"},
		{name: "too long", number: strings.Repeat("1", 17), bank: "UBL - United Bank Limited", wantMessage: "Account number must be between 10 and 16 digits"},
		{name: "hbl exact 14 passes", number: "12345678901234", bank: "HBL - Habib Bank Limited", wantValid: true},
		{name: "hbl wrong length rejected", number: "123456789012", bank: "HBL - Habib Bank Limited", wantMessage: "HBL account numbers are typically 14 digits"},
		{name: "hbl short input hits range rule first", number: "12345", bank: "HBL - Habib Bank Limited", wantMessage: "Account number must be between 10 and 16 digits"},
		{name: "empty required", number: "", bank: "HBL - Habib Bank Limited", wantMessage: "Account number is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AccountNumber(tc.number, tc.bank)
			if got.IsValid != tc.wantValid {
				t.Fatalf("AccountNumber(%q, %q).IsValid = %v, want %v (message %q)", tc.number, tc.bank, got.IsValid, tc.wantValid, got.Message)
			}
			if !tc.wantValid && got.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", got.Message, tc.wantMessage)
			}
		})
	}
}

func TestIBAN(t *testing.T) {
	t.Run("empty is optional", func(t *testing.T) {
		got := IBAN("")
		if !got.IsValid {
			t.Fatalf("empty IBAN must be valid, got %+v", got)
		}
	})

	t.Run("pakistani iban normalized", func(t *testing.T) {
		got := IBAN("pk36 scbl 0000 0011 2345 6702")
		if !got.IsValid {
			t.Fatalf("expected valid, got message %q", got.Message)
		}
		if got.Formatted != "PK36SCBL0000001123456702" {
			t.Fatalf("unexpected normalization %q", got.Formatted)
		}
	})

	t.Run("pakistani iban wrong length", func(t *testing.T) {
		got := IBAN("PK36SCBL00000011234567")
		if got.IsValid || got.Message != "Pakistan IBAN must be exactly 24 characters" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("non pakistani length range", func(t *testing.T) {
		if got := IBAN("GB29NWBK60161331926819"); !got.IsValid {
			t.Fatalf("expected GB IBAN valid, got message %q", got.Message)
		}
		if got := IBAN("GB29NWBK60"); got.IsValid || got.Message != "IBAN must be between 15 and 34 characters" {
			t.Fatalf("unexpected result %+v", got)
		}
	})

	t.Run("bad structure", func(t *testing.T) {
		got := IBAN("1236SCBL0000001123456702")
		if got.IsValid || got.Message != "IBAN format is invalid. Should start with country code (e.g., PK)" {
			t.Fatalf("unexpected result %+v", got)
		}
	})
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantValid   bool
		wantValue   float64
		wantMessage string
	}{
		{name: "plain number", input: "1500", wantValid: true, wantValue: 1500},
		{name: "decimal", input: " 99.50 ", wantValid: true, wantValue: 99.5},
		{name: "not a number", input: "abc", wantMessage: "Price must be a valid number"},
		{name: "zero", input: "0", wantMessage: "Price must be greater than 0"},
		{name: "negative", input: "-5", wantMessage: "Price must be greater than 0"},
		{name: "over cap", input: "10000001", wantMessage: "Price seems unreasonably high. Please verify."},
		{name: "cap boundary allowed", input: "10000000", wantValid: true, wantValue: 10000000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Price(tc.input)
			if got.IsValid != tc.wantValid {
				t.Fatalf("Price(%q).IsValid = %v, want %v (message %q)", tc.input, got.IsValid, tc.wantValid, got.Message)
			}
			if tc.wantValid && got.Value != tc.wantValue {
				t.Fatalf("Price(%q).Value = %f, want %f", tc.input, got.Value, tc.wantValue)
			}
			if !tc.wantValid && got.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", got.Message, tc.wantMessage)
			}
		})
	}
}

func TestProductTitleAndDescription(t *testing.T) {
	if got := ProductTitle("  Canon EOS R5  "); !got.IsValid || got.Formatted != "Canon EOS R5" {
		t.Fatalf("unexpected title result %+v", got)
	}
	if got := ProductTitle("ab"); got.IsValid || got.Message != "Product title must be at least 3 characters" {
		t.Fatalf("unexpected title result %+v", got)
	}
	if got := ProductTitle(strings.Repeat("x", 101)); got.IsValid {
		t.Fatalf("expected over-long title to fail")
	}

	if got := ProductDescription("Full-frame camera with lens kit."); !got.IsValid {
		t.Fatalf("unexpected description result %+v", got)
	}
	if got := ProductDescription("too short"); got.IsValid || got.Message != "Product description must be at least 10 characters" {
		t.Fatalf("unexpected description result %+v", got)
	}
	if got := ProductDescription(strings.Repeat("x", 1001)); got.IsValid {
		t.Fatalf("expected over-long description to fail")
	}
}

func TestAmount(t *testing.T) {
	if got := Amount(1000); !got.IsValid || got.Value != 1000 {
		t.Fatalf("unexpected result %+v", got)
	}
	if got := Amount(0); got.IsValid || got.Message != "Amount must be greater than 0" {
		t.Fatalf("unexpected result %+v", got)
	}
	if got := Amount(-50); got.IsValid {
		t.Fatalf("expected negative amount to fail")
	}
}
