package domain

import "testing"

func TestBankAccountDetails_Complete(t *testing.T) {
	tests := []struct {
		name    string
		details *BankAccountDetails
		want    bool
	}{
		{name: "nil details", details: nil, want: false},
		{name: "empty details", details: &BankAccountDetails{}, want: false},
		{
			name: "missing account number",
			details: &BankAccountDetails{
				BankName:          "HBL - Habib Bank Limited",
				AccountHolderName: "Ahmed Khan",
			},
			want: false,
		},
		{
			name: "all required fields set",
			details: &BankAccountDetails{
				BankName:          "HBL - Habib Bank Limited",
				AccountHolderName: "Ahmed Khan",
				AccountNumber:     "12345678901234",
			},
			want: true,
		},
		{
			name: "iban not required",
			details: &BankAccountDetails{
				BankName:          "Meezan Bank",
				AccountHolderName: "Zara Ali",
				AccountNumber:     "1234567890",
				IBAN:              "",
			},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.details.Complete(); got != tc.want {
				t.Fatalf("Complete() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsSupportedBank(t *testing.T) {
	if !IsSupportedBank("HBL - Habib Bank Limited") {
		t.Fatalf("expected HBL to be supported")
	}
	if IsSupportedBank("hbl - habib bank limited") {
		t.Fatalf("bank matching is exact, lower-cased name must not match")
	}
	if IsSupportedBank("Some Unknown Bank") {
		t.Fatalf("unexpected match for unknown bank")
	}
	if len(PakistaniBanks) != 15 {
		t.Fatalf("expected 15 supported banks, got %d", len(PakistaniBanks))
	}
}
