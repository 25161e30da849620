package domain

// PakistaniBanks is the fixed list of banks a user can select as a payout
// destination. Order is preserved for display. Process-wide, immutable.
var PakistaniBanks = []string{
	"HBL - Habib Bank Limited",
	"UBL - United Bank Limited",
	"MCB - Muslim Commercial Bank",
	"ABL - Allied Bank Limited",
	"NBP - National Bank of Pakistan",
	"Meezan Bank",
	"Bank Alfalah",
	"Faysal Bank",
	"Standard Chartered Bank",
	"JS Bank",
	"Askari Bank",
	"Bank Al Habib",
	"Soneri Bank",
	"Silk Bank",
	"Summit Bank",
}

// IsSupportedBank reports whether name is an exact entry of the bank list.
func IsSupportedBank(name string) bool {
	for _, b := range PakistaniBanks {
		if b == name {
			return true
		}
	}
	return false
}
