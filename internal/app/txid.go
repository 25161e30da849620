package app

import (
	"fmt"
	"math/rand"
	"time"
)

// generateTransactionID builds a display reference in the form
// TXN-YYYYMMDD-NNNNNN (UTC date, six zero-padded random digits). Collisions
// are tolerated: the reference is for display and support lookups, never a
// storage key; the ledger row's UUID is the real identity.
func generateTransactionID(now time.Time, rng *rand.Rand) string {
	return fmt.Sprintf("TXN-%s-%06d", now.UTC().Format("20060102"), rng.Intn(1000000))
}
