// Package testutil provides test helpers for setting up in-memory ledgers,
// creating fixtures, and making assertions.
package testutil

import (
	"testing"
	"time"

	"kexpay/internal/ledger"
)

// FixedNow is the clock every test ledger reports.
var FixedNow = time.Date(2026, time.February, 10, 15, 4, 0, 0, time.UTC)

// SetupTestLedger creates an empty ledger whose clock is pinned to FixedNow.
func SetupTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	return ledger.New(ledger.WithClock(func() time.Time { return FixedNow }))
}
