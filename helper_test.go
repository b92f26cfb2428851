package stockavg

import (
	"testing"

	"github.com/shopspring/decimal"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// purchases is a helper for test to parse "10@2000" purchases.
func purchases(t *testing.T, specs ...string) []Purchase {
	t.Helper()
	ps := make([]Purchase, len(specs))
	for i, s := range specs {
		p, err := ParsePurchase(s)
		if err != nil {
			t.Fatalf("ParsePurchase(%q) unexpected error: %v", s, err)
		}
		ps[i] = p
	}
	return ps
}

// snapshot is a helper for test to build a USD snapshot from "10@2000" purchases.
func snapshot(t *testing.T, label string, args ...string) Snapshot {
	t.Helper()
	return LedgerOf(label, "USD", purchases(t, args...)...).Snapshot()
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
