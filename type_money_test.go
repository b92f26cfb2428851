package stockavg

import "testing"

func TestMoney_Round(t *testing.T) {
	testCases := []struct {
		value string
		want  string
	}{
		{"1933.3333333333333333", "1933.33"},
		{"2026.0869565217391304", "2026.09"},
		// half-up, where half-even would give 0.12 and 2.34
		{"0.125", "0.13"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"-0.125", "-0.13"},
		{"29000", "29000.00"},
	}

	for _, tc := range testCases {
		if got := M(dec(tc.value), "USD").Fixed(); got != tc.want {
			t.Errorf("M(%s).Fixed() = %s, want %s", tc.value, got, tc.want)
		}
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{USD(1933.3333), "$1,933.33"},
		{USD(29000), "$29,000.00"},
		{USD(0.01), "$0.01"},
		{USD(1234567.891), "$1,234,567.89"},
		{M(dec("0.125"), "USD"), "$0.13"},
		{M(dec("-1234.5"), "USD"), "-$1,234.50"},
		// past int64 minor units
		{M(dec("1000000000000000000001"), "INR"), "₹1,000,000,000,000,000,000,001.00"},
		{M(dec("92233720368547758.08"), "USD"), "$92,233,720,368,547,758.08"},
	}

	for _, tc := range testCases {
		if got := tc.money.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.money.Decimal(), got, tc.want)
		}
	}
}

func TestQuantity_String(t *testing.T) {
	testCases := []struct {
		quantity Quantity
		want     string
	}{
		{Q(0), "0"},
		{Q(15), "15"},
		{Q(1250), "1,250"},
		{Q(1234567), "1,234,567"},
		{Q(dec("1000000000000000000001")), "1,000,000,000,000,000,000,001"},
	}

	for _, tc := range testCases {
		if got := tc.quantity.String(); got != tc.want {
			t.Errorf("Q(%v).String() = %q, want %q", tc.quantity.Decimal(), got, tc.want)
		}
	}
}

func TestMoney_StringLargeTotals(t *testing.T) {
	l := LedgerOf("X", "INR",
		Purchase{Quantity: dec("1000000"), Price: dec("1000000000000000")},
		Purchase{Quantity: dec("1"), Price: dec("1")},
	)
	r, err := Calculate(l.Snapshot())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if got, want := r.TotalInvestment.String(), "₹1,000,000,000,000,000,000,001.00"; got != want {
		t.Errorf("TotalInvestment.String() = %q, want %q", got, want)
	}
	if got, want := r.TotalShares.String(), "1,000,001"; got != want {
		t.Errorf("TotalShares.String() = %q, want %q", got, want)
	}
}

func TestGroupThousands(t *testing.T) {
	testCases := []struct {
		digits string
		want   string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
	}

	for _, tc := range testCases {
		if got := groupThousands(tc.digits, ","); got != tc.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tc.digits, got, tc.want)
		}
	}
}
