package stockavg

import (
	"strings"
	"testing"
)

func TestDecodeLedger(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		fallback     string
		wantLabel    string
		wantCurrency string
		wantLen      int
		wantErr      bool
	}{
		{
			name:         "full document",
			input:        `{"label":"HDFC Bank","currency":"USD","purchases":[{"quantity":10,"price":2000},{"quantity":5,"price":"1800.50"},{"quantity":8,"price":2200}]}`,
			wantLabel:    "HDFC Bank",
			wantCurrency: "USD",
			wantLen:      3,
		},
		{
			name:         "currency fallback",
			input:        `{"label":"ACME","purchases":[{"quantity":10,"price":2000}]}`,
			fallback:     "EUR",
			wantLabel:    "ACME",
			wantCurrency: "EUR",
			wantLen:      2,
		},
		{
			name:         "default currency",
			input:        `{"label":"ACME","purchases":[]}`,
			wantLabel:    "ACME",
			wantCurrency: DefaultCurrency,
			wantLen:      2,
		},
		{
			name:         "lower case currency",
			input:        `{"label":"ACME","currency":" usd ","purchases":[]}`,
			wantLabel:    "ACME",
			wantCurrency: "USD",
			wantLen:      2,
		},
		{name: "unknown field", input: `{"label":"ACME","stock":"x"}`, wantErr: true},
		{name: "not json", input: `label: ACME`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := DecodeLedger(strings.NewReader(tc.input), tc.fallback)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("DecodeLedger() expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeLedger() unexpected error: %v", err)
			}
			if l.Label() != tc.wantLabel || l.Currency() != tc.wantCurrency || l.Len() != tc.wantLen {
				t.Errorf("DecodeLedger() = %q %q %d, want %q %q %d", l.Label(), l.Currency(), l.Len(), tc.wantLabel, tc.wantCurrency, tc.wantLen)
			}
		})
	}
}

func TestParsePurchase(t *testing.T) {
	testCases := []struct {
		input     string
		wantQty   string
		wantPrice string
		wantErr   bool
	}{
		{input: "10@2000", wantQty: "10", wantPrice: "2000"},
		{input: " 1@0.01 ", wantQty: "1", wantPrice: "0.01"},
		{input: "0@0", wantQty: "0", wantPrice: "0"},
		{input: "10", wantErr: true},
		{input: "1.5@10", wantErr: true},
		{input: "ten@10", wantErr: true},
		{input: "10@abc", wantErr: true},
	}

	for _, tc := range testCases {
		p, err := ParsePurchase(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePurchase(%q) expected an error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePurchase(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if !p.Quantity.Equal(dec(tc.wantQty)) || !p.Price.Equal(dec(tc.wantPrice)) {
			t.Errorf("ParsePurchase(%q) = %v@%v, want %s@%s", tc.input, p.Quantity, p.Price, tc.wantQty, tc.wantPrice)
		}
	}
}
