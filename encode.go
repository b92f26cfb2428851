package stockavg

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ledgerDoc is the JSON input document:
//
//	{"label": "HDFC Bank", "currency": "INR", "purchases": [{"quantity": 10, "price": 2000}, {"quantity": 5, "price": 1800}]}
type ledgerDoc struct {
	Label     string     `json:"label"`
	Currency  string     `json:"currency,omitempty"`
	Purchases []Purchase `json:"purchases"`
}

// DecodeLedger reads a ledger document from r. Currency defaults to fallback,
// then to DefaultCurrency.
func DecodeLedger(r io.Reader, fallback string) (*Ledger, error) {
	var doc ledgerDoc
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}
	currency := strings.ToUpper(strings.TrimSpace(doc.Currency))
	if currency == "" {
		currency = fallback
	}
	return LedgerOf(doc.Label, currency, doc.Purchases...), nil
}

// ParsePurchase parses the command line form of a purchase, "10@2000" for
// 10 shares bought at 2000 each.
func ParsePurchase(s string) (Purchase, error) {
	qty, price, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return Purchase{}, fmt.Errorf("invalid purchase %q: expecting <quantity>@<price>", s)
	}
	q, err := decimal.NewFromString(qty)
	if err != nil {
		return Purchase{}, fmt.Errorf("invalid quantity in %q: %w", s, err)
	}
	if !q.IsInteger() {
		return Purchase{}, fmt.Errorf("invalid quantity in %q: shares are whole numbers", s)
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return Purchase{}, fmt.Errorf("invalid price in %q: %w", s, err)
	}
	return Purchase{Quantity: q, Price: p}, nil
}
