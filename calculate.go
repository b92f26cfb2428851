package stockavg

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Result holds the metrics derived from one snapshot. It is a value: it does
// not refer to the ledger and later edits do not change it.
//
// Amounts are not rounded, see Money.Round for presentation.
type Result struct {
	AveragePrice       Money
	TotalShares        Quantity
	TotalInvestment    Money
	PerEntryInvestment []Money // in entry order
}

// Calculate computes the volume-weighted average purchase price of s.
//
// It fails with ErrMissingLabel if the label is blank, then with an
// InvalidEntryError (matching ErrInvalidEntry) if any purchase has a non
// positive quantity or price. No Result is returned on failure.
func Calculate(s Snapshot) (*Result, error) {
	if strings.TrimSpace(s.Label) == "" {
		return nil, ErrMissingLabel
	}

	var invalid []int
	for i, e := range s.Entries {
		if !e.complete() {
			invalid = append(invalid, i+1)
		}
	}
	if len(invalid) > 0 {
		return nil, &InvalidEntryError{Positions: invalid}
	}

	currency := s.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	for i, e := range s.Entries {
		if c := e.Price.Currency(); c != "" && c != currency {
			return nil, fmt.Errorf("%w: purchase %d is in %s, not %s", ErrInvariant, i+1, c, currency)
		}
	}

	totalShares := Q(0)
	totalInvestment := M(0, currency)
	perEntry := make([]Money, 0, len(s.Entries))
	for _, e := range s.Entries {
		investment := e.Investment()
		perEntry = append(perEntry, investment)
		totalShares = totalShares.Add(e.Quantity)
		totalInvestment = totalInvestment.Add(investment)
	}

	// unreachable with at least one complete entry.
	if totalShares.IsZero() {
		return nil, fmt.Errorf("%w: total shares is zero for %d purchases", ErrInvariant, len(s.Entries))
	}

	return &Result{
		AveragePrice:       totalInvestment.Div(totalShares),
		TotalShares:        totalShares,
		TotalInvestment:    totalInvestment,
		PerEntryInvestment: perEntry,
	}, nil
}

// MarshalJSON writes the unrounded figures:
//
//	{"currency":"INR","averagePrice":1933.3333333333333333,"totalShares":15,"totalInvestment":29000,"perEntryInvestment":[20000,9000]}
func (r *Result) MarshalJSON() ([]byte, error) {
	perEntry := make([]decimal.Decimal, len(r.PerEntryInvestment))
	for i, m := range r.PerEntryInvestment {
		perEntry[i] = m.Decimal()
	}
	return json.Marshal(struct {
		Currency           string            `json:"currency,omitempty"`
		AveragePrice       decimal.Decimal   `json:"averagePrice"`
		TotalShares        Quantity          `json:"totalShares"`
		TotalInvestment    decimal.Decimal   `json:"totalInvestment"`
		PerEntryInvestment []decimal.Decimal `json:"perEntryInvestment"`
	}{
		Currency:           r.AveragePrice.Currency(),
		AveragePrice:       r.AveragePrice.Decimal(),
		TotalShares:        r.TotalShares,
		TotalInvestment:    r.TotalInvestment.Decimal(),
		PerEntryInvestment: perEntry,
	})
}
