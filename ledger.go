package stockavg

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseEntry is one buy transaction: a number of shares at a price per share.
type PurchaseEntry struct {
	ID       string
	Quantity Quantity
	Price    Money
}

// Investment returns quantity × price.
func (e PurchaseEntry) Investment() Money { return e.Price.Mul(e.Quantity) }

// complete reports whether the entry can take part in a calculation.
func (e PurchaseEntry) complete() bool {
	return e.Quantity.IsPositive() && e.Price.IsPositive()
}

// Field selects the value changed by Ledger.UpdateEntry.
type Field int

const (
	FieldQuantity Field = iota
	FieldPrice
)

func (f Field) String() string {
	switch f {
	case FieldQuantity:
		return "quantity"
	case FieldPrice:
		return "price"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// MinEntries is the smallest number of purchases a ledger holds.
const MinEntries = 2

// Ledger is the ordered set of purchases of one stock being averaged.
//
// It enforces cardinality and identity only: positivity of quantities and
// prices is checked by Calculate. A Ledger belongs to a single session and is
// not safe for concurrent use.
type Ledger struct {
	label    string
	currency string
	entries  []PurchaseEntry
	index    map[string]int // entry id -> position in entries
}

// NewLedger returns a ledger with two empty placeholder purchases.
func NewLedger(currency string) *Ledger {
	if currency == "" {
		currency = DefaultCurrency
	}
	l := &Ledger{currency: currency, index: make(map[string]int)}
	for range MinEntries {
		l.AddEntry()
	}
	return l
}

// Purchase is a quantity and price pair used to fill a ledger.
type Purchase struct {
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// LedgerOf returns a ledger holding the given purchases, in order. Missing
// purchases are padded with empty placeholders up to MinEntries.
func LedgerOf(label, currency string, purchases ...Purchase) *Ledger {
	l := NewLedger(currency)
	l.label = label
	for i, p := range purchases {
		if i >= len(l.entries) {
			l.AddEntry()
		}
		id := l.entries[i].ID
		l.UpdateEntry(id, FieldQuantity, p.Quantity)
		l.UpdateEntry(id, FieldPrice, p.Price)
	}
	return l
}

func (l *Ledger) Label() string         { return l.label }
func (l *Ledger) SetLabel(label string) { l.label = label }
func (l *Ledger) Currency() string      { return l.currency }
func (l *Ledger) Len() int              { return len(l.entries) }

// Entries returns a copy of the purchases in display order.
func (l *Ledger) Entries() []PurchaseEntry {
	return append([]PurchaseEntry(nil), l.entries...)
}

// Entry returns the purchase with the given id.
func (l *Ledger) Entry(id string) (PurchaseEntry, bool) {
	i, ok := l.index[id]
	if !ok {
		return PurchaseEntry{}, false
	}
	return l.entries[i], true
}

// AddEntry appends an empty purchase and returns its id.
func (l *Ledger) AddEntry() string {
	id := uuid.NewString()
	l.index[id] = len(l.entries)
	l.entries = append(l.entries, PurchaseEntry{ID: id, Quantity: Q(0), Price: M(0, l.currency)})
	return id
}

// RemoveEntry deletes the purchase with the given id.
//
// It fails with ErrCannotRemove, leaving the ledger unchanged, if the ledger
// would hold less than MinEntries purchases or if id is unknown.
func (l *Ledger) RemoveEntry(id string) error {
	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("%w: no purchase with id %q", ErrCannotRemove, id)
	}
	if len(l.entries) <= MinEntries {
		return ErrCannotRemove
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	delete(l.index, id)
	for j := i; j < len(l.entries); j++ {
		l.index[l.entries[j].ID] = j
	}
	return nil
}

// UpdateEntry replaces the quantity or the price of the purchase with the
// given id. Quantities are whole shares, any fraction is truncated.
//
// Ids are generated by the ledger, so an unknown id is a caller bug: the call
// is a no-op and returns false.
func (l *Ledger) UpdateEntry(id string, field Field, value decimal.Decimal) bool {
	i, ok := l.index[id]
	if !ok {
		return false
	}
	switch field {
	case FieldQuantity:
		l.entries[i].Quantity = Q(value.Truncate(0))
	case FieldPrice:
		l.entries[i].Price = M(value, l.currency)
	default:
		return false
	}
	return true
}

// Snapshot is an immutable copy of a ledger, the input of Calculate.
type Snapshot struct {
	Label    string
	Currency string
	Entries  []PurchaseEntry
}

// Snapshot returns a copy of the ledger that later mutations do not affect.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{Label: l.label, Currency: l.currency, Entries: l.Entries()}
}
