package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/stockavg"
)

// ledgerFlags are the flags selecting the purchases to work on, shared by
// most subcommands. Purchases given as arguments, "10@2000", are appended to
// those of the ledger file.
type ledgerFlags struct {
	file     string
	name     string
	currency string
}

func (l *ledgerFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&l.file, "l", "", "Ledger file (JSON) to read purchases from.")
	f.StringVar(&l.name, "name", "", "Stock name. Overrides the ledger file label.")
	f.StringVar(&l.currency, "c", "", "Currency code. Defaults to the ledger file one, then to the configured one.")
}

// ledger builds the ledger from the flags and the purchase arguments.
func (l *ledgerFlags) ledger(defaultCurrency string, args []string) (*stockavg.Ledger, error) {
	purchases := make([]stockavg.Purchase, 0, len(args))
	for _, arg := range args {
		p, err := stockavg.ParsePurchase(arg)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}

	flagCurrency := strings.ToUpper(strings.TrimSpace(l.currency))
	if flagCurrency != "" && money.GetCurrency(flagCurrency) == nil {
		return nil, fmt.Errorf("unknown currency %q", l.currency)
	}
	currency := flagCurrency
	if currency == "" {
		currency = defaultCurrency
	}

	if l.file == "" {
		return stockavg.LedgerOf(l.name, currency, purchases...), nil
	}

	f, err := os.Open(l.file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ledger, err := stockavg.DecodeLedger(f, currency)
	if err != nil {
		return nil, fmt.Errorf("ledger %q: %w", l.file, err)
	}
	if flagCurrency != "" && ledger.Currency() != flagCurrency {
		return nil, fmt.Errorf("ledger %q is in %s, not %s", l.file, ledger.Currency(), flagCurrency)
	}
	if l.name != "" {
		ledger.SetLabel(l.name)
	}
	if len(purchases) == 0 {
		return ledger, nil
	}

	// extend the decoded purchases, replacing the padding placeholders if any
	var all []stockavg.Purchase
	for _, e := range ledger.Entries() {
		if e.Quantity.IsZero() && e.Price.IsZero() {
			continue
		}
		all = append(all, stockavg.Purchase{Quantity: e.Quantity.Decimal(), Price: e.Price.Decimal()})
	}
	return stockavg.LedgerOf(ledger.Label(), ledger.Currency(), append(all, purchases...)...), nil
}
