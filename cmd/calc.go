package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stockavg"
	"github.com/etnz/stockavg/renderer"
	"github.com/google/subcommands"
)

type calcCmd struct {
	ledgerFlags
	json  bool
	query string
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "calculate the average purchase price of a stock" }
func (*calcCmd) Usage() string {
	return `savg calc [-l <ledger.json>] [-name <stock>] [-json] [-q <jsonpath>] [<quantity>@<price>...]

  Calculates the average price, the total shares and the total investment of
  the purchases of a stock.

Usage Examples:
# Two purchases of HDFC Bank.
$ savg calc -name "HDFC Bank" 10@2000 5@1800

# The average price only, as a JSON number.
$ savg calc -name "HDFC Bank" -q '$.result.averagePrice' 10@2000 5@1800
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	c.ledgerFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Print the result, or the failure, as a JSON document.")
	f.StringVar(&c.query, "q", "", "Print only the value at this JSONPath of the JSON document. Implies -json.")
}

// calcDocument is the JSON document printed by calc -json.
type calcDocument struct {
	OK      bool              `json:"ok"`
	Label   string            `json:"label,omitempty"`
	Result  *stockavg.Result  `json:"result,omitempty"`
	Failure *stockavg.Failure `json:"failure,omitempty"`
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.log.Sync()

	ledger, err := c.ledger(a.cfg.Currency, f.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error reading purchases: %v\n", err)
		return subcommands.ExitUsageError
	}

	if !c.json && c.query == "" {
		s, status := a.calculate(ledger)
		if status != subcommands.ExitSuccess {
			return status
		}
		rep, _ := s.Report()
		fmt.Fprintln(stdout, renderer.TerminalSummary(rep))
		return subcommands.ExitSuccess
	}

	doc := calcDocument{Label: ledger.Label()}
	r, err := stockavg.Calculate(ledger.Snapshot())
	if err != nil {
		failure := stockavg.NewFailure(err)
		doc.Failure = &failure
	} else {
		doc.OK, doc.Result = true, r
	}

	data, err := json.Marshal(doc)
	if err != nil {
		fmt.Fprintf(stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.query != "" {
		if data, err = query(data, c.query); err != nil {
			fmt.Fprintf(stderr, "Error querying %q: %v\n", c.query, err)
			return subcommands.ExitUsageError
		}
	}
	fmt.Fprintln(stdout, string(data))

	if !doc.OK {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// query returns the JSON encoded value at path in the JSON document data.
// Numbers are kept exactly as written in data.
func query(data []byte, path string) ([]byte, error) {
	var jobj any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&jobj); err != nil {
		return nil, err
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, err
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return json.Marshal(jval)
}
