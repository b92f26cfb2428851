package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/etnz/stockavg/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	ledgerFlags
	json bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "chart the purchases against their average price" }
func (*chartCmd) Usage() string {
	return `savg chart [-l <ledger.json>] [-name <stock>] [-json] [<quantity>@<price>...]

  Displays the price comparison, the investment distribution and the price
  trend of the purchases. With -json, prints the chart series instead.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.ledgerFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Print the chart series as a JSON document.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	s, status := a.calculate(ledger)
	if status != subcommands.ExitSuccess {
		return status
	}
	charts, _ := s.Charts()

	if c.json {
		data, err := json.Marshal(charts)
		if err != nil {
			fmt.Fprintf(stderr, "Error encoding charts: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(data))
		return subcommands.ExitSuccess
	}
	fmt.Fprint(stdout, renderer.TerminalCharts(charts))
	return subcommands.ExitSuccess
}
