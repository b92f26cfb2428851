package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type emailCmd struct {
	ledgerFlags
	to string
}

func (*emailCmd) Name() string     { return "email" }
func (*emailCmd) Synopsis() string { return "send the average price report by email" }
func (*emailCmd) Usage() string {
	return `savg email -to <address> [-l <ledger.json>] [-name <stock>] [<quantity>@<price>...]

  Calculates the average price and sends the report to the address.
  Delivery is simulated: the message is logged, use -v to see it.
`
}

func (c *emailCmd) SetFlags(f *flag.FlagSet) {
	c.ledgerFlags.SetFlags(f)
	f.StringVar(&c.to, "to", "", "Recipient email address.")
}

func (c *emailCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	n := s.SendEmail(ctx, c.to)
	printNotice(n)
	if n.Destructive {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
