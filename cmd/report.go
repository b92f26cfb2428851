package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stockavg/export"
	"github.com/etnz/stockavg/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	ledgerFlags
	format    string
	outputDir string
	print     bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "save the average price report as a document" }
func (*reportCmd) Usage() string {
	return `savg report [-l <ledger.json>] [-name <stock>] [-f md|html|xlsx] [-o <dir>] [-print] [<quantity>@<price>...]

  Calculates the average price and saves the report in the output directory
  as <Stock_Name>_Stock_Average_Report.<format>.
  With -print, the report is displayed instead.

Usage Examples:
$ savg report -name "HDFC Bank" -f xlsx 10@2000 5@1800
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.ledgerFlags.SetFlags(f)
	f.StringVar(&c.format, "f", "", "Document format: md, html or xlsx. Defaults to the configured one.")
	f.StringVar(&c.outputDir, "o", "", "Output directory. Defaults to the configured one.")
	f.BoolVar(&c.print, "print", false, "Display the report instead of saving it.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.log.Sync()

	format := a.cfg.ReportFormat()
	if c.format != "" {
		if format, err = export.ParseFormat(c.format); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.outputDir != "" {
		a.cfg.Report.OutputDir = c.outputDir
	}

	ledger, err := c.ledger(a.cfg.Currency, f.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error reading purchases: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, status := a.calculate(ledger)
	if status != subcommands.ExitSuccess {
		return status
	}

	if c.print {
		rep, _ := s.Report()
		printMarkdown(renderer.Markdown(rep))
		return subcommands.ExitSuccess
	}

	_, n := s.Download(format)
	printNotice(n)
	if n.Destructive {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
