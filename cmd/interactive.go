package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/stockavg"
	"github.com/etnz/stockavg/export"
	"github.com/etnz/stockavg/renderer"
	"github.com/etnz/stockavg/session"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"})
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type interactiveCmd struct {
	ledgerFlags
}

func (*interactiveCmd) Name() string     { return "interactive" }
func (*interactiveCmd) Synopsis() string { return "edit purchases and calculate interactively" }
func (*interactiveCmd) Usage() string {
	return `savg interactive [-l <ledger.json>] [-name <stock>] [<quantity>@<price>...]

  Opens an interactive session to edit the purchases of a stock, calculate
  their average price, chart them and export the report.
`
}

func (c *interactiveCmd) SetFlags(f *flag.FlagSet) { c.ledgerFlags.SetFlags(f) }

// menu actions
const (
	actionName      = "name"
	actionAdd       = "add"
	actionEdit      = "edit"
	actionRemove    = "remove"
	actionCalculate = "calculate"
	actionCharts    = "charts"
	actionDownload  = "download"
	actionEmail     = "email"
	actionQuit      = "quit"
)

func (c *interactiveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	s := a.newSession(ledger)

	if err := runInteractive(ctx, s, a.cfg.ReportFormat()); err != nil && !errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func runInteractive(ctx context.Context, s *session.Session, format export.Format) error {
	ledger := s.Ledger()
	if strings.TrimSpace(ledger.Label()) == "" {
		if err := editName(ledger); err != nil {
			return err
		}
	}

	for {
		fmt.Fprintln(stdout, headerStyle.Render("STOCK AVERAGE: "+ledger.Label()))
		printMarkdown(purchasesTable(ledger))
		if s.Stale() {
			fmt.Fprintln(stdout, alertStyle.Render("Purchases changed since the last calculation."))
		}

		var action string
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What next?").
					Options(
						huh.NewOption("Calculate", actionCalculate),
						huh.NewOption("Add a purchase", actionAdd),
						huh.NewOption("Edit a purchase", actionEdit),
						huh.NewOption("Remove a purchase", actionRemove),
						huh.NewOption("Rename the stock", actionName),
						huh.NewOption("Show charts", actionCharts),
						huh.NewOption("Download the report", actionDownload),
						huh.NewOption("Send the report by email", actionEmail),
						huh.NewOption("Quit", actionQuit),
					).
					Value(&action),
			),
		).Run()
		if err != nil {
			return err
		}

		switch action {
		case actionName:
			err = editName(ledger)
		case actionAdd:
			err = editPurchase(ledger, ledger.AddEntry())
		case actionEdit:
			var id string
			if id, err = selectPurchase(ledger, "Purchase to edit"); err == nil {
				err = editPurchase(ledger, id)
			}
		case actionRemove:
			var id string
			if id, err = selectPurchase(ledger, "Purchase to remove"); err == nil {
				if n, ok := s.RemoveEntry(id); !ok {
					showNotice(n)
				}
			}
		case actionCalculate:
			if _, n := s.Calculate(); n.Destructive {
				showNotice(n)
			} else {
				rep, _ := s.Report()
				fmt.Fprintln(stdout, renderer.TerminalSummary(rep))
			}
		case actionCharts:
			if charts, cerr := s.Charts(); cerr != nil {
				fmt.Fprintln(stdout, alertStyle.Render("Please calculate results before charting."))
			} else {
				fmt.Fprint(stdout, renderer.TerminalCharts(charts))
			}
		case actionDownload:
			f := format
			if err = selectFormat(&f); err == nil {
				_, n := s.Download(f)
				showNotice(n)
			}
		case actionEmail:
			to := s.Email()
			if err = inputEmail(&to); err == nil {
				showNotice(s.SendEmail(ctx, to))
			}
		case actionQuit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func showNotice(n session.Notice) {
	style := noticeStyle
	if n.Destructive {
		style = alertStyle
	}
	fmt.Fprintln(stdout, style.Render(n.String()))
}

func editName(ledger *stockavg.Ledger) error {
	name := ledger.Label()
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Stock name").
				Description("e.g. HDFC Bank").
				Value(&name),
		),
	).Run()
	if err != nil {
		return err
	}
	ledger.SetLabel(name)
	return nil
}

func editPurchase(ledger *stockavg.Ledger, id string) error {
	e, ok := ledger.Entry(id)
	if !ok {
		return fmt.Errorf("unknown purchase %q", id)
	}
	qty, price := e.Quantity.Decimal().String(), e.Price.Decimal().String()
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Quantity").
				Description("Number of shares bought").
				Value(&qty).
				Validate(validateQuantity),
			huh.NewInput().
				Title("Price per share").
				Description(fmt.Sprintf("In %s", ledger.Currency())).
				Value(&price).
				Validate(validatePrice),
		),
	).Run()
	if err != nil {
		return err
	}
	ledger.UpdateEntry(id, stockavg.FieldQuantity, decimal.RequireFromString(strings.TrimSpace(qty)))
	ledger.UpdateEntry(id, stockavg.FieldPrice, decimal.RequireFromString(strings.TrimSpace(price)))
	return nil
}

func selectPurchase(ledger *stockavg.Ledger, title string) (string, error) {
	var id string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(purchaseOptions(ledger)...).
				Value(&id),
		),
	).Run()
	return id, err
}

func purchaseOptions(ledger *stockavg.Ledger) []huh.Option[string] {
	entries := ledger.Entries()
	options := make([]huh.Option[string], len(entries))
	for i, e := range entries {
		options[i] = huh.NewOption(fmt.Sprintf("Purchase %d: %s @ %s", i+1, e.Quantity, e.Price), e.ID)
	}
	return options
}

func selectFormat(f *export.Format) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[export.Format]().
				Title("Document format").
				Options(
					huh.NewOption("Markdown", export.Markdown),
					huh.NewOption("HTML", export.HTML),
					huh.NewOption("Excel", export.XLSX),
				).
				Value(f),
		),
	).Run()
}

func inputEmail(to *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email address").
				Value(to),
		),
	).Run()
}

// purchasesTable renders the purchases being edited as a markdown table.
func purchasesTable(ledger *stockavg.Ledger) string {
	var b strings.Builder
	fmt.Fprintln(&b, "| Purchase # | Quantity | Price per Share | Investment |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|")
	for i, e := range ledger.Entries() {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, e.Quantity, e.Price, e.Investment())
	}
	return b.String()
}

func validateQuantity(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a valid number")
	}
	if !d.IsInteger() {
		return fmt.Errorf("must be a whole number of shares")
	}
	return nil
}

func validatePrice(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("must be a valid number")
	}
	return nil
}
