package stockavg

import (
	"fmt"
	"strings"
	"time"
)

// DefaultReportTitle prefixes the stock name in report headings.
const DefaultReportTitle = "Stock Average Report"

// ReportRow is one purchase in the report table.
type ReportRow struct {
	Position   int // 1-based
	Quantity   Quantity
	Price      Money
	Investment Money
}

// Report is the tabular view of a calculation, the data contract of the
// document and notification exports.
type Report struct {
	Title       string
	Label       string
	GeneratedOn time.Time

	AveragePrice    Money
	TotalShares     Quantity
	TotalInvestment Money

	Rows []ReportRow
}

// NewReport shapes the snapshot s and the result r computed from it.
func NewReport(title string, s Snapshot, r *Result, on time.Time) *Report {
	if title == "" {
		title = DefaultReportTitle
	}
	rep := &Report{
		Title:           title,
		Label:           strings.TrimSpace(s.Label),
		GeneratedOn:     on,
		AveragePrice:    r.AveragePrice,
		TotalShares:     r.TotalShares,
		TotalInvestment: r.TotalInvestment,
		Rows:            make([]ReportRow, 0, len(s.Entries)),
	}
	for i, e := range s.Entries {
		investment := e.Investment()
		if i < len(r.PerEntryInvestment) {
			investment = r.PerEntryInvestment[i]
		}
		rep.Rows = append(rep.Rows, ReportRow{
			Position:   i + 1,
			Quantity:   e.Quantity,
			Price:      e.Price,
			Investment: investment,
		})
	}
	return rep
}

// Heading returns the report title, "Stock Average Report: HDFC Bank".
func (r *Report) Heading() string {
	return fmt.Sprintf("%s: %s", r.Title, r.Label)
}

// Date returns the generation date as dd/mm/yyyy.
func (r *Report) Date() string {
	return r.GeneratedOn.Format("02/01/2006")
}
